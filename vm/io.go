// This file is part of bfvm - https://github.com/db47h/bfvm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"io"

	"github.com/pkg/errors"
)

type flusher interface {
	Flush() error
}

// byteWriter writes single bytes to the underlying writer and flushes it
// after each of them. A nil *byteWriter discards everything.
type byteWriter struct {
	w io.Writer
	f flusher
	b [1]byte
}

func newWriter(w io.Writer) *byteWriter {
	if w == nil {
		return nil
	}
	f, _ := w.(flusher)
	return &byteWriter{w: w, f: f}
}

func (w *byteWriter) WriteByte(c byte) error {
	if w == nil {
		return nil
	}
	w.b[0] = c
	if _, err := w.w.Write(w.b[:]); err != nil {
		return errors.Wrap(err, "write failed")
	}
	if w.f != nil {
		return errors.Wrap(w.f.Flush(), "flush failed")
	}
	return nil
}

// byteReaderWrapper wraps a basic reader into an io.ByteReader and io.Closer.
// It does not buffer so that no input is read ahead of what the program asks
// for.
type byteReaderWrapper struct {
	io.Reader
}

func (r *byteReaderWrapper) ReadByte() (byte, error) {
	var b [1]byte
	for {
		n, err := r.Reader.Read(b[:])
		if n > 0 {
			return b[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (r *byteReaderWrapper) Close() error {
	if c, ok := r.Reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func newByteReader(r io.Reader) io.ByteReader {
	switch br := r.(type) {
	case nil:
		return nil
	case io.ByteReader:
		return br
	default:
		return &byteReaderWrapper{r}
	}
}

type multiReader struct {
	readers []io.ByteReader
}

func (mr *multiReader) ReadByte() (b byte, err error) {
	for len(mr.readers) > 0 {
		b, err = mr.readers[0].ReadByte()
		if err != io.EOF {
			return b, err
		}
		// discard the reader and optionally close it
		if c, ok := mr.readers[0].(io.Closer); ok {
			c.Close()
		}
		mr.readers = mr.readers[1:]
	}
	return 0, io.EOF
}

func (mr *multiReader) pushReader(r io.ByteReader) {
	mr.readers = append([]io.ByteReader{r}, mr.readers...)
}

// pushInput sets r as the current input on top of in. It does not use a
// multiReader unless necessary.
func pushInput(in io.ByteReader, r io.Reader) io.ByteReader {
	br := newByteReader(r)
	if br == nil {
		return in
	}
	switch in := in.(type) {
	case nil:
		return br
	case *multiReader:
		in.pushReader(br)
		return in
	default:
		return &multiReader{[]io.ByteReader{br, in}}
	}
}
