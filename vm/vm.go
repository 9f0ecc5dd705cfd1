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
	"strconv"

	"github.com/db47h/bfvm/internal/bfi"
	"github.com/pkg/errors"
)

// Cell is the set of integer types that can be stored in a tape cell.
type Cell interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// DefaultTapeSize is the number of cells of a tape when the TapeSize option
// is not used.
const DefaultTapeSize = 30000

// Instance represents a running program with its tape.
type Instance[C Cell] struct {
	PC       int // Program Counter
	prog     Program
	tape     []C
	ptr      int
	insCount int64
	input    io.ByteReader
	output   *byteWriter
}

type config struct {
	tapeSize int
	input    io.ByteReader
	output   io.Writer
}

// Option interface
type Option func(*config) error

// TapeSize sets the number of cells in the tape. The default is
// DefaultTapeSize.
func TapeSize(size int) Option {
	return func(c *config) error {
		if size <= 0 {
			return errors.Errorf("invalid tape size %d", size)
		}
		c.tapeSize = size
		return nil
	}
}

// Input pushes the given Reader on top of the input stack. When this reader
// reaches EOF, it is closed if it implements io.Closer and the previously
// pushed reader will be used.
func Input(r io.Reader) Option {
	return func(c *config) error {
		c.input = pushInput(c.input, r)
		return nil
	}
}

// Output configures the output Writer. If w has a Flush method, it will be
// called after every byte written.
func Output(w io.Writer) Option {
	return func(c *config) error {
		c.output = w
		return nil
	}
}

// New creates a new Instance that will run the given program on a zero
// filled tape.
//
// The program must be valid as reported by Program.Validate. Options are
// applied in order; with no Input option, the first read will fail with
// io.EOF. With no Output option, output is discarded.
func New[C Cell](p Program, opts ...Option) (*Instance[C], error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid program")
	}
	c := config{tapeSize: DefaultTapeSize}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return nil, err
		}
	}
	if c.input == nil {
		c.input = &multiReader{}
	}
	return &Instance[C]{
		prog:   p,
		tape:   make([]C, c.tapeSize),
		input:  c.input,
		output: newWriter(c.output),
	}, nil
}

// Reset rewinds the PC and the pointer to 0 and zero fills the tape. The input
// stack is not rewound.
func (i *Instance[C]) Reset() {
	i.PC = 0
	i.ptr = 0
	i.insCount = 0
	clear(i.tape)
}

// Program returns the program run by the instance.
func (i *Instance[C]) Program() Program {
	return i.prog
}

// Tape returns the tape. Note that value changes will be reflected in the
// instance's tape.
func (i *Instance[C]) Tape() []C {
	return i.tape
}

// Ptr returns the current position of the tape pointer. It may be past the end
// of the tape.
func (i *Instance[C]) Ptr() int {
	return i.ptr
}

// InstructionCount returns the number of instructions executed by the last
// call to Run.
func (i *Instance[C]) InstructionCount() int64 {
	return i.insCount
}

func appendCell[C Cell](b []byte, v C) []byte {
	if C(0)-1 < 0 {
		return strconv.AppendInt(b, int64(v), 10)
	}
	return strconv.AppendUint(b, uint64(v), 10)
}

// Dump writes the pointer position and the tape contents to w. The tape is
// dumped up to the last non-zero cell or up to the pointer, whichever is
// further.
func (i *Instance[C]) Dump(w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	end := i.ptr + 1
	for n := len(i.tape) - 1; n >= end; n-- {
		if i.tape[n] != 0 {
			end = n + 1
			break
		}
	}
	if end > len(i.tape) {
		end = len(i.tape)
	}
	b := make([]byte, 0, 32)
	b = append(b, "ptr: "...)
	b = strconv.AppendInt(b, int64(i.ptr), 10)
	b = append(b, "\ntape:"...)
	ew.Write(b)
	for _, v := range i.tape[:end] {
		b = append(b[:0], ' ')
		ew.Write(appendCell(b, v))
	}
	ew.Write([]byte{'\n'})
	return ew.Err
}
