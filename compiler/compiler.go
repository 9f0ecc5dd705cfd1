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

package compiler

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"text/scanner"

	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
)

// BracketError is returned by Compile for unmatched brackets.
type BracketError struct {
	Index int              // instruction index of the offending bracket
	Open  bool             // true for an unmatched '[', false for an unmatched ']'
	Pos   scanner.Position // source position of the offending bracket
}

func (e *BracketError) Error() string {
	var b []byte
	if e.Pos.IsValid() {
		b = append(b, e.Pos.String()...)
		b = append(b, ": "...)
	}
	if e.Open {
		b = append(b, "unmatched '[' at: "...)
	} else {
		b = append(b, "unmatched ']' at: "...)
	}
	b = strconv.AppendInt(b, int64(e.Index), 10)
	return string(b)
}

type loopSite struct {
	pos scanner.Position
	pc  int
}

type parser struct {
	prog  vm.Program
	loops []loopSite
	pos   scanner.Position
}

func newParser(name string) *parser {
	p := new(parser)
	p.pos = scanner.Position{Filename: name, Line: 1, Column: 1}
	return p
}

func (p *parser) write(op vm.Opcode, arg int) {
	p.prog = append(p.prog, vm.Instruction{Op: op, Arg: arg})
}

// emit appends the instruction for op and resolves loops.
func (p *parser) emit(op vm.Opcode) error {
	pc := len(p.prog)
	switch op {
	case vm.OpLoopStart:
		p.loops = append(p.loops, loopSite{p.pos, pc})
		p.write(op, vm.Unresolved)
	case vm.OpLoopEnd:
		n := len(p.loops) - 1
		if n < 0 {
			return &BracketError{Index: pc, Pos: p.pos}
		}
		start := p.loops[n]
		p.loops = p.loops[:n]
		p.prog[start.pc].Arg = pc
		p.write(op, start.pc)
	default:
		p.write(op, 0)
	}
	return nil
}

func (p *parser) advance(c byte) {
	p.pos.Offset++
	if c == '\n' {
		p.pos.Line++
		p.pos.Column = 1
	} else {
		p.pos.Column++
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(r io.Reader) error {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return errors.Wrapf(err, "%s: read failed", p.pos.Filename)
		}
		if op, ok := vm.Lookup(c); ok {
			if err = p.emit(op); err != nil {
				return err
			}
		}
		p.advance(c)
	}
	if n := len(p.loops); n > 0 {
		l := p.loops[n-1]
		return &BracketError{Index: l.pc, Open: true, Pos: l.pos}
	}
	return nil
}

// Compile compiles source code read from the supplied io.Reader and returns
// the resulting program.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// Compile returns a *BracketError for unbalanced brackets. Read errors are
// wrapped; use errors.Cause to get the original error.
func Compile(name string, r io.Reader) (vm.Program, error) {
	p := newParser(name)
	if err := p.Parse(r); err != nil {
		return nil, err
	}
	return p.prog, nil
}

// CompileFile compiles the file fileName.
func CompileFile(fileName string) (vm.Program, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	return Compile(fileName, f)
}
