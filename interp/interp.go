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

// Package interp ties the compiler and the vm together to run Brainfuck
// source files.
//
// An Interpreter is bound to one cell type and one tape size:
//
//	interp.New[uint8](30000).Execute("hello.bf")
//
// runs hello.bf with 8 bits unsigned cells, reading from os.Stdin and
// writing to os.Stdout, and prints any error on os.Stderr. The standard
// streams can be replaced through the Stdin, Stdout and Stderr fields, the same
// way as with an exec.Cmd.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/db47h/bfvm/compiler"
	"github.com/db47h/bfvm/vm"
)

// Interpreter compiles and runs source files.
type Interpreter[C vm.Cell] struct {
	// Stdin and Stdout are the program's input and output. If Stdin is
	// nil, the program reads from vm.Input options only. Stdin is never
	// closed. If Stdout is nil,
	// the output is discarded.
	Stdin  io.Reader
	Stdout io.Writer
	// Stderr is where Execute writes error messages.
	Stderr io.Writer

	tapeSize int
	opts     []vm.Option
	i        *vm.Instance[C]
}

// New returns a new Interpreter that will run programs on a tape of tapeSize
// cells.
//
// Stdin, Stdout and Stderr are set to os.Stdin, os.Stdout and os.Stderr. The
// given options are applied after Stdin and Stdout, so that vm.Output replaces
// Stdout and vm.Input readers are read before Stdin.
func New[C vm.Cell](tapeSize int, opts ...vm.Option) *Interpreter[C] {
	return &Interpreter[C]{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		tapeSize: tapeSize,
		opts:     opts,
	}
}

// Run compiles the source file fileName and runs it on a fresh tape. The
// returned error is either a compiler error, an error from vm.New or an error
// from vm.Instance.Run.
func (ip *Interpreter[C]) Run(fileName string) error {
	ip.i = nil
	p, err := compiler.CompileFile(fileName)
	if err != nil {
		return err
	}
	opts := make([]vm.Option, 0, len(ip.opts)+3)
	opts = append(opts, vm.TapeSize(ip.tapeSize))
	if ip.Stdin != nil {
		// hide any Close method: Stdin belongs to the caller.
		opts = append(opts, vm.Input(struct{ io.Reader }{ip.Stdin}))
	}
	if ip.Stdout != nil {
		opts = append(opts, vm.Output(ip.Stdout))
	}
	opts = append(opts, ip.opts...)
	ip.i, err = vm.New[C](p, opts...)
	if err != nil {
		return err
	}
	return ip.i.Run()
}

// Execute is like Run but prints errors to ip.Stderr instead of returning
// them.
func (ip *Interpreter[C]) Execute(fileName string) {
	if err := ip.Run(fileName); err != nil {
		fmt.Fprintf(ip.Stderr, "Error: %v\n", err)
	}
}

// VM returns the vm.Instance used by the last call to Run or Execute. It
// returns nil if no program was run or if the last one failed to compile.
func (ip *Interpreter[C]) VM() *vm.Instance[C] {
	return ip.i
}
