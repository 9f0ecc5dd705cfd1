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
	"fmt"
	"io"

	"github.com/db47h/bfvm/internal/bfi"
	"github.com/db47h/bfvm/vm"
)

// Disassemble writes a disassembly of the instruction in the given program at
// position pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Loop instructions are followed by the position of their counterpart, as in
// "[ 12".
func Disassemble(p vm.Program, pc int, w io.Writer) (next int, err error) {
	ew := bfi.NewErrWriter(w)
	if pc < 0 || pc >= len(p) {
		io.WriteString(ew, "???")
		return pc + 1, ew.Err
	}
	io.WriteString(ew, p[pc].String())
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of all instructions in the given program
// to the specified io.Writer, one per line, preceded by their position and
// indented by loop depth. It will return any write error.
func DisassembleAll(p vm.Program, w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	depth := 0
	for pc := 0; pc < len(p); {
		if p[pc].Op == vm.OpLoopEnd && depth > 0 {
			depth--
		}
		fmt.Fprintf(ew, "%6d\t", pc)
		for n := 0; n < depth; n++ {
			io.WriteString(ew, "  ")
		}
		if p[pc].Op == vm.OpLoopStart {
			depth++
		}
		pc, _ = Disassemble(p, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
