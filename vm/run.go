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

import "github.com/pkg/errors"

func (i *Instance[C]) memError() error {
	return &MemoryError{PC: i.PC, Ptr: i.ptr}
}

// Run starts execution of the program until the PC reaches the end of the
// program.
//
// Execution starts from the current PC, pointer and tape. This allows a program
// that failed on input to resume once more input is available. Use Reset to
// run a program again from the start.
//
// If an error occurs, the PC will point to the instruction that triggered
// the error and the tape is left as it was before that instruction. The error
// is either a *MemoryError, an *InputError or a wrapped output error.
func (i *Instance[C]) Run() error {
	var (
		p    = i.prog
		tape = i.tape
		size = uint(len(tape))
	)
	i.insCount = 0
	for i.PC < len(p) {
		ins := p[i.PC]
		switch ins.Op {
		case OpPointerInc:
			i.ptr++
			i.PC++
		case OpPointerDec:
			if i.ptr == 0 {
				return &MemoryError{PC: i.PC, Ptr: -1}
			}
			i.ptr--
			i.PC++
		case OpCellInc:
			if uint(i.ptr) >= size {
				return i.memError()
			}
			tape[i.ptr]++
			i.PC++
		case OpCellDec:
			if uint(i.ptr) >= size {
				return i.memError()
			}
			tape[i.ptr]--
			i.PC++
		case OpOutput:
			if uint(i.ptr) >= size {
				return i.memError()
			}
			if err := i.output.WriteByte(byte(tape[i.ptr])); err != nil {
				return errors.Wrapf(err, "output at: %d", i.PC)
			}
			i.PC++
		case OpInput:
			if uint(i.ptr) >= size {
				return i.memError()
			}
			b, err := i.input.ReadByte()
			if err != nil {
				return &InputError{PC: i.PC, Err: err}
			}
			tape[i.ptr] = C(b)
			i.PC++
		case OpLoopStart:
			if uint(i.ptr) >= size {
				return i.memError()
			}
			if tape[i.ptr] == 0 {
				i.PC = ins.Arg + 1
			} else {
				i.PC++
			}
		case OpLoopEnd:
			// back to the loop start where the condition is checked again
			i.PC = ins.Arg
		default:
			return errors.Errorf("invalid opcode %d at: %d", ins.Op, i.PC)
		}
		i.insCount++
	}
	return nil
}
