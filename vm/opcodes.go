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
	"strconv"

	"github.com/pkg/errors"
)

// Opcode identifies one of the eight instructions.
type Opcode uint8

// Opcodes.
const (
	OpPointerInc Opcode = iota
	OpPointerDec
	OpCellInc
	OpCellDec
	OpOutput
	OpInput
	OpLoopStart
	OpLoopEnd
)

// Unresolved is the jump target of a loop instruction whose counterpart has
// not been seen yet. It never appears in a valid Program.
const Unresolved = -1

var opcodes = [...]byte{
	'>',
	'<',
	'+',
	'-',
	'.',
	',',
	'[',
	']',
}

var opcodeIndex [256]int8

func init() {
	for i := range opcodeIndex {
		opcodeIndex[i] = -1
	}
	for i, c := range opcodes {
		opcodeIndex[c] = int8(i)
	}
}

// Lookup returns the opcode for the given source symbol. ok is false if c is
// not one of the eight instruction symbols.
func Lookup(c byte) (op Opcode, ok bool) {
	v := opcodeIndex[c]
	if v < 0 {
		return 0, false
	}
	return Opcode(v), true
}

// Symbol returns the source symbol of the opcode.
func (op Opcode) Symbol() byte {
	if int(op) < len(opcodes) {
		return opcodes[op]
	}
	return '?'
}

func (op Opcode) String() string {
	if int(op) < len(opcodes) {
		return string(opcodes[op])
	}
	return "Opcode(" + strconv.Itoa(int(op)) + ")"
}

// IsJump returns true for the two loop opcodes.
func (op Opcode) IsJump() bool {
	return op == OpLoopStart || op == OpLoopEnd
}

// Instruction is a single compiled instruction. Arg is the position of the
// matching bracket for OpLoopStart and OpLoopEnd, and is ignored by all other
// opcodes.
type Instruction struct {
	Op  Opcode
	Arg int
}

func (i Instruction) String() string {
	if i.Op.IsJump() {
		return i.Op.String() + " " + strconv.Itoa(i.Arg)
	}
	return i.Op.String()
}

// Program is a compiled instruction sequence.
type Program []Instruction

// Validate checks that every loop instruction in the program points to a
// matching counterpart.
func (p Program) Validate() error {
	for pc, ins := range p {
		switch ins.Op {
		case OpPointerInc, OpPointerDec, OpCellInc, OpCellDec, OpOutput, OpInput:
		case OpLoopStart, OpLoopEnd:
			t := ins.Arg
			if t < 0 || t >= len(p) {
				return errors.Errorf("%v at %d: jump target %d out of range", ins.Op, pc, t)
			}
			want := OpLoopEnd
			if ins.Op == OpLoopEnd {
				want = OpLoopStart
			}
			if m := p[t]; m.Op != want || m.Arg != pc {
				return errors.Errorf("%v at %d: no matching %v at %d", ins.Op, pc, want, t)
			}
			if (ins.Op == OpLoopStart) != (t > pc) {
				return errors.Errorf("%v at %d: jump target %d on the wrong side", ins.Op, pc, t)
			}
		default:
			return errors.Errorf("invalid opcode %d at %d", ins.Op, pc)
		}
	}
	return nil
}
