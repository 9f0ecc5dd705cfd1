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

// Package compiler translates Brainfuck source code into vm.Program values
// and provides a disassembler for compiled programs.
//
// Supported instructions:
//
//	symbol	opcode		description
//	------	------		------------------------------------------------------------
//	>	OpPointerInc	move the tape pointer one cell to the right
//	<	OpPointerDec	move the tape pointer one cell to the left
//	+	OpCellInc	increment the current cell (wraps around)
//	-	OpCellDec	decrement the current cell (wraps around)
//	.	OpOutput	write the low 8 bits of the current cell to the output
//	,	OpInput		read one byte from the input into the current cell
//	[	OpLoopStart	if the current cell is 0, jump past the matching ]
//	]	OpLoopEnd	jump back to the matching [
//
// Comments:
//
// Any byte that is not one of the eight instruction symbols is ignored,
// including whitespace, line breaks and bytes that are not valid UTF-8. Such
// bytes do not produce any instruction and do not shift the position of the
// following ones, so that:
//
//	+ add one
//	[ loop ]
//
// compiles to the same three instructions as "+[]", with the [ at position 1
// and the ] at position 2.
//
// Errors:
//
// Unbalanced brackets are reported as *BracketError values. Their Index field
// is the position of the offending instruction in the program (not in the
// source), and the Pos field gives its line and column in the source.
package compiler
