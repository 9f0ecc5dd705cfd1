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

// Package vm implements a tape machine for the eight instruction Brainfuck
// language.
//
// Programs are flat slices of instructions where loop brackets already know
// the position of their counterpart. They are usually built by the
// github.com/db47h/bfvm/compiler package, but can be assembled by hand as long
// as they pass Program.Validate.
//
// An Instance executes a Program against a fixed size tape of integer cells.
// The cell type is chosen with a type parameter among the signed and unsigned
// 8, 16, 32 and 64 bits integers. Cell arithmetic wraps around according to
// the chosen type:
//
//	i, _ := vm.New[uint8](prog)   // 255 + 1 == 0
//	j, _ := vm.New[int8](prog)    // 127 + 1 == -128
//
// The pointer cannot go below 0: moving it left of the first cell fails with a
// MemoryError right away. Moves to the right are not checked by themselves;
// reading or writing a cell while the pointer is past the end of the tape is
// what triggers a MemoryError, so a program may move the pointer off the end of
// the tape and back without faulting.
//
// The PC (aka. Program Counter) is not incremented in a single place, rather
// each opcode deals with the PC as needed.
package vm
