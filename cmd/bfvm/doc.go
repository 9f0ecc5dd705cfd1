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

// The bfvm command line tool is a showcase for the packages
// github.com/db47h/bfvm/compiler and github.com/db47h/bfvm/vm. It runs
// Brainfuck programs with a configurable cell type and tape size.
//
// Usage:
//
//	bfvm [flags] file
//
//	-cell type
//		  cell type: i8, u8, i16, u16, i32, u32, i64 or u64 (default i32)
//	-config filename
//		  load default settings from TOML file filename
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump the tape pointer and tape contents upon exit
//	-list
//		  print the compiled program and exit
//	-raw
//		  enable raw terminal IO
//	-tape int
//		  tape size in cells (default 30000)
//	-with filename
//		  Add filename to the input list (can be specified multiple times)
//
// -cell: all cell arithmetic wraps around according to the chosen type. With
// u8, 255+1 is 0. With i8, 127+1 is -128. Output always uses the low 8 bits
// of the cell.
//
// -config: the configuration file may set any of the following keys. Flags
// given on the command line take precedence:
//
//	tape = 30000
//	cell = "u8"
//	raw = true
//	with = ["header.txt"]
//
// Files listed in "with" are read before the ones given with -with.
//
// -debug: will print a full stacktrace should the program fail, along with the
// position of the faulting instruction, the tape pointer and the current cell
// value.
//
// -dump: upon exit, print the position of the tape pointer and the contents of
// the tape, up to the last non-zero cell, on stdout.
//
// -list: prints a listing of the compiled program, one instruction per line,
// with loop targets. The program is not run.
//
// -raw: switch the terminal to non-canonical mode, so that the program gets
// key presses right away instead of one line at a time. CTRL-D ends the input.
// This flag is ignored if stdin is not a terminal. On Windows, ANSI escape
// sequences are always enabled on the console, regardless of this flag.
//
// -with: After loading the program, bfvm will feed the specified file to the
// program as input before stdin. If specified multiple times, files will be
// fed to the program in order of appearance on the command line.
package main
