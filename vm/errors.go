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

import "strconv"

// MemoryError is returned by Run when an instruction accesses a cell while the
// pointer is outside of the tape.
type MemoryError struct {
	PC  int // position of the faulting instruction
	Ptr int // pointer value at the time of the fault
}

func (e *MemoryError) Error() string {
	return "memory out of bounds at: " + strconv.Itoa(e.PC) + " (pointer " + strconv.Itoa(e.Ptr) + ")"
}

// InputError is returned by Run when the input stream fails or is exhausted.
type InputError struct {
	PC  int
	Err error
}

func (e *InputError) Error() string {
	return "unexpected input at: " + strconv.Itoa(e.PC) + ": " + e.Err.Error()
}

// Cause returns the underlying read error. Works with errors.Cause.
func (e *InputError) Cause() error { return e.Err }

// Unwrap returns the underlying read error.
func (e *InputError) Unwrap() error { return e.Err }
