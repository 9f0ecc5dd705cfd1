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

package main

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

func setConsoleMode(f *os.File, set, clear uint32) (func(), error) {
	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return nil, errors.Wrap(err, "GetConsoleMode failed")
	}
	if err := windows.SetConsoleMode(h, mode&^clear|set); err != nil {
		return nil, errors.Wrap(err, "SetConsoleMode failed")
	}
	return func() {
		windows.SetConsoleMode(h, mode)
	}, nil
}

// setupConsole enables the interpretation of ANSI escape sequences written to
// stdout.
func setupConsole() (func(), error) {
	return setConsoleMode(os.Stdout, windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING, 0)
}

// setRawIO disables line input on stdin. Echo has to go as well since the
// console only supports it in line input mode.
func setRawIO() (func(), error) {
	return setConsoleMode(os.Stdin, 0, windows.ENABLE_LINE_INPUT|windows.ENABLE_ECHO_INPUT)
}
