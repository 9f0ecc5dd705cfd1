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
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/db47h/bfvm/compiler"
	"github.com/db47h/bfvm/interp"
	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
	"github.com/tebeka/atexit"
)

type fileList []string

func (f *fileList) String() string     { return strings.Join(*f, ",") }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

var cellTypes = map[string]bool{
	"i8": true, "u8": true,
	"i16": true, "u16": true,
	"i32": true, "u32": true,
	"i64": true, "u64": true,
}

type cellType string

func (c *cellType) String() string { return string(*c) }
func (c *cellType) Set(s string) error {
	s = strings.ToLower(s)
	if !cellTypes[s] {
		names := make([]string, 0, len(cellTypes))
		for n := range cellTypes {
			names = append(names, n)
		}
		sort.Strings(names)
		return errors.Errorf("unsupported cell type %q, must be one of %s", s, strings.Join(names, ", "))
	}
	*c = cellType(s)
	return nil
}
func (c *cellType) Get() interface{} { return *c }

var (
	rawIO      bool
	debug      bool
	dump       bool
	list       bool
	configFile string
	tapeSize   = vm.DefaultTapeSize
	cell       = cellType("i32")
	withFiles  fileList
)

// in raw tty mode, we need to handle CTRL-D ourselves
type rawReader struct {
	r   io.Reader
	eof bool
}

func (r *rawReader) Read(p []byte) (n int, err error) {
	if r.eof {
		return 0, io.EOF
	}
	n, err = r.r.Read(p)
	if i := bytes.IndexByte(p[:n], 4); i >= 0 {
		r.eof = true
		if i == 0 {
			return 0, io.EOF
		}
		return i, nil
	}
	return n, err
}

func setupIO() (in io.Reader) {
	if tearDown, err := setupConsole(); err == nil {
		atExitRegister(tearDown)
	}
	in = os.Stdin
	if !rawIO {
		return in
	}
	tearDown, err := setRawIO()
	if err != nil {
		if debug {
			fmt.Fprintf(os.Stderr, "raw IO disabled: %v\n", err)
		}
		return in
	}
	atExitRegister(tearDown)
	return &rawReader{r: in}
}

func atExitRegister(f func()) {
	if f != nil {
		atexit.Register(f)
	}
}

func printState[C vm.Cell](i *vm.Instance[C]) {
	p := i.Program()
	if i.PC < len(p) {
		fmt.Fprintf(os.Stderr, "PC: %v (%v), Ptr: %v", i.PC, p[i.PC], i.Ptr())
	} else {
		fmt.Fprintf(os.Stderr, "PC: %v, Ptr: %v", i.PC, i.Ptr())
	}
	if tape := i.Tape(); i.Ptr() >= 0 && i.Ptr() < len(tape) {
		fmt.Fprintf(os.Stderr, ", Cell: %v", tape[i.Ptr()])
	}
	fmt.Fprintf(os.Stderr, ", Executed: %d\n", i.InstructionCount())
}

func run[C vm.Cell](fileName string, in io.Reader, opts ...vm.Option) error {
	ip := interp.New[C](tapeSize, opts...)
	ip.Stdin = in
	err := ip.Run(fileName)
	i := ip.VM()
	if i == nil {
		return err
	}
	if err != nil && debug {
		printState(i)
	}
	if dump {
		fmt.Fprintln(os.Stdout)
		if e := i.Dump(os.Stdout); e != nil && err == nil {
			err = e
		}
	}
	return err
}

func runAs(c cellType, fileName string, in io.Reader, opts ...vm.Option) error {
	switch c {
	case "i8":
		return run[int8](fileName, in, opts...)
	case "u8":
		return run[uint8](fileName, in, opts...)
	case "i16":
		return run[int16](fileName, in, opts...)
	case "u16":
		return run[uint16](fileName, in, opts...)
	case "i32":
		return run[int32](fileName, in, opts...)
	case "u32":
		return run[uint32](fileName, in, opts...)
	case "i64":
		return run[int64](fileName, in, opts...)
	case "u64":
		return run[uint64](fileName, in, opts...)
	}
	return errors.Errorf("unsupported cell type %q", c)
}

func listProgram(fileName string) error {
	p, err := compiler.CompileFile(fileName)
	if err != nil {
		return err
	}
	return compiler.DisassembleAll(p, os.Stdout)
}

func atExit(err error) {
	if err == nil {
		atexit.Exit(0)
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		atexit.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\nError: %+v\n", err)
	atexit.Exit(1)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] file\n", os.Args[0])
	flag.PrintDefaults()
}

func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func main() {
	var err error
	defer func() { atExit(err) }()

	flag.Usage = usage
	flag.Var(&cell, "cell", "cell `type`: i8, u8, i16, u16, i32, u32, i64 or u64")
	flag.IntVar(&tapeSize, "tape", tapeSize, "tape size in cells")
	flag.StringVar(&configFile, "config", "", "load default settings from TOML file `filename`")
	flag.BoolVar(&rawIO, "raw", false, "enable raw terminal IO")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&dump, "dump", false, "dump the tape pointer and tape contents upon exit")
	flag.BoolVar(&list, "list", false, "print the compiled program and exit")
	flag.Var(&withFiles, "with", "Add `filename` to the input list (can be specified multiple times)")

	flag.Parse()

	if configFile != "" {
		if err = loadConfig(configFile, setFlags()); err != nil {
			return
		}
	}
	if flag.NArg() != 1 {
		flag.Usage()
		atexit.Exit(2)
	}
	if tapeSize <= 0 {
		err = errors.New("tape size must be positive, got " + strconv.Itoa(tapeSize))
		return
	}
	fileName := flag.Arg(0)

	if list {
		err = listProgram(fileName)
		return
	}

	in := setupIO()

	// append -with files to input stack in reverse order so that they load
	// in order of appearance on the command line.
	var opts []vm.Option
	for n := len(withFiles) - 1; n >= 0; n-- {
		var f *os.File
		f, err = os.Open(withFiles[n])
		if err != nil {
			err = errors.Wrap(err, "input file")
			return
		}
		opts = append(opts, vm.Input(f))
	}

	err = runAs(cell, fileName, in, opts...)
}
