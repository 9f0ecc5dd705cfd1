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

package compiler_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/db47h/bfvm/compiler"
	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
)

type I = vm.Instruction

var tests = [...]struct {
	name string
	code string
	prog vm.Program
}{
	{"empty", "", nil},
	{"comments", "hello world\n\tno instructions here!", nil},
	{"all", "><+-.,[]", vm.Program{
		{Op: vm.OpPointerInc},
		{Op: vm.OpPointerDec},
		{Op: vm.OpCellInc},
		{Op: vm.OpCellDec},
		{Op: vm.OpOutput},
		{Op: vm.OpInput},
		{Op: vm.OpLoopStart, Arg: 7},
		{Op: vm.OpLoopEnd, Arg: 6},
	}},
	{"nested", "+[>[-]<-]", vm.Program{
		{Op: vm.OpCellInc},
		{Op: vm.OpLoopStart, Arg: 8},
		{Op: vm.OpPointerInc},
		{Op: vm.OpLoopStart, Arg: 5},
		{Op: vm.OpCellDec},
		{Op: vm.OpLoopEnd, Arg: 3},
		{Op: vm.OpPointerDec},
		{Op: vm.OpCellDec},
		{Op: vm.OpLoopEnd, Arg: 1},
	}},
	{"siblings", "[][[]]", vm.Program{
		{Op: vm.OpLoopStart, Arg: 1},
		{Op: vm.OpLoopEnd, Arg: 0},
		{Op: vm.OpLoopStart, Arg: 5},
		{Op: vm.OpLoopStart, Arg: 4},
		{Op: vm.OpLoopEnd, Arg: 3},
		{Op: vm.OpLoopEnd, Arg: 2},
	}},
	{"interleaved", "+ one\r\n[ loop\x80\xff ]", vm.Program{
		{Op: vm.OpCellInc},
		{Op: vm.OpLoopStart, Arg: 2},
		{Op: vm.OpLoopEnd, Arg: 1},
	}},
}

func check(t *testing.T, testName string, got, want vm.Program) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: program length: expected %d, got %d", testName, len(want), len(got))
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: instruction %d: expected %v, got %v", testName, i, want[i], got[i])
		}
	}
}

func TestCompile(t *testing.T) {
	for _, test := range tests {
		p, err := compiler.Compile(test.name, strings.NewReader(test.code))
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		check(t, test.name, p, test.prog)
		if err = p.Validate(); err != nil {
			t.Errorf("%s: %v", test.name, err)
		}
	}
}

// loop targets must point at each other whatever the nesting.
func TestCompile_targets(t *testing.T) {
	code := strings.Repeat("[", 100) + "+" + strings.Repeat("]", 100) + strings.Repeat("[-]", 50)
	p, err := compiler.Compile("targets", strings.NewReader(code))
	if err != nil {
		t.Fatal(err)
	}
	for pc, ins := range p {
		switch ins.Op {
		case vm.OpLoopStart:
			if e := p[ins.Arg]; e.Op != vm.OpLoopEnd || e.Arg != pc {
				t.Errorf("[ at %d points to %v at %d", pc, e, ins.Arg)
			}
		case vm.OpLoopEnd:
			if s := p[ins.Arg]; s.Op != vm.OpLoopStart || s.Arg != pc {
				t.Errorf("] at %d points to %v at %d", pc, s, ins.Arg)
			}
		}
	}
	if p[0].Arg != 200 {
		t.Errorf("outer loop: expected end at 200, got %d", p[0].Arg)
	}
}

func TestCompile_errors(t *testing.T) {
	var errTests = [...]struct {
		code   string
		index  int
		open   bool
		line   int
		column int
	}{
		{"]", 0, false, 1, 1},
		{"+-]", 2, false, 1, 3},
		{"[]]", 2, false, 1, 3},
		{"comment +\n  ] [", 1, false, 2, 3},
		{"[", 0, true, 1, 1},
		{"+[", 1, true, 1, 2},
		{"[[]", 0, true, 1, 1},
		{"[\n [\n  [-]\n ", 1, true, 2, 2},
		{"[][", 2, true, 1, 3},
	}
	for _, test := range errTests {
		_, err := compiler.Compile("test_errors", strings.NewReader(test.code))
		be, ok := err.(*compiler.BracketError)
		if !ok {
			t.Errorf("%q: expected *BracketError, got %v", test.code, err)
			continue
		}
		if be.Index != test.index || be.Open != test.open {
			t.Errorf("%q: expected index %d (open: %v), got %d (open: %v)", test.code, test.index, test.open, be.Index, be.Open)
		}
		if be.Pos.Line != test.line || be.Pos.Column != test.column {
			t.Errorf("%q: expected position %d:%d, got %s", test.code, test.line, test.column, be.Pos)
		}
	}
}

func TestBracketError_Error(t *testing.T) {
	_, err := compiler.Compile("prog.bf", strings.NewReader("+\n+]"))
	expected := "prog.bf:2:2: unmatched ']' at: 2"
	if err == nil || err.Error() != expected {
		t.Errorf("Expected: %s\nGot: %v\n", expected, err)
	}
	_, err = compiler.Compile("prog.bf", strings.NewReader("[["))
	expected = "prog.bf:1:2: unmatched '[' at: 1"
	if err == nil || err.Error() != expected {
		t.Errorf("Expected: %s\nGot: %v\n", expected, err)
	}
}

func TestCompile_readError(t *testing.T) {
	r := iotest.TimeoutReader(strings.NewReader("+++"))
	_, err := compiler.Compile("timeout", io.MultiReader(strings.NewReader("++"), r))
	if errors.Cause(err) != iotest.ErrTimeout {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "add.bf")
	err := os.WriteFile(fn, []byte("++>+++++\n[-<+>]<\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	p, err := compiler.CompileFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 15 {
		t.Errorf("expected 15 instructions, got %d", len(p))
	}
	_, err = compiler.CompileFile(filepath.Join(dir, "missing.bf"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("expected not exist error, got: %v", err)
	}
}

func TestDisassemble(t *testing.T) {
	p, err := compiler.Compile("disasm", strings.NewReader("+[-]"))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	var got []string
	for pc := 0; pc < len(p)+1; {
		b.Reset()
		pc, err = compiler.Disassemble(p, pc, &b)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, b.String())
	}
	expected := []string{"+", "[ 3", "-", "] 1", "???"}
	if strings.Join(got, ",") != strings.Join(expected, ",") {
		t.Errorf("Expected: %v\nGot: %v\n", expected, got)
	}
}
