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
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
)

func TestCellType_Set(t *testing.T) {
	var c cellType
	for _, s := range []string{"i8", "u8", "i16", "u16", "i32", "u32", "i64", "U64"} {
		if err := c.Set(s); err != nil {
			t.Errorf("%s: %v", s, err)
		}
		if c.String() != strings.ToLower(s) {
			t.Errorf("%s: got %s", s, c.String())
		}
	}
	for _, s := range []string{"", "i128", "int8", "u"} {
		if err := c.Set(s); err == nil {
			t.Errorf("%q: expected an error", s)
		}
	}
	if c != "u64" {
		t.Errorf("failed Set changed the value to %s", c)
	}
}

func TestRawReader(t *testing.T) {
	r := &rawReader{r: strings.NewReader("ab\x04cd")}
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "ab" {
		t.Errorf("Expected ab, got %q", b)
	}
	if n, err := r.Read(make([]byte, 4)); n != 0 || err != io.EOF {
		t.Errorf("Expected EOF after CTRL-D, got %d, %v", n, err)
	}
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func resetFlags() {
	tapeSize = vm.DefaultTapeSize
	cell = "i32"
	rawIO = false
	withFiles = nil
}

func TestLoadConfig(t *testing.T) {
	defer resetFlags()
	fn := writeFile(t, "bfvm.toml", `
tape = 100
cell = "u8"
raw = true
with = ["a.txt", "b.txt"]
`)
	resetFlags()
	withFiles = fileList{"c.txt"}
	if err := loadConfig(fn, nil); err != nil {
		t.Fatalf("%+v", err)
	}
	if tapeSize != 100 || cell != "u8" || !rawIO {
		t.Errorf("bad settings: tape=%d cell=%s raw=%v", tapeSize, cell, rawIO)
	}
	if strings.Join(withFiles, ",") != "a.txt,b.txt,c.txt" {
		t.Errorf("bad input list: %v", withFiles)
	}

	// flags set on the command line win
	resetFlags()
	tapeSize = 42
	if err := loadConfig(fn, map[string]bool{"tape": true, "cell": true}); err != nil {
		t.Fatalf("%+v", err)
	}
	if tapeSize != 42 || cell != "i32" || !rawIO {
		t.Errorf("bad settings: tape=%d cell=%s raw=%v", tapeSize, cell, rawIO)
	}
}

func TestLoadConfig_errors(t *testing.T) {
	defer resetFlags()
	for _, contents := range []string{
		`cell = "f32"`,
		`tape = "big"`,
		`unknown = 1`,
		`tape = `,
	} {
		resetFlags()
		if err := loadConfig(writeFile(t, "bad.toml", contents), nil); err == nil {
			t.Errorf("%q: expected an error", contents)
		}
	}
	err := loadConfig(filepath.Join(t.TempDir(), "none.toml"), nil)
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestRunAs(t *testing.T) {
	defer resetFlags()
	resetFlags()
	tapeSize = 2
	fn := writeFile(t, "wrap.bf", "-<")
	for c := range cellTypes {
		err := runAs(cellType(c), fn, strings.NewReader(""))
		if e, ok := err.(*vm.MemoryError); !ok || e.PC != 1 {
			t.Errorf("%s: expected memory error at 1, got %v", c, err)
		}
	}
	if err := runAs("f64", fn, nil); err == nil {
		t.Error("expected an error for an unsupported cell type")
	}
	if err := listProgram(filepath.Join(t.TempDir(), "none.bf")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
