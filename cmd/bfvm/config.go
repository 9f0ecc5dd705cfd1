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
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type config struct {
	Tape int      `toml:"tape"`
	Cell string   `toml:"cell"`
	Raw  bool     `toml:"raw"`
	With []string `toml:"with"`
}

// loadConfig loads settings from the TOML file fileName. Settings for the
// flags in set are ignored.
func loadConfig(fileName string, set map[string]bool) error {
	var c config
	md, err := toml.DecodeFile(fileName, &c)
	if err != nil {
		return errors.Wrap(err, "config")
	}
	if u := md.Undecoded(); len(u) > 0 {
		return errors.Errorf("%s: unknown configuration key %q", fileName, u[0].String())
	}
	if md.IsDefined("tape") && !set["tape"] {
		tapeSize = c.Tape
	}
	if md.IsDefined("cell") && !set["cell"] {
		if err = cell.Set(c.Cell); err != nil {
			return errors.Wrap(err, fileName)
		}
	}
	if md.IsDefined("raw") && !set["raw"] {
		rawIO = c.Raw
	}
	if len(c.With) > 0 {
		withFiles = append(c.With, withFiles...)
	}
	return nil
}
