/*
 * Copyright 2019 The Kythe Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command iktokenize reads text and writes one formatted lexeme per line.
package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/creachadair-ik/ik"
	"github.com/creachadair-ik/ik/dict"
	"github.com/creachadair-ik/ik/format"
	"github.com/creachadair-ik/ik/ikconf"
	"github.com/creachadair-ik/ik/lexeme"
)

var configPath = flag.String("config", "", "path to an ikconf configuration file (required)")

func main() {
	flag.Parse()
	if *configPath == "" {
		slog.Error("missing required flag", "flag", "-config")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	dicts, err := loadDicts(cfg)
	if err != nil {
		slog.Error("loading dictionaries", "error", err)
		os.Exit(1)
	}

	in, err := openInput(flag.Args())
	if err != nil {
		slog.Error("opening input", "error", err)
		os.Exit(1)
	}
	defer in.Close()

	if err := run(os.Stdout, in, dicts, cfg); err != nil {
		slog.Error("tokenizing", "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*ikconf.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ikconf.Load(f)
}

func loadDicts(cfg *ikconf.Config) (*dict.Set, error) {
	s := dict.NewSet()
	if err := s.LoadMain(cfg.MainPath()); err != nil {
		return nil, err
	}
	if err := s.LoadQuantifier(cfg.QuantifierPath()); err != nil {
		return nil, err
	}
	s.LoadStopword(cfg.StopwordPath())
	s.LoadExtMain(cfg.ExtPaths())
	s.LoadExtStopword(cfg.ExtStopwordPaths())
	return s, nil
}

func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}

func run(w io.Writer, r io.Reader, dicts *dict.Set, cfg *ikconf.Config) error {
	tok := ik.New(r, dicts, cfg)
	for {
		l, ok, err := tok.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		encoded, err := format.Marshal([]lexeme.Lexeme{l})
		if err != nil {
			return err
		}
		if _, err := w.Write(encoded); err != nil {
			return err
		}
	}
}
