// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package file loads configuration from an OS file.
//
// File loads a file with the given path from the OS file system and
// parses it into a node tree. The parser is chosen by file extension
// (.xml, .yaml/.yml, .json, .properties; XML otherwise) and can be
// overridden with WithParser.
//
// By default, it returns error while loading if the file is not found.
// IgnoreFileNotExist can override the behavior to return an empty tree.
package file

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hierconf/hierconf"
)

// File is a Loader that loads configuration from an OS file.
//
// To create a new File, call [New].
type File struct {
	logger         *slog.Logger
	path           string
	parser         func([]byte) (*hierconf.Node, error)
	ignoreNotExist bool
}

// New creates a File with the given path and Option(s).
//
// It panics if the path is empty.
func New(path string, opts ...Option) File {
	if path == "" {
		panic("cannot create File with empty path")
	}

	option := &options{
		path: path,
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	option.logger = option.logger.WithGroup("hierconf.file")
	if option.parser == nil {
		option.parser = parserFor(path)
	}

	return File(*option)
}

func (f File) Load() (*hierconf.Node, error) {
	bytes, err := os.ReadFile(f.path)
	if err != nil {
		if f.ignoreNotExist && os.IsNotExist(err) {
			f.logger.Warn("Config file does not exist.", "file", f.path)

			return hierconf.NewNode(""), nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	tree, err := f.parser(bytes)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}

	return tree, nil
}

func (f File) String() string {
	return "file:" + f.path
}
