// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package fs loads configuration from a file system.
//
// FS loads a file with the given path from the fs.FS and parses it into a
// node tree. The parser is chosen by file extension (.xml, .yaml/.yml,
// .json, .properties; XML otherwise) and can be overridden with WithParser.
package fs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hierconf/hierconf"
	"github.com/hierconf/hierconf/provider/json"
	"github.com/hierconf/hierconf/provider/properties"
	"github.com/hierconf/hierconf/provider/xml"
	"github.com/hierconf/hierconf/provider/yaml"
)

// FS is a Loader that loads configuration from a file system.
//
// To create a new FS, call [New].
type FS struct {
	fs     fs.FS
	path   string
	parser func([]byte) (*hierconf.Node, error)
}

// New creates an FS with the given fs.FS, path and Option(s).
func New(fsys fs.FS, path string, opts ...Option) FS {
	option := &options{
		fs:   fsys,
		path: path,
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.parser == nil {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			option.parser = yaml.Parse
		case ".json":
			option.parser = json.Parse
		case ".properties":
			option.parser = properties.Parse
		default:
			option.parser = xml.Parse
		}
	}

	return FS(*option)
}

func (f FS) Load() (*hierconf.Node, error) {
	fsys := f.fs
	if fsys == nil {
		// Ignore error: It uses whatever returned.
		path, _ := os.Getwd()
		fsys = os.DirFS(path)
	}

	bytes, err := fs.ReadFile(fsys, f.path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	tree, err := f.parser(bytes)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}

	return tree, nil
}

func (f FS) String() string {
	return "fs:///" + f.path
}
