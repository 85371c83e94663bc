// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hierconf

import (
	"log/slog"
	"reflect"
	"sync/atomic"
)

// Get returns the value under the given path from the default Config.
// It returns the zero value if there is an error.
func Get[T any](path string) T { //nolint:ireturn
	var value T
	if err := Unmarshal(path, &value); err != nil {
		slog.Error(
			"Could not read config, return empty value instead.",
			"error", err,
			"path", path,
			"type", reflect.TypeOf(value),
		)
	}

	return value
}

// Unmarshal reads configuration under the given path from the default
// Config and decodes it into the given object pointed to by target.
func Unmarshal(path string, target any) error {
	return defaultConfig.Load().Unmarshal(path, target)
}

// OnChange registers a change listener on the default Config.
func OnChange(onChange func(Event), types ...EventType) {
	defaultConfig.Load().OnChange(onChange, types...)
}

// SetDefault makes c the default [Config]. After this call, the package's
// top-level functions (e.g. [Get]) will read from c.
func SetDefault(c *Config) {
	if c == nil {
		panic("cannot set nil default config")
	}

	defaultConfig.Store(c)
}

// Default returns the default [Config].
func Default() *Config {
	return defaultConfig.Load()
}

var defaultConfig atomic.Pointer[Config] //nolint:gochecknoglobals

func init() { //nolint:gochecknoinits
	defaultConfig.Store(New())
}
