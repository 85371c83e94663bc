// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hierconf

import (
	"log/slog"

	"github.com/go-viper/mapstructure/v2"
)

// WithDelimiter provides the delimiter used when specifying config keys.
//
// The default delimiter is `.`, which makes config keys like `parent.child.key`.
func WithDelimiter(delimiter string) Option {
	return func(options *options) {
		options.delimiter = delimiter
	}
}

// WithLogger provides the slog.Logger for logging.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

// WithTagName provides the struct tag name read by [Config.Unmarshal].
//
// The default tag name is `hierconf`.
func WithTagName(tagName string) Option {
	return func(options *options) {
		options.tagName = tagName
	}
}

// WithDecodeHook provides the mapstructure decode hook used by
// [Config.Unmarshal].
//
// The default decode hook handles time.Duration strings, comma separated
// slices and encoding.TextUnmarshaler implementations.
func WithDecodeHook(decodeHook mapstructure.DecodeHookFunc) Option {
	return func(options *options) {
		options.decodeHook = decodeHook
	}
}

// Option configures the given Config.
type Option func(*options)

type options Config
