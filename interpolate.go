// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hierconf

import (
	"fmt"
	"strings"
)

// Resolver resolves variable references during interpolation.
// [Config] implements it, resolving against its own keys.
type Resolver interface {
	Get(key string) (any, bool)
}

// Interpolate substitutes `${key}` references inside a string value by
// resolving each key against the given resolver. A value that is exactly
// one reference resolves to the referenced value itself, preserving its
// type. Unresolvable references stay verbatim. Non-string values pass
// through unchanged.
func Interpolate(value any, resolver Resolver) any {
	str, ok := value.(string)
	if !ok || resolver == nil || !strings.Contains(str, "${") {
		return value
	}

	if key, ok := wholeReference(str); ok {
		if resolved, ok := resolver.Get(key); ok {
			return resolved
		}

		return value
	}

	var interpolated strings.Builder
	rest := str
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			interpolated.WriteString(rest)

			break
		}
		end := strings.Index(rest[start:], "}")
		if end < 0 {
			interpolated.WriteString(rest)

			break
		}
		end += start

		interpolated.WriteString(rest[:start])
		key := rest[start+2 : end]
		if resolved, ok := resolver.Get(key); ok {
			interpolated.WriteString(fmt.Sprint(resolved))
		} else {
			interpolated.WriteString(rest[start : end+1])
		}
		rest = rest[end+1:]
	}

	return interpolated.String()
}

// wholeReference reports whether str is exactly one `${key}` reference.
func wholeReference(str string) (string, bool) {
	if !strings.HasPrefix(str, "${") || !strings.HasSuffix(str, "}") {
		return "", false
	}

	key := str[2 : len(str)-1]
	if strings.Contains(key, "${") || strings.Contains(key, "}") {
		return "", false
	}

	return key, true
}
