// Package memoize caches the results of single-argument functions.
package memoize

import "reflect"

// Memoize wraps a single-argument function with an unbounded result cache
// owned by the returned closure. The cache is never evicted and lives as
// long as the wrapper is referenced.
//
// A cached zero value (empty string, zero, nil) is treated as a miss and
// recomputed on the next call. The result stays correct either way; wrapped
// functions that legitimately return zero values just lose the caching.
// The wrapper is not safe for concurrent use.
func Memoize[R any](fn func(string) R) func(string) R {
	cache := make(map[string]R)
	return func(arg string) R {
		if hit, ok := cache[arg]; ok && !reflect.ValueOf(&hit).Elem().IsZero() {
			return hit
		}
		result := fn(arg)
		cache[arg] = result
		return result
	}
}
