// Package hash computes the 64-bit identifiers used to look up string categories.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of s.
func ID(s string) uint64 {
	return xxhash.Sum64String(s)
}
