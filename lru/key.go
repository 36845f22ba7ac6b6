// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.

package lru

import (
	"github.com/aviddiviner/go-murmur"
)

// Key enumerates the key types the cache accepts. Integer keys are slotted
// into buckets by masking their low bits directly; string keys are run
// through murmur first.
type Key interface {
	int32 | int64 | uint32 | uint64 | int | uint | uintptr | string
}

// murmurSeed seeds the murmur hash used to slot string keys. It is a fixed
// constant so that a given key always lands in the same bucket.
const murmurSeed uint32 = 0x9747b28c

// slot32 reduces a key to the 32-bit value used for bucket masking.
func slot32[K Key](key K) uint32 {
	switch key := any(key).(type) {
	case int32:
		return uint32(key)
	case int64:
		return uint32(key)
	case uint32:
		return key
	case uint64:
		return uint32(key)
	case int:
		return uint32(key)
	case uint:
		return uint32(key)
	case uintptr:
		return uint32(key)
	case string:
		h := murmur.New32(murmurSeed)
		_, _ = h.Write([]byte(key))
		return h.Sum32()
	default:
		// The [Key] constraint makes this unreachable.
		panic("lru: unsupported key type")
	}
}
