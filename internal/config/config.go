// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.

// Package config reads the environment-driven defaults for the module's
// tunable components. Invalid values are logged and replaced by the
// built-in defaults, never returned to the caller.
package config

import (
	"os"
	"strconv"

	"github.com/GabrielCS08/data-structures/log"
)

// Configuration environment variables
const (
	envLRUMaxItems  = "DATA_STRUCTURES_LRU_MAX_ITEMS"
	envLRUShardBits = "DATA_STRUCTURES_LRU_SHARD_BITS"
)

// Configuration constants and default values
const (
	defaultLRUMaxItems  = 4_096
	defaultLRUShardBits = 4
	maxLRUShardBits     = 12
)

// LRUMaxItems returns the default maximum number of items an LRU cache
// holds, reading the environment and falling back to 4096.
func LRUMaxItems() int {
	raw, present := os.LookupEnv(envLRUMaxItems)
	if !present {
		return defaultLRUMaxItems
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 {
		log.Debug("config: could not use %s=%q as a positive item count. Defaulting to %d", envLRUMaxItems, raw, defaultLRUMaxItems)
		return defaultLRUMaxItems
	}
	return count
}

// LRUShardBits returns the default number of bits used to shard an LRU
// cache into buckets (the cache gets 2^bits buckets), reading the
// environment and falling back to 4. Values outside [1, 12] are rejected.
func LRUShardBits() uint8 {
	raw, present := os.LookupEnv(envLRUShardBits)
	if !present {
		return defaultLRUShardBits
	}
	bits, err := strconv.ParseUint(raw, 10, 8)
	if err != nil || bits < 1 || bits > maxLRUShardBits {
		log.Debug("config: %s value must be between 1 and %d. Defaulting to %d", envLRUShardBits, maxLRUShardBits, defaultLRUShardBits)
		return defaultLRUShardBits
	}
	return uint8(bits)
}
