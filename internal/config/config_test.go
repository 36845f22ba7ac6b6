// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLRUMaxItems(t *testing.T) {
	t.Run("Unset", func(t *testing.T) {
		require.NoError(t, clearEnv(t, envLRUMaxItems))
		require.Equal(t, defaultLRUMaxItems, LRUMaxItems())
	})

	t.Run("Valid", func(t *testing.T) {
		t.Setenv(envLRUMaxItems, "1024")
		require.Equal(t, 1024, LRUMaxItems())
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, raw := range []string{"", "banana", "-5", "0", "1.5"} {
			t.Setenv(envLRUMaxItems, raw)
			require.Equal(t, defaultLRUMaxItems, LRUMaxItems())
		}
	})
}

func TestLRUShardBits(t *testing.T) {
	t.Run("Unset", func(t *testing.T) {
		require.NoError(t, clearEnv(t, envLRUShardBits))
		require.Equal(t, uint8(defaultLRUShardBits), LRUShardBits())
	})

	t.Run("Valid", func(t *testing.T) {
		t.Setenv(envLRUShardBits, "6")
		require.Equal(t, uint8(6), LRUShardBits())
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, raw := range []string{"", "0", "13", "255", "-1", "two"} {
			t.Setenv(envLRUShardBits, raw)
			require.Equal(t, uint8(defaultLRUShardBits), LRUShardBits())
		}
	})
}

// clearEnv unsets name for the duration of the test, restoring it on
// cleanup ([testing.T.Setenv] can only set, not unset).
func clearEnv(t *testing.T, name string) error {
	t.Helper()
	t.Setenv(name, "") // registers the restore of the original value
	return os.Unsetenv(name)
}
