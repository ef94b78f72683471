package rng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDeriveSeedAvalanche checks that neighbouring inputs map to distinct,
// well-separated seeds.
func TestDeriveSeedAvalanche(t *testing.T) {
	seen := make(map[uint64]struct{})
	var p, s uint64
	for p = 0; p < 8; p++ {
		for s = 0; s < 8; s++ {
			seen[deriveSeed(p, s)] = struct{}{}
		}
	}
	require.Len(t, seen, 64)

	require.Equal(t, deriveSeed(42, 7), deriveSeed(42, 7))
	require.NotEqual(t, deriveSeed(42, 7), deriveSeed(43, 7))
}
