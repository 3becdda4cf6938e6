package fixtures

import (
	"path/filepath"
	"testing"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/movegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := Open(filepath.Join(t.TempDir(), "perft-cache"))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestGetOrComputeCachesPerftResult(t *testing.T) {
	cache := openTestCache(t)
	calls := 0
	compute := func() uint64 {
		calls++
		pos, err := board.ParseFEN(board.StartFEN)
		require.NoError(t, err)
		return movegen.Perft(pos, 3)
	}

	first, err := cache.GetOrCompute(board.StartFEN, 3, compute)
	require.NoError(t, err)
	assert.Equal(t, uint64(8902), first)
	assert.Equal(t, 1, calls)

	second, err := cache.GetOrCompute(board.StartFEN, 3, compute)
	require.NoError(t, err)
	assert.Equal(t, uint64(8902), second)
	assert.Equal(t, 1, calls, "second call should hit the cache, not recompute")
}

func TestWarmPerftSuitePopulatesCache(t *testing.T) {
	cache := openTestCache(t)

	cases := map[string]int{
		board.StartFEN: 2,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1": 1,
	}

	run := func(fen string, depth int) uint64 {
		pos, err := board.ParseFEN(fen)
		require.NoError(t, err)
		return movegen.Perft(pos, depth)
	}

	require.NoError(t, cache.WarmPerftSuite(cases, run))

	nodes, found, err := cache.Get(board.StartFEN, 2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint64(400), nodes)
}

func TestGetMissingEntry(t *testing.T) {
	cache := openTestCache(t)
	_, found, err := cache.Get("no such fen", 1)
	require.NoError(t, err)
	assert.False(t, found)
}
