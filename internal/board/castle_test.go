package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastlingImpededWhenSquareOccupied(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1")
	require.NoError(t, err)
	assert.True(t, pos.CastlingImpeded(White, true), "f1 bishop blocks kingside castling")
	assert.False(t, pos.CastlingImpeded(White, false))
}

func TestCastlingNotImpededOnClearPath(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.False(t, pos.CastlingImpeded(White, true))
	assert.False(t, pos.CastlingImpeded(White, false))
}

func TestCastleRookSquareNoSquareWhenRightNeverGranted(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	assert.Equal(t, H1, pos.CastleRookSquare(White, true))
	assert.Equal(t, NoSquare, pos.CastleRookSquare(White, false))
}

func TestChess960AdjacentRookCastlingPath(t *testing.T) {
	// Shredder-FEN: king on c1, rook starting right next to it on d1 (so
	// this is the "kingside" rook by file order). The castle's path
	// (e1,f1,g1) is clear even though the rook starts adjacent to the
	// king rather than in a corner.
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/2KR4 w D - 0 1")
	require.NoError(t, err)
	pos.Chess960 = true
	assert.Equal(t, D1, pos.CastleRookSquare(White, true))
	assert.False(t, pos.CastlingImpeded(White, true))
}
