package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFENStartingPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	assert.Equal(t, White, pos.SideToMove)
	assert.Equal(t, AllCastling, pos.CastlingRights())
	assert.Equal(t, NoSquare, pos.EnPassant())
	assert.Equal(t, 0, pos.HalfMoveClock())
	assert.Equal(t, 1, pos.FullMoveNumber)
	assert.Equal(t, WhiteRook, pos.PieceAt(A1))
	assert.Equal(t, BlackKing, pos.PieceAt(E8))
	assert.Equal(t, E1, pos.KingSquare[White])
	assert.Equal(t, E8, pos.KingSquare[Black])
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, pos.ToFEN(), "round trip mismatch for %s", fen)
	}
}

func TestParseFENRejectsShortInput(t *testing.T) {
	_, err := ParseFEN("8/8/8/8/8/8/8/8")
	assert.Error(t, err)
}

func TestParseFENDropsPhantomEnPassant(t *testing.T) {
	// d6 is listed as an en passant square, but no white pawn can
	// actually capture there, so it should not survive parsing.
	pos, err := ParseFEN("8/8/3p4/8/8/8/8/4K2k w - d6 0 1")
	require.NoError(t, err)
	assert.Equal(t, NoSquare, pos.EnPassant())
}

func TestParseFENKeepsRealEnPassant(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	assert.Equal(t, D6, pos.EnPassant())
}

func TestParseFENShredderNotation(t *testing.T) {
	pos, err := ParseFEN("rk6/8/8/8/8/8/8/RK6 w Aa - 0 1")
	require.NoError(t, err)
	assert.True(t, pos.CastlingRights().CanCastle(White, false))
	assert.Equal(t, A1, pos.CastleRookSquare(White, false))
}

func TestParseFENXFenClassicalTokenOnNonstandardRank(t *testing.T) {
	// The queenside rook sits on b1, not the a1 corner; the classical 'Q'
	// token must still resolve to it by scanning inward from the corner.
	pos, err := ParseFEN("1rk5/8/8/8/8/8/8/1RK5 w Qq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, B1, pos.CastleRookSquare(White, false))
}
