package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUnmakeRestoresKeyAndFEN(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	beforeKey := pos.Key()
	beforeFEN := pos.ToFEN()

	m := NewMove(E2, E4)
	var st StateInfo
	pos.MakeMove(m, &st)

	assert.NotEqual(t, beforeKey, pos.Key())

	pos.UnmakeMove(m)

	assert.Equal(t, beforeKey, pos.Key())
	assert.Equal(t, beforeFEN, pos.ToFEN())
}

func TestMakeMoveSetsEnPassantSquare(t *testing.T) {
	// The black pawn on d4 can capture on e3 after the double push.
	pos, err := ParseFEN("4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	var st StateInfo
	pos.MakeMove(NewMove(E2, E4), &st)
	assert.Equal(t, E3, pos.EnPassant())
}

func TestMakeMovePromotionRoundTrips(t *testing.T) {
	pos, err := ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	before := pos.ToFEN()

	m := NewPromotion(A7, A8, Queen)
	var st StateInfo
	pos.MakeMove(m, &st)

	assert.Equal(t, WhiteQueen, pos.PieceAt(A8))
	assert.Equal(t, NoPiece, pos.PieceAt(A7))

	pos.UnmakeMove(m)
	assert.Equal(t, before, pos.ToFEN())
}

func TestMakeMoveEnPassantCaptureRoundTrips(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	before := pos.ToFEN()
	beforeKey := pos.Key()

	m := NewEnPassant(E5, D6)
	var st StateInfo
	pos.MakeMove(m, &st)

	assert.Equal(t, NoPiece, pos.PieceAt(D5), "captured pawn should be removed")
	assert.Equal(t, WhitePawn, pos.PieceAt(D6))

	pos.UnmakeMove(m)
	assert.Equal(t, before, pos.ToFEN())
	assert.Equal(t, beforeKey, pos.Key())
}

func TestMakeMoveCastlingRoundTrips(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := pos.ToFEN()

	m := NewCastling(E1, H1)
	var st StateInfo
	pos.MakeMove(m, &st)

	assert.Equal(t, WhiteKing, pos.PieceAt(G1))
	assert.Equal(t, WhiteRook, pos.PieceAt(F1))
	assert.Equal(t, NoPiece, pos.PieceAt(E1))
	assert.Equal(t, NoPiece, pos.PieceAt(H1))
	assert.False(t, pos.CastlingRights().CanCastle(White, true))
	assert.False(t, pos.CastlingRights().CanCastle(White, false))

	pos.UnmakeMove(m)
	assert.Equal(t, before, pos.ToFEN())
}

func TestMakeMoveRevokesCastlingRightsOnRookMove(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var st StateInfo
	pos.MakeMove(NewMove(H1, H2), &st)
	assert.False(t, pos.CastlingRights().CanCastle(White, true))
	assert.True(t, pos.CastlingRights().CanCastle(White, false))
}

func TestNullMoveRoundTrips(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	beforeKey := pos.Key()

	var st StateInfo
	pos.MakeNullMove(&st)
	assert.Equal(t, Black, pos.SideToMove)

	pos.UnmakeNullMove()
	assert.Equal(t, beforeKey, pos.Key())
	assert.Equal(t, White, pos.SideToMove)
}

func TestPosIsOkAfterMakeUnmakeSequence(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	moves := []Move{
		NewMove(E2, E4),
		NewMove(G8, F6),
		NewMove(G1, F3),
	}
	var states [3]StateInfo
	for i, m := range moves {
		pos.MakeMove(m, &states[i])
		ok, step, err := pos.PosIsOk(DebugAll)
		assert.True(t, ok, "step %s failed after move %d: %v", step, i, err)
	}
	for i := len(moves) - 1; i >= 0; i-- {
		pos.UnmakeMove(moves[i])
	}
	ok, step, err := pos.PosIsOk(DebugAll)
	assert.True(t, ok, "step %s failed after full unmake: %v", step, err)
}
