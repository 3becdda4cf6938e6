package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDrawByMaterialKingVsKing(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, pos.IsDrawByMaterial())
}

func TestIsDrawByMaterialKingAndBishopVsKing(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4KB2 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, pos.IsDrawByMaterial())
}

func TestIsNotDrawByMaterialWithRook(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, pos.IsDrawByMaterial())
}

func TestIsNotDrawByMaterialWithPawns(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, pos.IsDrawByMaterial())
}

func TestIsDrawByFiftyMoveRule(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	pos.st.Rule50 = 100
	assert.True(t, pos.IsDrawByFiftyMoveRule(true))
}

func TestIsNotDrawByFiftyMoveRuleBelowThreshold(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	pos.st.Rule50 = 99
	assert.False(t, pos.IsDrawByFiftyMoveRule(true))
}

func TestIsNotDrawByFiftyMoveRuleInCheckmate(t *testing.T) {
	// Fool's mate: Black's queen delivers checkmate on h4. rule50 is way
	// past the threshold, but with no legal reply and the king in check,
	// this is a checkmate, not a fifty-move draw.
	pos, err := ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	pos.st.Rule50 = 100
	assert.True(t, pos.InCheck())
	assert.False(t, pos.IsDrawByFiftyMoveRule(false))
}

func TestIsDrawByFiftyMoveRuleInCheckWithLegalReply(t *testing.T) {
	pos, err := ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	pos.st.Rule50 = 100
	assert.True(t, pos.InCheck())
	assert.True(t, pos.IsDrawByFiftyMoveRule(true))
}

func TestIsDrawByRepetitionAfterFullCycle(t *testing.T) {
	// Shuffling the knight out and back reproduces the exact position
	// (same side to move, same rights) four plies later.
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4KN2 w - - 0 1")
	require.NoError(t, err)

	moves := []Move{
		NewMove(F1, G3), NewMove(E8, D8),
		NewMove(G3, F1), NewMove(D8, E8),
	}
	var states [4]StateInfo
	for i, m := range moves {
		pos.MakeMove(m, &states[i])
	}

	assert.True(t, pos.IsDrawByRepetition(false))
}

func TestIsNotDrawByRepetitionTooFewPlies(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4KN2 w - - 0 1")
	require.NoError(t, err)

	moves := []Move{
		NewMove(F1, G3), NewMove(E8, D8),
	}
	var states [2]StateInfo
	for i, m := range moves {
		pos.MakeMove(m, &states[i])
	}

	assert.False(t, pos.IsDrawByRepetition(false))
}
