package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreMgEgRoundTrip(t *testing.T) {
	s := makeScore(37, -52)
	assert.Equal(t, 37, s.Mg())
	assert.Equal(t, -52, s.Eg())
}

func TestScoreAddSubNeg(t *testing.T) {
	a := makeScore(10, 20)
	b := makeScore(3, -4)

	sum := a.add(b)
	assert.Equal(t, 13, sum.Mg())
	assert.Equal(t, 16, sum.Eg())

	diff := a.sub(b)
	assert.Equal(t, 7, diff.Mg())
	assert.Equal(t, 24, diff.Eg())

	neg := a.neg()
	assert.Equal(t, -10, neg.Mg())
	assert.Equal(t, -20, neg.Eg())
}

func TestPSQSymmetricBetweenColors(t *testing.T) {
	white := PSQ(WhitePawn, E4)
	black := PSQ(BlackPawn, E4.Mirror())
	assert.Equal(t, white.Mg(), -black.Mg())
	assert.Equal(t, white.Eg(), -black.Eg())
}

func TestZobristCastlingSubsetsAreXorsOfSingleRights(t *testing.T) {
	combined := ZobristCastling(WhiteKingSideCastle | WhiteQueenSideCastle)
	want := ZobristCastling(WhiteKingSideCastle) ^ ZobristCastling(WhiteQueenSideCastle)
	assert.Equal(t, want, combined)
}

func TestZobristCastlingAllRightsIsXorOfAllFour(t *testing.T) {
	want := ZobristCastling(WhiteKingSideCastle) ^ ZobristCastling(WhiteQueenSideCastle) ^
		ZobristCastling(BlackKingSideCastle) ^ ZobristCastling(BlackQueenSideCastle)
	assert.Equal(t, want, ZobristCastling(AllCastling))
}
