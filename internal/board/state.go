package board

// StateInfo is a node of the position's reversible-state history. Every
// MakeMove call receives one from the caller and threads it onto the
// position's own list via Previous; UnmakeMove walks back to it.
//
// The fields are split the way Stockfish's StateInfo is split: Reduced
// is copied forward by MakeMove and then adjusted (the caller doesn't
// need to touch it), Tail is rebuilt on every move.
type StateInfo struct {
	// Reduced: copied verbatim from the previous StateInfo by MakeMove,
	// then adjusted in place for the fields the move actually affects.
	PawnKey         uint64
	MaterialKey     uint64
	NonPawnMaterial [2]int
	CastleRights    CastlingRights
	Rule50          int
	PliesFromNull   int
	PsqScore        Score
	EpSquare        Square

	// Tail: not part of cloneReducedFrom; MakeMove rebuilds it on every
	// move (Key starts from the previous key and is updated
	// incrementally, CheckersBB and CapturedType are set fresh).
	Key          uint64
	CheckersBB   Bitboard
	CapturedType PieceType

	Previous *StateInfo
}

// cloneReducedFrom copies the reduced prefix from src, leaving the tail
// and Previous link untouched. Call before mutating the fields the
// current move changes.
func (st *StateInfo) cloneReducedFrom(src *StateInfo) {
	st.PawnKey = src.PawnKey
	st.MaterialKey = src.MaterialKey
	st.NonPawnMaterial = src.NonPawnMaterial
	st.CastleRights = src.CastleRights
	st.Rule50 = src.Rule50
	st.PliesFromNull = src.PliesFromNull
	st.PsqScore = src.PsqScore
	st.EpSquare = src.EpSquare
}
