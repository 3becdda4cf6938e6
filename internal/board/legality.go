package board

// CheckInfo precomputes everything move_gives_check needs so it can be
// reused across an entire move list without rescanning the board for
// every candidate move.
type CheckInfo struct {
	// CheckSq[pt] is the set of squares from which a piece of type pt
	// would give direct check to the enemy king, indexed by PieceType.
	CheckSq [7]Bitboard

	// DcCandidates are our pieces that, if moved, uncover a check from
	// one of our sliders onto the enemy king.
	DcCandidates Bitboard

	// Pinned are our pieces pinned against our own king.
	Pinned Bitboard

	EnemyKingSq Square
}

// NewCheckInfo builds a CheckInfo for the side to move in pos.
func NewCheckInfo(pos *Position) CheckInfo {
	us := pos.SideToMove
	them := us.Other()
	ksq := pos.KingSquare[them]
	occ := pos.AllOccupied

	ci := CheckInfo{
		EnemyKingSq:  ksq,
		Pinned:       pos.PinnedPieces(us),
		DcCandidates: pos.DiscoveredCheckCandidates(),
	}

	ci.CheckSq[Pawn] = PawnAttacks(ksq, them)
	ci.CheckSq[Knight] = KnightAttacks(ksq)
	ci.CheckSq[Bishop] = BishopAttacks(ksq, occ)
	ci.CheckSq[Rook] = RookAttacks(ksq, occ)
	ci.CheckSq[Queen] = ci.CheckSq[Bishop] | ci.CheckSq[Rook]
	ci.CheckSq[King] = Empty

	return ci
}

// MoveGivesCheck reports whether playing m would put the opponent in
// check, without actually making the move. Direct checks are read off
// ci.CheckSq; discovered checks come from ci.DcCandidates; promotions,
// en passant, and castling each need a special case because the piece
// that ends up attacking the king is not simply the piece that started
// the move.
func (p *Position) MoveGivesCheck(m Move, ci CheckInfo) bool {
	from, to := m.From(), m.To()
	piece := p.PieceAt(from)
	pt := piece.Type()

	if !m.IsPromotion() && ci.CheckSq[pt]&SquareBB(to) != 0 {
		return true
	}

	if ci.DcCandidates&SquareBB(from) != 0 && !Aligned(from, to, ci.EnemyKingSq) {
		return true
	}

	switch {
	case m.IsPromotion():
		return p.promotionGivesCheck(from, to, m.Promotion(), ci.EnemyKingSq)
	case m.IsEnPassant():
		return p.enPassantGivesCheck(from, to, ci.EnemyKingSq)
	case m.IsCastling():
		return p.castlingGivesCheck(piece.Color(), from, to, ci.EnemyKingSq)
	}

	return false
}

func (p *Position) promotionGivesCheck(from, to Square, promo PieceType, enemyKing Square) bool {
	occ := (p.AllOccupied ^ SquareBB(from)) | SquareBB(to)
	switch promo {
	case Knight:
		return KnightAttacks(to)&SquareBB(enemyKing) != 0
	case Bishop:
		return BishopAttacks(to, occ)&SquareBB(enemyKing) != 0
	case Rook:
		return RookAttacks(to, occ)&SquareBB(enemyKing) != 0
	case Queen:
		return QueenAttacks(to, occ)&SquareBB(enemyKing) != 0
	}
	return false
}

func (p *Position) enPassantGivesCheck(from, to Square, enemyKing Square) bool {
	us := p.PieceAt(from).Color()
	capturedSq := NewSquare(to.File(), from.Rank())
	occ := p.AllOccupied ^ SquareBB(from) ^ SquareBB(capturedSq) | SquareBB(to)
	return (RookAttacks(enemyKing, occ)&(p.Pieces[us][Rook]|p.Pieces[us][Queen]) != 0) ||
		(BishopAttacks(enemyKing, occ)&(p.Pieces[us][Bishop]|p.Pieces[us][Queen]) != 0)
}

func (p *Position) castlingGivesCheck(us Color, kingFrom, rookFrom Square, enemyKing Square) bool {
	isKingSide := rookFrom > kingFrom
	kingTo := relativeSquare(us, pick(isKingSide, G1, C1))
	rookTo := relativeSquare(us, pick(isKingSide, F1, D1))

	occ := p.AllOccupied
	occ &^= SquareBB(kingFrom) | SquareBB(rookFrom)
	occ |= SquareBB(kingTo) | SquareBB(rookTo)

	return RookAttacks(rookTo, occ)&SquareBB(enemyKing) != 0
}

// IsPseudoLegal reports whether m is structurally legal in p: there is
// a piece of the moving side on From(), the move's shape matches what
// that piece type can do given current occupancy, and the destination
// isn't occupied by a piece of the same color. It does not check
// whether the move leaves the mover's own king in check — that is
// PlMoveIsLegal's job, applied after this.
func (p *Position) IsPseudoLegal(m Move) bool {
	us := p.SideToMove
	from, to := m.From(), m.To()
	piece := p.PieceAt(from)

	if piece == NoPiece || piece.Color() != us {
		return false
	}

	pt := piece.Type()

	if m.IsCastling() {
		// To() legitimately holds the mover's own castling rook under
		// this encoding (see move.go), so the same-color occupancy
		// check below doesn't apply here.
		return p.isPseudoLegalCastle(m)
	}
	if p.PieceAt(to) != NoPiece && p.PieceAt(to).Color() == us {
		return false
	}
	if m.IsEnPassant() {
		return pt == Pawn && to == p.EnPassant() && p.enPassantShapeOK(us, from, to) && p.enPassantEvadesCheck(us, from, to)
	}
	if m.IsPromotion() {
		return pt == Pawn && to.Rank() == promotionRank(us) && p.pawnMoveShapeOK(us, from, to) && p.evadesCheckIfAny(Pawn, from, to)
	}

	var shapeOK bool
	switch pt {
	case Pawn:
		shapeOK = p.pawnMoveShapeOK(us, from, to) && to.Rank() != promotionRank(us)
	case Knight:
		shapeOK = KnightAttacks(from)&SquareBB(to) != 0
	case Bishop:
		shapeOK = BishopAttacks(from, p.AllOccupied)&SquareBB(to) != 0
	case Rook:
		shapeOK = RookAttacks(from, p.AllOccupied)&SquareBB(to) != 0
	case Queen:
		shapeOK = QueenAttacks(from, p.AllOccupied)&SquareBB(to) != 0
	case King:
		shapeOK = KingAttacks(from)&SquareBB(to) != 0
	}
	if !shapeOK {
		return false
	}

	return p.evadesCheckIfAny(pt, from, to)
}

// evadesCheckIfAny reports whether, given the side to move is in check,
// a shape-legal move of piece type pt from->to actually addresses the
// check: a non-king move must capture the checking piece or interpose
// on the line between it and the king (and is rejected outright under
// double check, where only a king move can help); a king move must not
// step to a square still attacked once the king itself is lifted off
// its origin square. Returns true unconditionally when not in check.
func (p *Position) evadesCheckIfAny(pt PieceType, from, to Square) bool {
	checkers := p.Checkers()
	if checkers == 0 {
		return true
	}

	us := p.SideToMove
	if pt != King {
		if !checkers.OnlyOne() {
			return false
		}
		checkSq := checkers.LSB()
		return (Between(checkSq, p.KingSquare[us])|checkers)&SquareBB(to) != 0
	}

	occ := p.AllOccupied &^ SquareBB(from)
	return p.AttackersByColor(to, us.Other(), occ) == 0
}

// enPassantEvadesCheck is evadesCheckIfAny's en passant variant: the
// captured pawn sits on capturedSq, not on the destination square, so
// capturing it can address the check even when to itself is neither
// the checker's square nor a blocking square.
func (p *Position) enPassantEvadesCheck(us Color, from, to Square) bool {
	checkers := p.Checkers()
	if checkers == 0 {
		return true
	}
	if !checkers.OnlyOne() {
		return false
	}
	checkSq := checkers.LSB()
	if NewSquare(to.File(), from.Rank()) == checkSq {
		return true
	}
	return (Between(checkSq, p.KingSquare[us])|checkers)&SquareBB(to) != 0
}

// promotionRank is the rank index (0-7) a pawn of color c promotes on.
func promotionRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

func (p *Position) pawnMoveShapeOK(us Color, from, to Square) bool {
	if PawnAttacks(from, us)&SquareBB(to) != 0 {
		return p.PieceAt(to) != NoPiece && p.PieceAt(to).Color() != us
	}
	if PawnPushes(from, us)&SquareBB(to) != 0 {
		return p.IsEmpty(to)
	}
	startRank := 1
	if us == Black {
		startRank = 6
	}
	if from.Rank() == startRank {
		mid := NewSquare(from.File(), (from.Rank()+to.Rank())/2)
		doublePush := NewSquare(from.File(), startRank+2*sign(int(to.Rank())-startRank))
		if to == doublePush && from.File() == to.File() {
			return p.IsEmpty(mid) && p.IsEmpty(to)
		}
	}
	return false
}

func (p *Position) enPassantShapeOK(us Color, from, to Square) bool {
	if PawnAttacks(from, us)&SquareBB(to) == 0 {
		return false
	}
	capturedSq := NewSquare(to.File(), from.Rank())
	captured := p.PieceAt(capturedSq)
	return captured.Type() == Pawn && captured.Color() == us.Other()
}

func (p *Position) isPseudoLegalCastle(m Move) bool {
	us := p.SideToMove
	from, to := m.From(), m.To()
	if from != p.KingSquare[us] {
		return false
	}
	isKingSide := m.IsKingSideCastle()
	if p.CastleRookSquare(us, isKingSide) != to {
		return false
	}
	if !p.st.CastleRights.CanCastle(us, isKingSide) {
		return false
	}
	return !p.CastlingImpeded(us, isKingSide) && !p.castlePathAttacked(us, isKingSide)
}

func (p *Position) castlePathAttacked(us Color, isKingSide bool) bool {
	kingFrom := p.KingSquare[us]
	kingTo := relativeSquare(us, pick(isKingSide, G1, C1))
	lo, hi := kingFrom, kingTo
	if lo > hi {
		lo, hi = hi, lo
	}
	for s := lo; s <= hi; s++ {
		if p.IsSquareAttacked(s, us.Other()) {
			return true
		}
	}
	return false
}

// PlMoveIsLegal reports whether a pseudo-legal move m leaves the
// mover's own king safe. pinned is PinnedPieces(p.SideToMove), computed
// once by the caller and reused across a whole move list.
func (p *Position) PlMoveIsLegal(m Move, pinned Bitboard) bool {
	us := p.SideToMove
	from, to := m.From(), m.To()
	ksq := p.KingSquare[us]

	if m.IsEnPassant() {
		capturedSq := NewSquare(to.File(), from.Rank())
		occ := p.AllOccupied ^ SquareBB(from) ^ SquareBB(capturedSq) ^ SquareBB(to)
		return (RookAttacks(ksq, occ)&(p.Pieces[us.Other()][Rook]|p.Pieces[us.Other()][Queen]) == 0) &&
			(BishopAttacks(ksq, occ)&(p.Pieces[us.Other()][Bishop]|p.Pieces[us.Other()][Queen]) == 0)
	}

	if from == ksq {
		if m.IsCastling() {
			return true // shape/path safety already verified by IsPseudoLegal
		}
		occ := (p.AllOccupied ^ SquareBB(from)) | SquareBB(to)
		return p.AttackersByColor(to, us.Other(), occ) == 0
	}

	if pinned&SquareBB(from) == 0 {
		return true
	}

	return Aligned(from, to, ksq)
}
