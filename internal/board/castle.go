package board

// Castling bookkeeping: which files the king and rook start on, which
// squares must be vacant to castle, and which FEN tokens are legal to
// see in the castling field. Supports classical castling rights
// (K/Q/k/q) as well as Shredder-FEN / X-FEN notation, where the
// castling field names the rook's starting file directly (either as an
// uppercase/lowercase file letter, or — in Chess960 positions not
// starting from the symmetric back rank — as 'A'..'H'/'a'..'h').

// relativeSquare mirrors sq for Black so castling geometry can be
// expressed once, from White's point of view.
func relativeSquare(c Color, sq Square) Square {
	if c == White {
		return sq
	}
	return sq.Mirror()
}

// setCastleRight records that color c may castle with the rook
// starting on rookFrom, given the king currently stands on kingFrom.
// Called while parsing a FEN's castling field, before any move has
// been made.
func (p *Position) setCastleRight(c Color, kingFrom, rookFrom Square) {
	isKingSide := rookFrom > kingFrom
	idx := sideIndex(isKingSide)

	cr := castleRight(c, isKingSide)
	p.st.CastleRights |= cr
	p.castleRightsMask[kingFrom] |= cr
	p.castleRightsMask[rookFrom] |= cr
	p.castleRookSquare[c][idx] = rookFrom

	kingTo := relativeSquare(c, pick(isKingSide, G1, C1))
	rookTo := relativeSquare(c, pick(isKingSide, F1, D1))

	var path Bitboard
	lo, hi := rookFrom, rookTo
	if lo > hi {
		lo, hi = hi, lo
	}
	for s := lo; s <= hi; s++ {
		if s != kingFrom && s != rookFrom {
			path |= SquareBB(s)
		}
	}
	lo, hi = kingFrom, kingTo
	if lo > hi {
		lo, hi = hi, lo
	}
	for s := lo; s <= hi; s++ {
		if s != kingFrom && s != rookFrom {
			path |= SquareBB(s)
		}
	}
	p.castlePath[c][idx] = path
}

// sideIndex maps the kingSide bool onto castleRookSquare/castlePath's
// second axis (0 = kingside, 1 = queenside).
func sideIndex(isKingSide bool) int {
	if isKingSide {
		return kingSide
	}
	return queenSide
}

func pick(cond bool, a, b Square) Square {
	if cond {
		return a
	}
	return b
}

// CastleRookSquare returns where the rook starts for color c's
// kingside (isKingSide=true) or queenside castle, or NoSquare if that
// right has never been granted (e.g. non-standard starting positions).
func (p *Position) CastleRookSquare(c Color, isKingSide bool) Square {
	return p.castleRookSquare[c][sideIndex(isKingSide)]
}

// CastlingImpeded returns true if some piece other than the castling
// king/rook occupies a square the castle must pass through.
func (p *Position) CastlingImpeded(c Color, isKingSide bool) bool {
	return p.castlePath[c][sideIndex(isKingSide)]&p.AllOccupied != 0
}
