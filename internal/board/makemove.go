package board

// putPieceFull places piece on sq and folds the change into every
// incrementally maintained field of st: the main key, the pawn key,
// the material key, the psq score, and non-pawn material.
func (p *Position) putPieceFull(piece Piece, sq Square, st *StateInfo) {
	c, pt := piece.Color(), piece.Type()
	oldCount := p.pieceCount[c][pt]

	p.setPiece(piece, sq)

	st.Key ^= zobristPiece[c][pt][sq]
	st.PsqScore = st.PsqScore.add(PSQ(piece, sq))
	st.MaterialKey ^= zobristPiece[c][pt][oldCount]
	if pt == Pawn {
		st.PawnKey ^= zobristPiece[c][Pawn][sq]
	} else if pt != King {
		st.NonPawnMaterial[c] += int(pieceValueMg[pt])
	}
}

// removePieceFull removes the piece on sq, which must be occupied, and
// folds the change into st the same way putPieceFull does.
func (p *Position) removePieceFull(sq Square, st *StateInfo) Piece {
	piece := p.PieceAt(sq)
	c, pt := piece.Color(), piece.Type()
	newCount := p.pieceCount[c][pt] - 1

	p.removePiece(sq)

	st.Key ^= zobristPiece[c][pt][sq]
	st.PsqScore = st.PsqScore.sub(PSQ(piece, sq))
	st.MaterialKey ^= zobristPiece[c][pt][newCount]
	if pt == Pawn {
		st.PawnKey ^= zobristPiece[c][Pawn][sq]
	} else if pt != King {
		st.NonPawnMaterial[c] -= int(pieceValueMg[pt])
	}
	return piece
}

// movePieceFull relocates the piece on from to to and folds the change
// into st. The piece's identity doesn't change, so material/pawn/psq
// bookkeeping only needs delta terms between the two squares.
func (p *Position) movePieceFull(from, to Square, st *StateInfo) {
	piece := p.PieceAt(from)
	c, pt := piece.Color(), piece.Type()

	p.movePiece(from, to)

	delta := zobristPiece[c][pt][from] ^ zobristPiece[c][pt][to]
	st.Key ^= delta
	st.PsqScore = st.PsqScore.sub(PSQ(piece, from)).add(PSQ(piece, to))
	if pt == Pawn {
		st.PawnKey ^= delta
	}
}

// MakeMove applies m to the position. newSt becomes the new top of the
// StateInfo history; the caller owns its storage (typically a local
// variable or a per-ply array in a search stack) and must keep it
// alive until the matching UnmakeMove. MakeMove does not check that m
// is even pseudo-legal — callers are expected to have validated that
// via IsPseudoLegal/PlMoveIsLegal first, exactly as the move generator
// does.
func (p *Position) MakeMove(m Move, newSt *StateInfo) {
	us := p.SideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	piece := p.PieceAt(from)
	pt := piece.Type()

	newSt.cloneReducedFrom(p.st)
	newSt.Previous = p.st
	newSt.Key = p.st.Key
	newSt.CapturedType = NoPieceType
	p.st = newSt

	newSt.Rule50++
	newSt.PliesFromNull++

	if newSt.EpSquare != NoSquare {
		newSt.Key ^= zobristEnPassant[newSt.EpSquare.File()]
		newSt.EpSquare = NoSquare
	}

	if m.IsCastling() {
		p.doCastlingFull(us, from, to, m.IsKingSideCastle(), newSt)
	} else {
		if m.IsEnPassant() {
			capturedSq := NewSquare(to.File(), from.Rank())
			newSt.CapturedType = Pawn
			p.removePieceFull(capturedSq, newSt)
		} else if captured := p.PieceAt(to); captured != NoPiece {
			newSt.CapturedType = captured.Type()
			p.removePieceFull(to, newSt)
		}

		if m.IsPromotion() {
			p.removePieceFull(from, newSt)
			p.putPieceFull(NewPiece(m.Promotion(), us), to, newSt)
		} else {
			p.movePieceFull(from, to, newSt)
		}

		if pt == Pawn {
			if abs(int(to)-int(from)) == 16 {
				epCandidate := Square((int(from) + int(to)) / 2)
				if pawnAttacks[us][epCandidate]&p.Pieces[them][Pawn] != 0 {
					newSt.EpSquare = epCandidate
					newSt.Key ^= zobristEnPassant[epCandidate.File()]
				}
			}
			newSt.Rule50 = 0
		}
		if newSt.CapturedType != NoPieceType {
			newSt.Rule50 = 0
		}
	}

	if newSt.CastleRights != NoCastling {
		if revoke := p.castleRightsMask[from] | p.castleRightsMask[to]; revoke != 0 {
			newSt.Key ^= zobristCastling[newSt.CastleRights]
			newSt.CastleRights &^= revoke
			newSt.Key ^= zobristCastling[newSt.CastleRights]
		}
	}

	p.SideToMove = them
	newSt.Key ^= zobristSideToMove
	p.UpdateCheckers()
	newSt.CheckersBB = p.st.CheckersBB

	p.prefetchTT(newSt.Key)
	p.prefetchPawnCache(newSt.PawnKey)
	p.prefetchMaterialCache(newSt.MaterialKey)

	if us == Black {
		p.FullMoveNumber++
	}
}

// doCastlingFull performs the king/rook relocation for a castling move
// and folds the change into st, matching putPieceFull/removePieceFull.
// rookFrom is the move's encoded To() — the rook's origin square, per
// the king-captures-own-rook convention move.go documents.
func (p *Position) doCastlingFull(us Color, kingFrom, rookFrom Square, isKingSide bool, st *StateInfo) {
	kingTo := relativeSquare(us, pick(isKingSide, G1, C1))
	rookTo := relativeSquare(us, pick(isKingSide, F1, D1))

	p.removePieceFull(kingFrom, st)
	p.removePieceFull(rookFrom, st)
	p.putPieceFull(NewPiece(King, us), kingTo, st)
	p.putPieceFull(NewPiece(Rook, us), rookTo, st)
}

// UnmakeMove reverses the most recent MakeMove. m must be the same
// move that produced the current StateInfo.
func (p *Position) UnmakeMove(m Move) {
	st := p.st
	prev := st.Previous
	us := p.SideToMove.Other()
	from, to := m.From(), m.To()

	p.SideToMove = us

	if m.IsCastling() {
		p.undoCastling(us, from, m.IsKingSideCastle())
	} else {
		if m.IsPromotion() {
			p.removePiece(to)
			p.setPiece(NewPiece(Pawn, us), from)
		} else {
			p.movePiece(to, from)
		}

		if st.CapturedType != NoPieceType {
			if m.IsEnPassant() {
				capturedSq := NewSquare(to.File(), from.Rank())
				p.setPiece(NewPiece(Pawn, us.Other()), capturedSq)
			} else {
				p.setPiece(NewPiece(st.CapturedType, us.Other()), to)
			}
		}
	}

	if us == Black {
		p.FullMoveNumber--
	}

	p.st = prev
}

func (p *Position) undoCastling(us Color, kingFrom Square, isKingSide bool) {
	rookFrom := p.CastleRookSquare(us, isKingSide)
	kingTo := relativeSquare(us, pick(isKingSide, G1, C1))
	rookTo := relativeSquare(us, pick(isKingSide, F1, D1))

	p.removePiece(kingTo)
	p.removePiece(rookTo)
	p.setPiece(NewPiece(King, us), kingFrom)
	p.setPiece(NewPiece(Rook, us), rookFrom)
}

// MakeNullMove passes the move without moving a piece: side to move
// flips, en passant rights lapse, the fifty-move counter advances
// exactly as a real move's would and the plies-from-null counter
// restarts at zero, but no piece relocates and no castling right is
// touched. newSt is owned by the
// caller, as with MakeMove.
func (p *Position) MakeNullMove(newSt *StateInfo) {
	newSt.cloneReducedFrom(p.st)
	newSt.Previous = p.st
	newSt.Key = p.st.Key
	newSt.CapturedType = NoPieceType
	p.st = newSt

	if newSt.EpSquare != NoSquare {
		newSt.Key ^= zobristEnPassant[newSt.EpSquare.File()]
		newSt.EpSquare = NoSquare
	}

	newSt.Rule50++
	newSt.PliesFromNull = 0

	p.SideToMove = p.SideToMove.Other()
	newSt.Key ^= zobristSideToMove

	p.UpdateCheckers()
	newSt.CheckersBB = p.st.CheckersBB

	p.prefetchTT(newSt.Key)
}

// UnmakeNullMove reverses MakeNullMove.
func (p *Position) UnmakeNullMove() {
	p.st = p.st.Previous
	p.SideToMove = p.SideToMove.Other()
}
