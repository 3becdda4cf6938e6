package board

// seeValue gives the material value SEE uses to weigh a capture. It
// differs from piece.go's general-purpose PieceValue table in exactly
// one place: the king is worth 0, not a large midgame value. SEE's
// swap list folds negamax-style from the tail backward, and a nonzero
// king value would let a king "capture" distort that fold even though
// playing into a king capture is illegal in the first place — the
// short-circuit below exists so a king capture simply ends the
// exchange at a small fixed gain instead of corrupting the sum.
var seeValue = [7]int{100, 320, 330, 500, 900, 0, 0}

// See returns the static exchange evaluation of the capture (or
// capture-like move) m: the net material result, in centipawns, of
// playing every recapture on m.To() in least-valuable-attacker order
// until one side declines or runs out of attackers. A positive result
// favors the side making m.
func (p *Position) See(m Move) int {
	from, to := m.From(), m.To()
	if m.IsCastling() {
		return 0
	}

	stm := p.PieceAt(from).Color()

	var nextVictim int
	if m.IsEnPassant() {
		nextVictim = seeValue[Pawn]
	} else {
		nextVictim = seeValue[p.PieceAt(to).Type()]
	}
	if m.IsPromotion() {
		nextVictim += seeValue[m.Promotion()] - seeValue[Pawn]
	}

	occupied := p.AllOccupied ^ SquareBB(from)
	if m.IsEnPassant() {
		occupied &^= SquareBB(NewSquare(to.File(), from.Rank()))
	}

	var swapList [32]int
	swapList[0] = nextVictim
	slIndex := 1

	capturedValue := seeValue[p.PieceAt(from).Type()]
	if m.IsPromotion() {
		capturedValue = seeValue[m.Promotion()]
	}

	attackers := p.AttackersTo(to, occupied) & occupied
	stm = stm.Other()

	for {
		stmAttackers := attackers & p.colorOccupied(stm, occupied)
		if stmAttackers == 0 {
			break
		}

		pt, sq := leastValuableAttacker(p, stmAttackers, stm)
		if pt == NoPieceType {
			break
		}

		swapList[slIndex] = -swapList[slIndex-1] + capturedValue
		slIndex++

		if pt == King {
			// Capturing with the king ends the exchange immediately.
			// If the other side still has an attacker on the square,
			// the king "capture" was never a legal option to begin
			// with: the other side would simply take the king. Append
			// that king capture as a decisive gain for the other side,
			// so the fold below makes the king capture a losing choice
			// rather than an ordinary (and far smaller) material trade.
			if attackers&p.colorOccupied(stm.Other(), occupied) != 0 && slIndex < len(swapList) {
				swapList[slIndex] = 16 * seeValue[Queen]
				slIndex++
			}
			break
		}

		capturedValue = seeValue[pt]
		occupied &^= SquareBB(sq)
		attackers = p.AttackersTo(to, occupied) & occupied
		stm = stm.Other()

		if slIndex >= len(swapList) {
			break
		}
	}

	for i := slIndex - 1; i > 0; i-- {
		if -swapList[i] < swapList[i-1] {
			swapList[i-1] = -swapList[i]
		}
	}

	return swapList[0]
}

// SeeSign is a cheap variant of See for callers that only need the
// sign of the result: when the mover is neither a pawn nor promoting
// and the captured piece is worth at least as much as the mover, it
// returns 1 without running the swap-list fold. Every other move,
// including pawn moves, promotions and non-captures, gets See's full
// result.
func (p *Position) SeeSign(m Move) int {
	from, to := m.From(), m.To()
	if m.IsCastling() {
		return 0
	}
	if p.PieceAt(from).Type() == Pawn || m.IsPromotion() {
		return p.See(m)
	}

	var victimValue int
	if m.IsEnPassant() {
		victimValue = seeValue[Pawn]
	} else {
		victimValue = seeValue[p.PieceAt(to).Type()]
	}
	if victimValue >= seeValue[p.PieceAt(from).Type()] {
		return 1
	}
	return p.See(m)
}

// colorOccupied returns the squares of color c still present in occ
// (occ is some hypothetical occupancy mid-exchange, a subset of the
// real board).
func (p *Position) colorOccupied(c Color, occ Bitboard) Bitboard {
	return p.Occupied[c] & occ
}

// leastValuableAttacker scans attackers in Pawn..King order and returns
// the first one found along with its square, the swap-list's ordering
// rule (always recapture with your cheapest piece first).
func leastValuableAttacker(p *Position, attackers Bitboard, c Color) (PieceType, Square) {
	for pt := Pawn; pt <= King; pt++ {
		bb := attackers & p.Pieces[c][pt]
		if bb != 0 {
			return pt, bb.LSB()
		}
	}
	return NoPieceType, NoSquare
}
