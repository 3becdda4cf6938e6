// Package movegen enumerates moves for a *board.Position. It is kept
// separate from package board on purpose: move generation consumes
// the position's public query surface (attacks, occupancy, castling
// geometry) but owns none of the position's state, the same boundary
// the engine this core is descended from draws between its position
// object and its move generator.
package movegen

import (
	"sort"

	"github.com/hailam/chesscore/internal/board"
)

// Generate returns every pseudo-legal move available to the side to
// move: moves whose shape is correct for the piece and occupancy, but
// which may leave the mover's own king in check.
func Generate(p *board.Position) *board.MoveList {
	ml := board.NewMoveList()
	generatePawnMoves(p, ml)
	generatePieceMoves(p, ml, board.Knight)
	generatePieceMoves(p, ml, board.Bishop)
	generatePieceMoves(p, ml, board.Rook)
	generatePieceMoves(p, ml, board.Queen)
	generateKingMoves(p, ml)
	generateCastlingMoves(p, ml)
	return ml
}

// GenerateLegal returns every legal move: pseudo-legal moves filtered
// down to the ones that don't leave the mover's own king in check.
//
// When the side to move is in check, a non-king move must also
// interpose on the line between the checker and the king, or capture
// the checker outright — Generate itself has no notion of check, so
// that restriction is applied here before the pin/king-safety check
// PlMoveIsLegal performs. A double check permits no non-king move at
// all, since a single move cannot block or capture two checkers.
func GenerateLegal(p *board.Position) *board.MoveList {
	pseudo := Generate(p)
	legal := board.NewMoveList()
	pinned := p.PinnedPieces(p.SideToMove)
	kingSq := p.KingSquare[p.SideToMove]
	checkers := p.Checkers()

	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		if checkers != 0 && m.From() != kingSq && !evadesCheck(p, m, checkers, kingSq) {
			continue
		}
		if p.PlMoveIsLegal(m, pinned) {
			legal.Add(m)
		}
	}
	return legal
}

// evadesCheck reports whether a non-king move m addresses every
// current checker: under double check no non-king move qualifies;
// otherwise m must land on the single checker's square, on a square
// between it and the king, or — for en passant — remove the checking
// pawn from the board even though the destination square itself isn't
// the checker's square.
func evadesCheck(p *board.Position, m board.Move, checkers board.Bitboard, kingSq board.Square) bool {
	if !checkers.OnlyOne() {
		return false
	}
	checkSq := checkers.LSB()
	to := m.To()

	if m.IsEnPassant() {
		capturedSq := board.NewSquare(to.File(), m.From().Rank())
		if capturedSq == checkSq {
			return true
		}
	}

	return (board.Between(checkSq, kingSq)|checkers)&board.SquareBB(to) != 0
}

// MoveIsLegal is the slow-path legality check: it reports whether m is
// a move the legal generator would itself produce for p, by walking
// the full legal move list and testing membership. Used to validate an
// arbitrary Move value that didn't just come out of the generator
// (e.g. a transposition-table move, or one deserialized off the wire),
// where PlMoveIsLegal's precondition — that m is already known
// pseudo-legal — can't be assumed.
func MoveIsLegal(p *board.Position, m board.Move) bool {
	legal := GenerateLegal(p)
	for i := 0; i < legal.Len(); i++ {
		if legal.Get(i) == m {
			return true
		}
	}
	return false
}

// GenerateCaptures returns every legal capturing move (including en
// passant and capture-promotions).
func GenerateCaptures(p *board.Position) *board.MoveList {
	all := GenerateLegal(p)
	captures := board.NewMoveList()
	for i := 0; i < all.Len(); i++ {
		m := all.Get(i)
		if m.IsCapture(p) {
			captures.Add(m)
		}
	}
	return captures
}

func generatePieceMoves(p *board.Position, ml *board.MoveList, pt board.PieceType) {
	us := p.SideToMove
	occupied := p.AllOccupied
	own := p.Occupied[us]

	pieces := p.Pieces[us][pt]
	for pieces != 0 {
		from := pieces.PopLSB()
		var attacks board.Bitboard
		if pt.IsSlider() {
			attacks = board.SliderAttacks(pt, from, occupied)
		} else {
			attacks = board.KnightAttacks(from)
		}
		attacks &^= own
		for attacks != 0 {
			to := attacks.PopLSB()
			ml.Add(board.NewMove(from, to))
		}
	}
}

func generateKingMoves(p *board.Position, ml *board.MoveList) {
	us := p.SideToMove
	from := p.KingSquare[us]
	attacks := board.KingAttacks(from) &^ p.Occupied[us]
	for attacks != 0 {
		to := attacks.PopLSB()
		ml.Add(board.NewMove(from, to))
	}
}

func addPromotions(ml *board.MoveList, from, to board.Square) {
	ml.Add(board.NewPromotion(from, to, board.Queen))
	ml.Add(board.NewPromotion(from, to, board.Rook))
	ml.Add(board.NewPromotion(from, to, board.Bishop))
	ml.Add(board.NewPromotion(from, to, board.Knight))
}

func generatePawnMoves(p *board.Position, ml *board.MoveList) {
	us := p.SideToMove
	pawns := p.Pieces[us][board.Pawn]
	occupied := p.AllOccupied
	enemies := p.Occupied[us.Other()]
	empty := ^occupied

	var push1, push2, attackL, attackR board.Bitboard
	var promotionRank board.Bitboard
	var pushDir int

	if us == board.White {
		push1 = pawns.North() & empty
		push2 = (push1 & board.Rank3).North() & empty
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = board.Rank8
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & board.Rank6).South() & empty
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = board.Rank1
		pushDir = -8
	}

	nonPromo := push1 &^ promotionRank
	for nonPromo != 0 {
		to := nonPromo.PopLSB()
		from := board.Square(int(to) - pushDir)
		ml.Add(board.NewMove(from, to))
	}

	for push2 != 0 {
		to := push2.PopLSB()
		from := board.Square(int(to) - 2*pushDir)
		ml.Add(board.NewMove(from, to))
	}

	nonPromoL := attackL &^ promotionRank
	for nonPromoL != 0 {
		to := nonPromoL.PopLSB()
		from := board.Square(int(to) - pushDir + 1)
		ml.Add(board.NewMove(from, to))
	}

	nonPromoR := attackR &^ promotionRank
	for nonPromoR != 0 {
		to := nonPromoR.PopLSB()
		from := board.Square(int(to) - pushDir - 1)
		ml.Add(board.NewMove(from, to))
	}

	promoPush := push1 & promotionRank
	for promoPush != 0 {
		to := promoPush.PopLSB()
		from := board.Square(int(to) - pushDir)
		addPromotions(ml, from, to)
	}

	promoL := attackL & promotionRank
	for promoL != 0 {
		to := promoL.PopLSB()
		from := board.Square(int(to) - pushDir + 1)
		addPromotions(ml, from, to)
	}

	promoR := attackR & promotionRank
	for promoR != 0 {
		to := promoR.PopLSB()
		from := board.Square(int(to) - pushDir - 1)
		addPromotions(ml, from, to)
	}

	if ep := p.EnPassant(); ep != board.NoSquare {
		epBB := board.SquareBB(ep)
		var epAttackers board.Bitboard
		if us == board.White {
			epAttackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
		} else {
			epAttackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
		}
		for epAttackers != 0 {
			from := epAttackers.PopLSB()
			ml.Add(board.NewEnPassant(from, ep))
		}
	}
}

func generateCastlingMoves(p *board.Position, ml *board.MoveList) {
	us := p.SideToMove
	them := us.Other()
	cr := p.CastlingRights()

	tryCastle := func(isKingSide bool, right board.CastlingRights) {
		if cr&right == 0 {
			return
		}
		rookFrom := p.CastleRookSquare(us, isKingSide)
		if rookFrom == board.NoSquare {
			return
		}
		if p.CastlingImpeded(us, isKingSide) {
			return
		}
		from := p.KingSquare[us]
		kingTarget := relativeCastleTarget(us, isKingSide)
		lo, hi := from, kingTarget
		if lo > hi {
			lo, hi = hi, lo
		}
		for s := lo; s <= hi; s++ {
			if p.IsSquareAttacked(s, them) {
				return
			}
		}
		ml.Add(board.NewCastling(from, rookFrom))
	}

	if us == board.White {
		tryCastle(true, board.WhiteKingSideCastle)
		tryCastle(false, board.WhiteQueenSideCastle)
	} else {
		tryCastle(true, board.BlackKingSideCastle)
		tryCastle(false, board.BlackQueenSideCastle)
	}
}

func relativeCastleTarget(c board.Color, isKingSide bool) board.Square {
	if c == board.White {
		if isKingSide {
			return board.G1
		}
		return board.C1
	}
	if isKingSide {
		return board.G8
	}
	return board.C8
}

// HasLegalMoves reports whether the side to move has at least one
// legal move.
func HasLegalMoves(p *board.Position) bool {
	pseudo := Generate(p)
	pinned := p.PinnedPieces(p.SideToMove)
	kingSq := p.KingSquare[p.SideToMove]
	checkers := p.Checkers()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		if checkers != 0 && m.From() != kingSq && !evadesCheck(p, m, checkers, kingSq) {
			continue
		}
		if p.PlMoveIsLegal(m, pinned) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is in check with no
// legal reply.
func IsCheckmate(p *board.Position) bool {
	return p.InCheck() && !HasLegalMoves(p)
}

// IsStalemate reports whether the side to move is not in check but has
// no legal move.
func IsStalemate(p *board.Position) bool {
	return !p.InCheck() && !HasLegalMoves(p)
}

// IsGameOver reports checkmate, stalemate, or any drawn condition the
// position itself can detect (material, fifty-move, repetition).
func IsGameOver(p *board.Position) bool {
	hasLegalMove := HasLegalMoves(p)
	if !hasLegalMove {
		return true
	}
	return p.IsDraw(false, hasLegalMove)
}

// OrderCapturesByMVVLVA sorts a capture list most-valuable-victim first,
// breaking ties by least-valuable-attacker — the standard cheap ordering
// that lets a caller try promising captures before losing ones without
// running SEE on every move.
func OrderCapturesByMVVLVA(p *board.Position, ml *board.MoveList) {
	moves := ml.Slice()
	sort.SliceStable(moves, func(i, j int) bool {
		return mvvLvaScore(p, moves[i]) > mvvLvaScore(p, moves[j])
	})
}

func mvvLvaScore(p *board.Position, m board.Move) int {
	var victim int
	if m.IsEnPassant() {
		victim = board.PieceValue[board.Pawn]
	} else {
		victim = p.PieceAt(m.To()).Value()
	}
	attacker := p.PieceAt(m.From()).Value()
	return victim*16 - attacker
}

// Perft counts the leaf nodes reachable in exactly depth plies from p,
// the standard move-generator correctness benchmark: any mismatch
// against a known-good count for a given position and depth means
// either generation or make/unmake is wrong somewhere.
func Perft(p *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	legal := GenerateLegal(p)
	if depth == 1 {
		return uint64(legal.Len())
	}

	var nodes uint64
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		var st board.StateInfo
		p.MakeMove(m, &st)
		nodes += Perft(p, depth-1)
		p.UnmakeMove(m)
	}
	return nodes
}
