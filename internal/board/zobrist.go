package board

// Score packs a tapered midgame/endgame evaluation pair into a single
// value, the way Stockfish's Score/make_score does: mg in the low
// 32 bits, eg in the high 32 bits, both sign-extended independently.
type Score int64

func makeScore(mg, eg int32) Score {
	return Score(uint64(uint32(eg))<<32 | uint64(uint32(mg)))
}

// Mg returns the midgame half.
func (s Score) Mg() int {
	return int(int32(uint32(s)))
}

// Eg returns the endgame half.
func (s Score) Eg() int {
	return int(int32(uint32(uint64(s) >> 32)))
}

func (s Score) add(o Score) Score { return makeScore(int32(s.Mg()+o.Mg()), int32(s.Eg()+o.Eg())) }
func (s Score) sub(o Score) Score { return makeScore(int32(s.Mg()-o.Mg()), int32(s.Eg()-o.Eg())) }
func (s Score) neg() Score        { return makeScore(int32(-s.Mg()), int32(-s.Eg())) }

// Zobrist hash keys for position hashing, and the piece-square table
// used for incremental psqScore maintenance. Uses a PRNG with a fixed
// seed for reproducibility.
var (
	zobristPiece      [2][7][64]uint64 // [Color][PieceType][Square], 7 to index NoPieceType safely
	zobristEnPassant  [8]uint64        // one per file
	zobristCastling   [16]uint64       // all 16 castling-rights subsets
	zobristSideToMove uint64
	zobristExclusion  uint64 // reserved for a null-move-aware search; unused by this core

	// pieceSquareTable[Piece][Square] gives the tapered score contribution
	// of a piece standing on a square. White-oriented source tables are
	// mirrored vertically and negated for Black, matching Zobrist::init()
	// in the engine this core is descended from.
	pieceSquareTable [12][64]Score
)

func init() {
	initZobrist()
	initPieceSquareTable()
}

// prng is the xorshift64* generator used for all Zobrist keys.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}

	// Castling keys: zobristCastling[cr] is the XOR of the individual
	// single-right keys present in the subset cr, not an independently
	// drawn value per subset, so zobristCastling[cr1|cr2] equals
	// zobristCastling[cr1] ^ zobristCastling[cr2] for disjoint subsets.
	var rightKey [4]uint64
	for i := range rightKey {
		rightKey[i] = rng.next()
	}
	for cr := 0; cr < 16; cr++ {
		var k uint64
		for i := 0; i < 4; i++ {
			if cr&(1<<i) != 0 {
				k ^= rightKey[i]
			}
		}
		zobristCastling[cr] = k
	}

	zobristSideToMove = rng.next()
	zobristExclusion = rng.next()
}

// pieceValueMg/pieceValueEg give the tapered material value used to seed
// the piece-square tables, indexed by PieceType.
var (
	pieceValueMg = [7]int32{100, 320, 330, 500, 900, 0, 0}
	pieceValueEg = [7]int32{120, 320, 330, 530, 940, 0, 0}
)

var whitePST = [6][64]int{
	{ // Pawn
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Knight
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	{ // Bishop
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	{ // Rook
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	{ // Queen
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	{ // King (midgame shape; endgame table blended in separately)
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

var whiteKingEndgamePST = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// initPieceSquareTable builds pieceSquareTable from the White-oriented
// source tables above: White entries are value + table[sq], Black
// entries mirror the square vertically and negate, matching the
// pieceSquareTable construction in Zobrist::init().
func initPieceSquareTable() {
	for pt := Pawn; pt <= King; pt++ {
		for sq := A1; sq <= H8; sq++ {
			mg := pieceValueMg[pt] + int32(whitePST[pt][sq])
			eg := pieceValueEg[pt]
			if pt == King {
				eg += int32(whiteKingEndgamePST[sq])
			} else {
				eg += int32(whitePST[pt][sq])
			}
			score := makeScore(mg, eg)
			pieceSquareTable[NewPiece(pt, White)][sq] = score
			pieceSquareTable[NewPiece(pt, Black)][sq.Mirror()] = score.neg()
		}
	}
}

// PSQ returns the tapered piece-square score for a piece standing on sq.
func PSQ(p Piece, sq Square) Score {
	return pieceSquareTable[p][sq]
}

// ZobristPiece returns the Zobrist key for a piece on a square.
func ZobristPiece(c Color, pt PieceType, sq Square) uint64 {
	return zobristPiece[c][pt][sq]
}

// ZobristEnPassant returns the Zobrist key for an en passant file.
func ZobristEnPassant(file int) uint64 {
	return zobristEnPassant[file]
}

// ZobristCastling returns the Zobrist key for a castling-rights subset.
func ZobristCastling(cr CastlingRights) uint64 {
	return zobristCastling[cr]
}

// ZobristSideToMove returns the Zobrist key XORed in when Black is to move.
func ZobristSideToMove() uint64 {
	return zobristSideToMove
}
