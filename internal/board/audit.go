package board

import "fmt"

// DebugCheck lists the individually toggleable consistency checks
// PosIsOk can run. Each bit lets a caller (typically a test, or a
// search build with assertions enabled) choose how expensive an audit
// to pay for.
type DebugCheck uint32

const (
	DebugKingCount DebugCheck = 1 << iota
	DebugKingCapture
	DebugCheckerCount
	DebugBitboards
	DebugEnPassant
	DebugCastleRights
	DebugKeys
	DebugMaterial
	DebugPieceList
	DebugAll DebugCheck = ^DebugCheck(0)
)

// PosIsOk runs the requested consistency checks against the position
// and returns the first one that fails, or ok=true if all requested
// checks pass. step identifies which check failed, for a caller that
// wants to report exactly where the corruption is rather than just
// that one exists.
func (p *Position) PosIsOk(checks DebugCheck) (ok bool, step string, err error) {
	if checks&DebugKingCount != 0 {
		if p.Pieces[White][King].PopCount() != 1 || p.Pieces[Black][King].PopCount() != 1 {
			return false, "king-count", fmt.Errorf("expected exactly one king per side")
		}
	}

	if checks&DebugKingCapture != 0 {
		if p.AttackersByColor(p.KingSquare[p.SideToMove.Other()], p.SideToMove, p.AllOccupied) != 0 {
			return false, "king-capture", fmt.Errorf("side not to move is in check")
		}
	}

	if checks&DebugCheckerCount != 0 {
		if p.st.CheckersBB.PopCount() > 2 {
			return false, "checker-count", fmt.Errorf("more than two simultaneous checkers")
		}
	}

	if checks&DebugBitboards != 0 {
		if p.Occupied[White]&p.Occupied[Black] != 0 {
			return false, "bitboards", fmt.Errorf("white and black occupancy overlap")
		}
		if p.Occupied[White]|p.Occupied[Black] != p.AllOccupied {
			return false, "bitboards", fmt.Errorf("AllOccupied disagrees with per-color occupancy")
		}
		var union Bitboard
		for c := White; c <= Black; c++ {
			for pt := Pawn; pt <= King; pt++ {
				if p.Pieces[c][pt]&union != 0 {
					return false, "bitboards", fmt.Errorf("piece bitboards overlap")
				}
				union |= p.Pieces[c][pt]
			}
		}
		if union != p.AllOccupied {
			return false, "bitboards", fmt.Errorf("piece-type bitboards disagree with AllOccupied")
		}
	}

	if checks&DebugEnPassant != 0 {
		ep := p.st.EpSquare
		if ep != NoSquare {
			wantRank := 5
			if p.SideToMove == Black {
				wantRank = 2
			}
			if ep.Rank() != wantRank {
				return false, "en-passant", fmt.Errorf("en passant square on wrong rank")
			}
		}
	}

	if checks&DebugCastleRights != 0 {
		cr := p.st.CastleRights
		for _, cc := range []struct {
			c    Color
			side bool
			bit  CastlingRights
		}{
			{White, true, WhiteKingSideCastle}, {White, false, WhiteQueenSideCastle},
			{Black, true, BlackKingSideCastle}, {Black, false, BlackQueenSideCastle},
		} {
			if cr&cc.bit == 0 {
				continue
			}
			rsq := p.CastleRookSquare(cc.c, cc.side)
			if rsq == NoSquare || p.PieceAt(rsq).Type() != Rook || p.PieceAt(rsq).Color() != cc.c {
				return false, "castle-rights", fmt.Errorf("castling right held with no matching rook")
			}
		}
	}

	if checks&DebugKeys != 0 {
		if p.st.Key != p.computeKeyFromScratch() {
			return false, "keys", fmt.Errorf("incremental key diverges from recomputed key")
		}
		if p.st.PawnKey != p.computePawnKeyFromScratch() {
			return false, "keys", fmt.Errorf("incremental pawn key diverges from recomputed pawn key")
		}
	}

	if checks&DebugMaterial != 0 {
		if p.st.MaterialKey != p.computeMaterialKeyFromScratch() {
			return false, "material", fmt.Errorf("incremental material key diverges from recomputed material key")
		}
		if p.st.NonPawnMaterial != p.computeNonPawnMaterialFromScratch() {
			return false, "material", fmt.Errorf("incremental non-pawn material diverges from recomputed value")
		}
		if p.st.PsqScore != p.computePsqScoreFromScratch() {
			return false, "material", fmt.Errorf("incremental psq score diverges from recomputed score")
		}
	}

	if checks&DebugPieceList != 0 {
		for c := White; c <= Black; c++ {
			for pt := Pawn; pt <= King; pt++ {
				if p.pieceCount[c][pt] != p.Pieces[c][pt].PopCount() {
					return false, "piece-list", fmt.Errorf("piece count disagrees with bitboard population")
				}
				for i := 0; i < p.pieceCount[c][pt]; i++ {
					sq := p.pieceList[c][pt][i]
					if p.squareIndex[sq] != i {
						return false, "piece-list", fmt.Errorf("squareIndex disagrees with pieceList")
					}
					if p.board[sq] != NewPiece(pt, c) {
						return false, "piece-list", fmt.Errorf("board disagrees with pieceList")
					}
				}
			}
		}
	}

	return true, "", nil
}
