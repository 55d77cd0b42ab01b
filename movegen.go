// Copyright (C) 2025 Brigham Skarda

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package chess

// moveListCap covers the typical position; pathological positions reallocate.
const moveListCap = 40

// PseudoLegalMoves are moves that are legal except they may leave one's own
// king in check. Returns nil if moves could not be generated (for example if
// pos.SideToMove was not set). Returns an empty slice if move generation was
// successful, but no moves were found.
func PseudoLegalMoves(pos *Position) []LegalMove {
	if pos.SideToMove != White && pos.SideToMove != Black {
		return nil
	}
	moves := make([]LegalMove, 0, moveListCap)
	for sq := Square(0); sq < 64; sq++ {
		piece := pos.board[sq]
		if piece == Empty || piece.Color() != pos.SideToMove {
			continue
		}
		switch piece.Kind() {
		case WhitePawn:
			moves = pawnMoves(pos, sq, moves)
		case WhiteKnight:
			moves = singleStepMoves(pos, sq, knightDeltas[:], Normal, moves)
		case WhiteBishop:
			moves = slidingMoves(pos, sq, diagonalDeltas[:], Normal, moves)
		case WhiteRook:
			moves = slidingMoves(pos, sq, orthogonalDeltas[:], RookMove, moves)
		case WhiteQueen:
			moves = slidingMoves(pos, sq, allDeltas[:], Normal, moves)
		case WhiteKing:
			moves = singleStepMoves(pos, sq, allDeltas[:], KingMove, moves)
			moves = castleMoves(pos, sq, moves)
		}
	}
	return moves
}

// singleStepMoves appends one move per delta: knights and kings step exactly
// once in each direction. Off-board destinations and own pieces are skipped.
func singleStepMoves(pos *Position, from Square, deltas []Delta, kind MoveKind, moves []LegalMove) []LegalMove {
	for _, d := range deltas {
		to := d.Dest(from)
		if to == NoSquare {
			continue
		}
		target := pos.board[to]
		if target != Empty && target.Color() == pos.SideToMove {
			continue
		}
		moves = append(moves, LegalMove{
			From:      from,
			To:        to,
			Kind:      kind,
			Captured:  NoSquare,
			IsCapture: target != Empty,
		})
	}
	return moves
}

// slidingMoves walks each delta outward until the ray leaves the board, hits
// an own piece (stop without emitting) or hits an enemy piece (emit the
// capture and stop).
func slidingMoves(pos *Position, from Square, deltas []Delta, kind MoveKind, moves []LegalMove) []LegalMove {
	for _, d := range deltas {
		for to := d.Dest(from); to != NoSquare; to = d.Dest(to) {
			target := pos.board[to]
			if target == Empty {
				moves = append(moves, LegalMove{From: from, To: to, Kind: kind, Captured: NoSquare})
				continue
			}
			if target.Color() != pos.SideToMove {
				moves = append(moves, LegalMove{From: from, To: to, Kind: kind, Captured: NoSquare, IsCapture: true})
			}
			break
		}
	}
	return moves
}

// castleMoves emits castles while the right is intact, the squares between
// king and rook are empty, and the king is neither in check nor passing
// through an attacked square. The destination square is checked by the
// legality filter like any other king move.
func castleMoves(pos *Position, from Square, moves []LegalMove) []LegalMove {
	kingSide, queenSide := pos.WhiteKsCastle, pos.WhiteQsCastle
	if pos.SideToMove == Black {
		kingSide, queenSide = pos.BlackKsCastle, pos.BlackQsCastle
	}

	if kingSide &&
		pos.board[from+1] == Empty &&
		pos.board[from+2] == Empty &&
		!squareAttacked(&pos.board, from, pos.SideToMove) &&
		!squareAttacked(&pos.board, from+1, pos.SideToMove) {
		moves = append(moves, LegalMove{From: from, To: from + 2, Kind: CastleKingSide, Captured: NoSquare})
	}

	if queenSide &&
		pos.board[from-1] == Empty &&
		pos.board[from-2] == Empty &&
		pos.board[from-3] == Empty &&
		!squareAttacked(&pos.board, from, pos.SideToMove) &&
		!squareAttacked(&pos.board, from-1, pos.SideToMove) {
		moves = append(moves, LegalMove{From: from, To: from - 2, Kind: CastleQueenSide, Captured: NoSquare})
	}

	return moves
}

// pawnMoves generates pushes, double pushes, captures, promotions and en
// passant for the pawn on from. The pawn's rank decides which rules apply.
func pawnMoves(pos *Position, from Square, moves []LegalMove) []LegalMove {
	push := whitePawnPush
	double := whitePawnDouble
	attacks := whitePawnAttacks
	promotionRank, doubleRank, epRank := 6, 1, 4
	if pos.SideToMove == Black {
		push = blackPawnPush
		double = blackPawnDouble
		attacks = blackPawnAttacks
		promotionRank, doubleRank, epRank = 1, 6, 3
	}
	rank := from.Rank()

	if to := push.Dest(from); to != NoSquare && pos.board[to] == Empty {
		if rank == promotionRank {
			moves = appendPromotions(moves, from, to, pos.SideToMove, false)
		} else {
			moves = append(moves, LegalMove{From: from, To: to, Kind: PawnMove, Captured: NoSquare})
			if rank == doubleRank {
				if to2 := double.Dest(from); to2 != NoSquare && pos.board[to2] == Empty {
					moves = append(moves, LegalMove{From: from, To: to2, Kind: PawnDoubleMove, Captured: NoSquare})
				}
			}
		}
	}

	for _, d := range attacks {
		to := d.Dest(from)
		if to == NoSquare {
			continue
		}
		target := pos.board[to]
		if target != Empty && target.Color() != pos.SideToMove {
			if rank == promotionRank {
				moves = appendPromotions(moves, from, to, pos.SideToMove, true)
			} else {
				moves = append(moves, LegalMove{From: from, To: to, Kind: PawnMove, Captured: NoSquare, IsCapture: true})
			}
		}
		if rank == epRank && pos.EnPassant != NoSquare && to == behindEnPassant(pos) {
			moves = append(moves, LegalMove{
				From:      from,
				To:        to,
				Kind:      EnPassant,
				Captured:  pos.EnPassant,
				IsCapture: true,
			})
		}
	}

	return moves
}

// behindEnPassant is the square the capturing pawn lands on: directly behind
// the double-pushed pawn from its owner's point of view.
func behindEnPassant(pos *Position) Square {
	if pos.EnPassant.Rank() == 4 {
		// A black pawn landed on rank 5; white captures towards rank 6.
		return pos.EnPassant + 8
	}
	return pos.EnPassant - 8
}

func appendPromotions(moves []LegalMove, from, to Square, c Color, isCapture bool) []LegalMove {
	for _, promotion := range promotionPieces(c) {
		moves = append(moves, LegalMove{
			From:      from,
			To:        to,
			Kind:      PawnMove,
			Promotion: promotion,
			Captured:  NoSquare,
			IsCapture: isCapture,
		})
	}
	return moves
}

// LegalMoves returns all legal moves for pos: the pseudo-legal moves whose
// application does not leave the mover's own king attacked. Returns nil if
// moves could not be generated (for example if pos.SideToMove was not set).
// Returns an empty slice if move generation was successful, but no moves were
// found.
func LegalMoves(pos *Position) []LegalMove {
	pseudoLegal := PseudoLegalMoves(pos)
	if pseudoLegal == nil {
		return nil
	}
	legal := make([]LegalMove, 0, len(pseudoLegal))
	for _, m := range pseudoLegal {
		next := pos.Copy()
		next.MakeMove(m)
		// MakeMove has toggled the side, so the mover's king is the one not
		// to move in next.
		if !squareAttacked(&next.board, next.KingSquare(pos.SideToMove), pos.SideToMove) {
			legal = append(legal, m)
		}
	}
	return legal
}
