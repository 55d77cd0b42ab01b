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

// IsCheck returns true if the side to move has its king under attack. If side
// to move is not set false is returned.
func (pos *Position) IsCheck() bool {
	switch pos.SideToMove {
	case White:
		return squareAttacked(&pos.board, pos.whiteKingSq, White)
	case Black:
		return squareAttacked(&pos.board, pos.blackKingSq, Black)
	default:
		return false
	}
}

// IsCheckMate returns true if the side to move is in check and has no legal
// moves.
func IsCheckMate(pos *Position) bool {
	return pos.IsCheck() && len(LegalMoves(pos)) == 0
}

// IsStaleMate returns true if the side to move is not in check and has no
// legal moves. It does not consider the fifty move rule.
func IsStaleMate(pos *Position) bool {
	return !pos.IsCheck() && len(LegalMoves(pos)) == 0
}

// kingIsAttacked reports whether the king on kingSq is attacked by any enemy
// piece. The king's color is read off the board.
func kingIsAttacked(board *[64]Piece, kingSq Square) bool {
	return squareAttacked(board, kingSq, board[kingSq].Color())
}

// squareAttacked reports whether sq is attacked by any piece of defender's
// opponent.
func squareAttacked(board *[64]Piece, sq Square, defender Color) bool {
	return attackedByPawn(board, sq, defender) ||
		attackedOrthogonally(board, sq, defender) ||
		attackedByKnight(board, sq, defender) ||
		attackedDiagonally(board, sq, defender) ||
		attackedByKing(board, sq, defender)
}

// attackedByPawn probes the two squares an enemy pawn would have to occupy to
// attack sq: the attack deltas of the DEFENDER's color point at them.
func attackedByPawn(board *[64]Piece, sq Square, defender Color) bool {
	deltas := whitePawnAttacks
	enemyPawn := BlackPawn
	if defender == Black {
		deltas = blackPawnAttacks
		enemyPawn = WhitePawn
	}
	for _, d := range deltas {
		if to := d.Dest(sq); to != NoSquare && board[to] == enemyPawn {
			return true
		}
	}
	return false
}

// attackedByKing keeps the kings from ever becoming adjacent. It cannot fire
// from a position where the kings are properly separated and the opponent is
// not the mover, but it keeps king moves honest next to the enemy king.
func attackedByKing(board *[64]Piece, sq Square, defender Color) bool {
	for _, d := range allDeltas {
		to := d.Dest(sq)
		if to == NoSquare {
			continue
		}
		if board[to].Kind() == WhiteKing && board[to].Color() != defender {
			return true
		}
	}
	return false
}

func attackedByKnight(board *[64]Piece, sq Square, defender Color) bool {
	for _, d := range knightDeltas {
		to := d.Dest(sq)
		if to == NoSquare {
			continue
		}
		if board[to].Kind() == WhiteKnight && board[to].Color() != defender {
			return true
		}
	}
	return false
}

// attackedOrthogonally walks the four rook rays from sq; the first occupied
// square on a ray attacks iff it holds an enemy rook or queen.
func attackedOrthogonally(board *[64]Piece, sq Square, defender Color) bool {
	return attackedAlong(board, sq, defender, orthogonalDeltas[:], WhiteRook)
}

// attackedDiagonally walks the four bishop rays from sq; the first occupied
// square on a ray attacks iff it holds an enemy bishop or queen.
func attackedDiagonally(board *[64]Piece, sq Square, defender Color) bool {
	return attackedAlong(board, sq, defender, diagonalDeltas[:], WhiteBishop)
}

func attackedAlong(board *[64]Piece, sq Square, defender Color, deltas []Delta, slider Piece) bool {
	for _, d := range deltas {
		for to := d.Dest(sq); to != NoSquare; to = d.Dest(to) {
			piece := board[to]
			if piece == Empty {
				continue
			}
			if piece.Color() != defender && (piece.Kind() == slider || piece.Kind() == WhiteQueen) {
				return true
			}
			break
		}
	}
	return false
}
