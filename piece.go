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

// Piece is a signed piece code. Zero is an empty square, positive codes are
// white pieces and negative codes are black pieces. The magnitude identifies
// the piece kind (1 pawn through 6 king). The sign convention is relied upon
// throughout the package: board[i] > 0 means "white piece at i".
type Piece int8

const (
	Empty Piece = 0

	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = -1
	BlackKnight Piece = -2
	BlackBishop Piece = -3
	BlackRook   Piece = -4
	BlackQueen  Piece = -5
	BlackKing   Piece = -6
)

// Color returns [White] for positive codes, [Black] for negative codes, and
// [NoColor] for [Empty].
func (p Piece) Color() Color {
	if p > 0 {
		return White
	}
	if p < 0 {
		return Black
	}
	return NoColor
}

// Kind strips the color from a piece code, returning the white code of the
// same piece kind. Kind of [Empty] is [Empty].
func (p Piece) Kind() Piece {
	if p < 0 {
		return -p
	}
	return p
}

// String returns the single FEN letter for the piece if valid, else "-".
//
// White pieces are uppercase and black pieces are lowercase.
func (p Piece) String() string {
	switch p {
	case WhitePawn:
		return "P"
	case WhiteKnight:
		return "N"
	case WhiteBishop:
		return "B"
	case WhiteRook:
		return "R"
	case WhiteQueen:
		return "Q"
	case WhiteKing:
		return "K"
	case BlackPawn:
		return "p"
	case BlackKnight:
		return "n"
	case BlackBishop:
		return "b"
	case BlackRook:
		return "r"
	case BlackQueen:
		return "q"
	case BlackKing:
		return "k"
	default:
		return "-"
	}
}

func parsePiece(r rune) Piece {
	switch r {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return Empty
	}
}

// promotionPieces lists the pieces a pawn of color c may promote to, queen
// first.
func promotionPieces(c Color) [4]Piece {
	if c == White {
		return [4]Piece{WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight}
	}
	return [4]Piece{BlackQueen, BlackRook, BlackBishop, BlackKnight}
}
