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

// Square indexes one of the 64 board squares. A1 is 0, B1 is 1, and so on up
// to H8 at 63; the index of a square is rank*8 + file. [NoSquare] marks the
// absence of a square (off-board destinations, no en passant).
type Square int8

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// SquareAt builds a square from zero-based file (0 = a) and rank (0 = 1)
// coordinates. Out of range coordinates give [NoSquare].
func SquareAt(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// File returns the zero-based file of the square (0 = a file).
func (s Square) File() int {
	return int(s) % 8
}

// Rank returns the zero-based rank of the square (0 = rank 1).
func (s Square) Rank() int {
	return int(s) / 8
}

// String returns the algebraic name of the square (e.g. "e4"), or "-" for
// [NoSquare].
func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// IsLightSquare reports whether s is a light square. a1 is dark.
func IsLightSquare(s Square) bool {
	return (s.File()+s.Rank())%2 == 1
}

func parseSquare(s string) Square {
	if len(s) != 2 {
		return NoSquare
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare
	}
	return SquareAt(int(s[0]-'a'), int(s[1]-'1'))
}
