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

// The 10x12 mailbox embeds the 64 board squares in a border of -1 sentinels
// so that stepping off the board in any piece direction lands on a sentinel
// instead of wrapping to the next rank. mailbox120 maps a mailbox index back
// to a board square (or -1), and mailbox64 maps a board square to its mailbox
// index. Laid out as a board it looks like this:
//
//	-1 -1 -1 -1 -1 -1 -1 -1 -1 -1
//	-1 -1 -1 -1 -1 -1 -1 -1 -1 -1
//	-1  0  1  2  3  4  5  6  7 -1
//	-1  8  9 10 11 12 13 14 15 -1
//	-1 16 17 18 19 20 21 22 23 -1
//	-1 24 25 26 27 28 29 30 31 -1
//	-1 32 33 34 35 36 37 38 39 -1
//	-1 40 41 42 43 44 45 46 47 -1
//	-1 48 49 50 51 52 53 54 55 -1
//	-1 56 57 58 59 60 61 62 63 -1
//	-1 -1 -1 -1 -1 -1 -1 -1 -1 -1
//	-1 -1 -1 -1 -1 -1 -1 -1 -1 -1
var mailbox120 = [120]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, 0, 1, 2, 3, 4, 5, 6, 7, -1,
	-1, 8, 9, 10, 11, 12, 13, 14, 15, -1,
	-1, 16, 17, 18, 19, 20, 21, 22, 23, -1,
	-1, 24, 25, 26, 27, 28, 29, 30, 31, -1,
	-1, 32, 33, 34, 35, 36, 37, 38, 39, -1,
	-1, 40, 41, 42, 43, 44, 45, 46, 47, -1,
	-1, 48, 49, 50, 51, 52, 53, 54, 55, -1,
	-1, 56, 57, 58, 59, 60, 61, 62, 63, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

var mailbox64 = [64]int8{
	21, 22, 23, 24, 25, 26, 27, 28,
	31, 32, 33, 34, 35, 36, 37, 38,
	41, 42, 43, 44, 45, 46, 47, 48,
	51, 52, 53, 54, 55, 56, 57, 58,
	61, 62, 63, 64, 65, 66, 67, 68,
	71, 72, 73, 74, 75, 76, 77, 78,
	81, 82, 83, 84, 85, 86, 87, 88,
	91, 92, 93, 94, 95, 96, 97, 98,
}

// Delta is a board direction given as signed file and rank offsets.
type Delta struct {
	DX int8
	DY int8
}

// Dest applies the delta to a square using mailbox arithmetic. It returns
// [NoSquare] when the step leaves the board.
func (d Delta) Dest(from Square) Square {
	m := int(mailbox64[from]) + int(d.DX) + 10*int(d.DY)
	sq := mailbox120[m]
	if sq == -1 {
		return NoSquare
	}
	return Square(sq)
}

var knightDeltas = [8]Delta{
	{1, 2}, {1, -2}, {2, 1}, {2, -1},
	{-1, 2}, {-1, -2}, {-2, 1}, {-2, -1},
}

var diagonalDeltas = [4]Delta{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

var orthogonalDeltas = [4]Delta{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

var allDeltas = [8]Delta{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

var (
	whitePawnPush    = Delta{0, 1}
	whitePawnDouble  = Delta{0, 2}
	whitePawnAttacks = [2]Delta{{1, 1}, {-1, 1}}

	blackPawnPush    = Delta{0, -1}
	blackPawnDouble  = Delta{0, -2}
	blackPawnAttacks = [2]Delta{{1, -1}, {-1, -1}}
)
