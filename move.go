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

import (
	"fmt"
	"strings"
)

// MoveKind tags a [LegalMove] with the bookkeeping [Position.MakeMove] has to
// perform beyond moving the piece itself.
type MoveKind uint8

const (
	// Normal covers every knight, bishop and queen move.
	Normal MoveKind = iota
	// PawnMove is a single pawn push or a pawn capture, possibly promoting.
	PawnMove
	// PawnDoubleMove is the two-square push from the pawn's starting rank.
	// Applying it arms en passant.
	PawnDoubleMove
	// EnPassant captures the pawn on Captured, which differs from To.
	EnPassant
	// RookMove may revoke one castling right, keyed by the from square.
	RookMove
	// KingMove revokes both of the mover's castling rights.
	KingMove
	CastleKingSide
	CastleQueenSide
)

// LegalMove describes a move the generator produced for a specific position.
// It only carries meaning relative to that position; applying it elsewhere is
// undefined behavior.
type LegalMove struct {
	From Square
	To   Square
	Kind MoveKind
	// Promotion is the piece a promoting pawn turns into, [Empty] otherwise.
	Promotion Piece
	// Captured is the square of the pawn taken en passant, [NoSquare]
	// otherwise. Note that for [EnPassant] moves Captured != To.
	Captured  Square
	IsCapture bool
}

// String provides the move in UCI compatible long algebraic notation:
// <from><to><optional promotion letter> (e.g. e2e4 or e7e8q).
func (m LegalMove) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += strings.ToLower(m.Promotion.String())
	}
	return s
}

// ParseMove parses a UCI long algebraic move string (e.g. a2c3 or H7H8q) and
// resolves it against the legal moves of pos. An error is returned if the
// string is malformed or does not name a legal move in pos.
func ParseMove(pos *Position, lan string) (LegalMove, error) {
	lan = strings.ToLower(lan)
	if len(lan) < 4 || len(lan) > 5 {
		return LegalMove{}, fmt.Errorf("move string %q not 4 or 5 characters long", lan)
	}
	from := parseSquare(lan[0:2])
	to := parseSquare(lan[2:4])
	if from == NoSquare || to == NoSquare {
		return LegalMove{}, fmt.Errorf("could not parse move squares, %q", lan)
	}
	promotion := Empty
	if len(lan) == 5 {
		promotion = parsePiece(rune(lan[4]))
		if promotion == Empty || promotion == BlackPawn || promotion == BlackKing {
			return LegalMove{}, fmt.Errorf("could not parse move promotion, %q", lan)
		}
	}
	for _, m := range LegalMoves(pos) {
		if m.From != from || m.To != to {
			continue
		}
		if m.Promotion.Kind() != promotion.Kind() {
			continue
		}
		return m, nil
	}
	return LegalMove{}, fmt.Errorf("move %q is not legal in this position", lan)
}
