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
	"strconv"
	"strings"
)

// DefaultFEN is the standard chess starting position.
const DefaultFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FenField names one of the six whitespace-separated FEN fields.
type FenField uint8

const (
	FieldPosition FenField = iota
	FieldSideToMove
	FieldCastling
	FieldEnPassant
	FieldHalfMove
	FieldFullMove
)

func (f FenField) String() string {
	switch f {
	case FieldPosition:
		return "position"
	case FieldSideToMove:
		return "side to move"
	case FieldCastling:
		return "castling ability"
	case FieldEnPassant:
		return "en passant target square"
	case FieldHalfMove:
		return "half move clock"
	case FieldFullMove:
		return "full move counter"
	default:
		return "unknown field"
	}
}

// FenErrorKind classifies a [FenError].
type FenErrorKind uint8

const (
	// InvalidArgument means the field was present but malformed.
	InvalidArgument FenErrorKind = iota
	// MissingArgument means a required field was absent.
	MissingArgument
	// TooManyArguments means a seventh whitespace-separated token was found.
	TooManyArguments
	// ParserError means the post-validation conversion failed.
	ParserError
)

// FenError reports why a FEN string was rejected. Field is meaningless when
// Kind is [TooManyArguments].
type FenError struct {
	Kind  FenErrorKind
	Field FenField
	// Given is the offending substring, or the whole FEN for missing and
	// surplus fields.
	Given string
}

func (e *FenError) Error() string {
	switch e.Kind {
	case InvalidArgument:
		return fmt.Sprintf("invalid %s %q", e.Field, e.Given)
	case MissingArgument:
		return fmt.Sprintf("missing %s in %q", e.Field, e.Given)
	case TooManyArguments:
		return fmt.Sprintf("too many fields in %q", e.Given)
	case ParserError:
		return fmt.Sprintf("could not parse %s %q", e.Field, e.Given)
	default:
		return fmt.Sprintf("malformed fen %q", e.Given)
	}
}

// FenType distinguishes the 6-field full FEN form from the legal 4-field form
// without move counters.
type FenType uint8

const (
	FenFull FenType = iota
	FenNoCounter
)

// ValidateFEN checks a FEN string against the field grammars without building
// a position. It reports which of the two accepted forms the string is, or a
// *[FenError] describing the first offending field.
//
// Fields are split on single spaces, so runs of spaces produce empty fields
// that fail their grammar; this mirrors how the string will be consumed.
func ValidateFEN(fen string) (FenType, error) {
	fields := strings.Split(fen, " ")
	next := func() (string, bool) {
		if len(fields) == 0 {
			return "", false
		}
		f := fields[0]
		fields = fields[1:]
		return f, true
	}
	validate := func(field FenField, valid func(string) bool) *FenError {
		s, ok := next()
		if !ok {
			return &FenError{Kind: MissingArgument, Field: field, Given: fen}
		}
		if !valid(s) {
			return &FenError{Kind: InvalidArgument, Field: field, Given: s}
		}
		return nil
	}

	if err := validate(FieldPosition, validPosition); err != nil {
		return 0, err
	}
	if err := validate(FieldSideToMove, validSideToMove); err != nil {
		return 0, err
	}
	if err := validate(FieldCastling, validCastling); err != nil {
		return 0, err
	}
	if err := validate(FieldEnPassant, validEnPassant); err != nil {
		return 0, err
	}
	if err := validate(FieldHalfMove, validHalfMove); err != nil {
		if err.Kind == MissingArgument {
			return FenNoCounter, nil
		}
		return 0, err
	}
	if err := validate(FieldFullMove, validFullMove); err != nil {
		return 0, err
	}
	if _, ok := next(); ok {
		return 0, &FenError{Kind: TooManyArguments, Given: fen}
	}
	return FenFull, nil
}

// validPosition accepts eight '/'-separated ranks whose files sum to exactly
// 8, built from the twelve piece letters and the digits 1-8.
func validPosition(s string) bool {
	ranks := 0
	for _, rankString := range strings.Split(s, "/") {
		files := 0
		for _, r := range rankString {
			if r >= '1' && r <= '8' {
				files += int(r - '0')
			} else if parsePiece(r) != Empty {
				files++
			} else {
				return false
			}
		}
		if files != 8 {
			return false
		}
		ranks++
	}
	return ranks == 8
}

func validSideToMove(s string) bool {
	return s == "w" || s == "b"
}

func validCastling(s string) bool {
	if s == "-" {
		return true
	}
	var seen [4]bool
	for _, r := range s {
		var i int
		switch r {
		case 'K':
			i = 0
		case 'Q':
			i = 1
		case 'k':
			i = 2
		case 'q':
			i = 3
		default:
			return false
		}
		if seen[i] {
			return false
		}
		seen[i] = true
	}
	return len(s) > 0
}

func validEnPassant(s string) bool {
	if s == "-" {
		return true
	}
	if len(s) != 2 {
		return false
	}
	if s[0] < 'a' || s[0] > 'h' {
		return false
	}
	return s[1] == '3' || s[1] == '6'
}

// validHalfMove enforces the 50 move bound: a position with more than 50
// reversible half moves on the clock is not accepted.
func validHalfMove(s string) bool {
	n, err := strconv.ParseUint(s, 10, 32)
	return err == nil && n <= 50
}

func validFullMove(s string) bool {
	_, err := strconv.ParseUint(s, 10, 32)
	return err == nil
}

// ParseFEN validates fen and builds the position it describes. Both the full
// 6-field form and the 4-field form without move counters are accepted; the
// short form leaves both counters at zero.
//
// The returned error is always a *[FenError].
func ParseFEN(fen string) (*Position, error) {
	fenType, err := ValidateFEN(fen)
	if err != nil {
		log.Debugf("rejected fen %q: %v", fen, err)
		return nil, err
	}

	fields := strings.Fields(fen)
	pos := &Position{}

	board, ok := parsePositionField(fields[0])
	if !ok {
		return nil, &FenError{Kind: ParserError, Field: FieldPosition, Given: fields[0]}
	}
	pos.board = board
	pos.whiteKingSq = findPiece(&pos.board, WhiteKing)
	pos.blackKingSq = findPiece(&pos.board, BlackKing)
	if pos.whiteKingSq == NoSquare || pos.blackKingSq == NoSquare {
		return nil, &FenError{Kind: ParserError, Field: FieldPosition, Given: fields[0]}
	}

	pos.SideToMove = parseColor(fields[1])

	for _, r := range fields[2] {
		switch r {
		case 'K':
			pos.WhiteKsCastle = true
		case 'Q':
			pos.WhiteQsCastle = true
		case 'k':
			pos.BlackKsCastle = true
		case 'q':
			pos.BlackQsCastle = true
		}
	}

	pos.EnPassant = parseEnPassantField(fields[3])

	if fenType == FenNoCounter {
		return pos, nil
	}

	half, err1 := strconv.ParseUint(fields[4], 10, 32)
	if err1 != nil {
		return nil, &FenError{Kind: ParserError, Field: FieldHalfMove, Given: fields[4]}
	}
	full, err2 := strconv.ParseUint(fields[5], 10, 32)
	if err2 != nil {
		return nil, &FenError{Kind: ParserError, Field: FieldFullMove, Given: fields[5]}
	}
	pos.HalfMove = uint32(half)
	pos.FullMove = uint32(full)
	return pos, nil
}

// parsePositionField reads the FEN board field, rank 8 first, into the A1=0
// board layout.
func parsePositionField(s string) ([64]Piece, bool) {
	var board [64]Piece
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return board, false
	}
	for i, rankString := range ranks {
		rank := 7 - i
		file := 0
		for _, r := range rankString {
			if r >= '1' && r <= '8' {
				file += int(r - '0')
				continue
			}
			piece := parsePiece(r)
			if piece == Empty || file > 7 {
				return board, false
			}
			board[rank*8+file] = piece
			file++
		}
		if file != 8 {
			return board, false
		}
	}
	return board, true
}

// parseEnPassantField converts the standard FEN target square (the square the
// pawn jumped over, rank 3 or 6) to the landing square stored on the
// position (rank 4 or 5).
func parseEnPassantField(s string) Square {
	if s == "-" {
		return NoSquare
	}
	sq := parseSquare(s)
	if sq == NoSquare {
		return NoSquare
	}
	if sq.Rank() == 2 {
		return sq + 8
	}
	return sq - 8
}
