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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFENDefault(t *testing.T) {
	pos, err := ParseFEN(DefaultFEN)
	require.NoError(t, err)

	assert.Equal(t, White, pos.SideToMove)
	assert.True(t, pos.WhiteKsCastle)
	assert.True(t, pos.WhiteQsCastle)
	assert.True(t, pos.BlackKsCastle)
	assert.True(t, pos.BlackQsCastle)
	assert.Equal(t, NoSquare, pos.EnPassant)
	assert.Equal(t, uint32(0), pos.HalfMove)
	assert.Equal(t, uint32(1), pos.FullMove)
	assert.Equal(t, E1, pos.whiteKingSq)
	assert.Equal(t, E8, pos.blackKingSq)
	assert.Equal(t, WhiteRook, pos.PieceAt(A1))
	assert.Equal(t, BlackQueen, pos.PieceAt(D8))
	assert.Equal(t, Empty, pos.PieceAt(E4))
}

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		DefaultFEN,
		"1k1r3r/ppq2Rp1/2p1p1p1/4N1b1/Q2P4/2P4P/PP6/R3K3 b Q - 0 23",
		"rn1qk2r/pbppppbp/1p3np1/8/4P3/3P1NP1/PPP2PBP/RNBQ1RK1 b - - 24 6",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/Pp6/8/8/8/4K3 w - b6 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, pos.String())
	}
}

func TestParseFENNoCounter(t *testing.T) {
	kiwiPete := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"

	fenType, err := ValidateFEN(kiwiPete)
	require.NoError(t, err)
	assert.Equal(t, FenNoCounter, fenType)

	pos, err := ParseFEN(kiwiPete)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), pos.HalfMove)
	assert.Equal(t, uint32(0), pos.FullMove)
	assert.Equal(t, White, pos.SideToMove)
}

func TestParseFENEnPassantConversion(t *testing.T) {
	// The FEN names b6, the square the pawn jumped over; the position stores
	// b5, the square the pawn landed on.
	pos, err := ParseFEN("4k3/8/8/Pp6/8/8/8/4K3 w - b6 0 1")
	require.NoError(t, err)
	assert.Equal(t, B5, pos.EnPassant)
	assert.Equal(t, BlackPawn, pos.PieceAt(pos.EnPassant))

	pos, err = ParseFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PP1/RNBQKBNR b KQkq e3 0 2")
	require.NoError(t, err)
	assert.Equal(t, E4, pos.EnPassant)
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		kind  FenErrorKind
		field FenField
	}{
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPhPPPP/RNBQKBNR w KQkq - 0 1", InvalidArgument, FieldPosition},
		{"only spaces", "    ", InvalidArgument, FieldPosition},
		{"short rank", "1k1r3r/pq2Rp1/2p1p1p1/4N1b1/Q2P4/2P4P/PP6/R3K3 b Q - 0 23", InvalidArgument, FieldPosition},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", InvalidArgument, FieldPosition},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", InvalidArgument, FieldSideToMove},
		{"duplicate castle letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KKkq - 0 1", InvalidArgument, FieldCastling},
		{"dash among castles", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w K-kq - 0 1", InvalidArgument, FieldCastling},
		{"ep on wrong rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1", InvalidArgument, FieldEnPassant},
		{"half move above fifty", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 51 1", InvalidArgument, FieldHalfMove},
		{"full move not a number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 x", InvalidArgument, FieldFullMove},
		{"missing en passant", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq", MissingArgument, FieldEnPassant},
		{"missing full move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", MissingArgument, FieldFullMove},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseFEN(test.fen)
			require.Error(t, err)
			var fenErr *FenError
			require.ErrorAs(t, err, &fenErr)
			assert.Equal(t, test.kind, fenErr.Kind)
			assert.Equal(t, test.field, fenErr.Field)
		})
	}
}

func TestParseFENTooManyArguments(t *testing.T) {
	_, err := ParseFEN(DefaultFEN + " extra")
	require.Error(t, err)
	var fenErr *FenError
	require.ErrorAs(t, err, &fenErr)
	assert.Equal(t, TooManyArguments, fenErr.Kind)
}

func TestParseFENMissingKing(t *testing.T) {
	// Structurally valid but unplayable: the validator passes it, the parser
	// cannot cache a king square.
	_, err := ParseFEN("8/8/8/8/8/8/8/8 w - - 0 1")
	require.Error(t, err)
	var fenErr *FenError
	require.ErrorAs(t, err, &fenErr)
	assert.Equal(t, ParserError, fenErr.Kind)
	assert.Equal(t, FieldPosition, fenErr.Field)
}

func TestUnmarshalText(t *testing.T) {
	pos := &Position{}
	err := pos.UnmarshalText([]byte(DefaultFEN))
	require.NoError(t, err)
	assert.Equal(t, DefaultFEN, pos.String())

	err = pos.UnmarshalText([]byte("not a fen"))
	assert.Error(t, err)
}
