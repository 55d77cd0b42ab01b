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

package chess_test

import (
	"fmt"

	chess "github.com/brighamskarda/chesscore"
)

func ExampleParseFEN() {
	pos, err := chess.ParseFEN(chess.DefaultFEN)
	if err != nil {
		panic(err)
	}
	fmt.Println(pos.SideToMove)
	fmt.Println(pos.String())
	// Output:
	// White
	// rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1
}

func ExampleParseMove() {
	pos := chess.Default()
	m, err := chess.ParseMove(pos, "e2e4")
	if err != nil {
		panic(err)
	}
	pos.MakeMove(m)
	fmt.Println(pos.String())
	// Output:
	// rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1
}

func ExampleLegalMoves() {
	pos := chess.Default()
	fmt.Println(len(chess.LegalMoves(pos)))
	// Output:
	// 20
}

func ExamplePerft() {
	pos := chess.Default()
	_, nodes := chess.Perft(pos, 2)
	fmt.Println(nodes)
	// Output:
	// 400
}

func ExampleLegalMove_String() {
	pos, err := chess.ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		panic(err)
	}
	for _, m := range chess.LegalMoves(pos) {
		fmt.Println(m)
	}
	// Output:
	// e1f2
	// e1d2
	// e1f1
	// e1d1
	// e1e2
	// a7a8q
	// a7a8r
	// a7a8b
	// a7a8n
}
