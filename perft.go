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

// PerftResult pairs a root move with the leaf count of its subtree. The
// per-move breakdown is what makes perft mismatches debuggable: compare it
// against a reference engine and recurse into the move that disagrees.
type PerftResult struct {
	Move  LegalMove
	Nodes uint64
}

// Perft counts the positions reachable from pos in exactly depth half moves,
// along with the per-root-move breakdown. A non-positive depth counts
// nothing.
func Perft(pos *Position, depth int) ([]PerftResult, uint64) {
	if depth <= 0 {
		return nil, 0
	}
	moves := LegalMoves(pos)
	results := make([]PerftResult, 0, len(moves))
	var total uint64
	for _, m := range moves {
		var nodes uint64 = 1
		if depth > 1 {
			next := pos.Copy()
			next.MakeMove(m)
			nodes = perftCount(next, depth-1)
		}
		results = append(results, PerftResult{Move: m, Nodes: nodes})
		total += nodes
	}
	for _, r := range results {
		log.Debugf("perft %s: %d", r.Move, r.Nodes)
	}
	log.Debugf("perft depth %d total: %d", depth, total)
	return results, total
}

func perftCount(pos *Position, depth int) uint64 {
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var total uint64
	for _, m := range moves {
		next := pos.Copy()
		next.MakeMove(m)
		total += perftCount(next, depth-1)
	}
	return total
}
