// Copyright (C) 2026 PolyMTD Authors.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package keccak

import "testing"

// TestChiV0RowBijection exhaustively checks chi v0 is a bijection on a
// row over a small value set: since the canonical chi step is invertible
// per row, distinct input rows drawn from this set must map to distinct
// output rows.
func TestChiV0RowBijection(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 0xff, 0xf0f0f0f0f0f0f0f0, ^uint64(0)}
	type row = [5]uint64
	seen := make(map[row]row)
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				for _, d := range values {
					for _, e := range values {
						in := row{a, b, c, d, e}
						var s State
						s[0], s[1], s[2], s[3], s[4] = a, b, c, d, e
						ChiV0(&s)
						out := row{s[0], s[1], s[2], s[3], s[4]}
						if prior, ok := seen[out]; ok && prior != in {
							t.Fatalf("chi v0 row collision: inputs %v and %v both produce %v", prior, in, out)
						}
						seen[out] = in
					}
				}
			}
		}
	}
}

// TestChiVariantsAreDeterministic confirms every chi variant gives the
// same output for the same input across repeated calls.
func TestChiVariantsAreDeterministic(t *testing.T) {
	base := State{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25}
	for i, fn := range ChiVariants {
		a, b := base, base
		fn(&a)
		fn(&b)
		if a != b {
			t.Errorf("chi variant %d is not deterministic", i)
		}
	}
}
