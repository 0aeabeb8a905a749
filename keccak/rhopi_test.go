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

import (
	"math/bits"
	"testing"
)

func TestRhoPiPermutationsAreBijections(t *testing.T) {
	seen := make(map[int]bool)
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			newX := y
			newY := (2*x + 3*y) % 5
			dest := newX + 5*newY
			if seen[dest] {
				t.Fatalf("(x,y)->(y,2x+3y mod 5) is not injective: dest %d repeated", dest)
			}
			seen[dest] = true
		}
	}
	if len(seen) != 25 {
		t.Fatalf("expected 25 distinct destinations, got %d", len(seen))
	}

	seen = make(map[int]bool)
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			newX := y
			newY := (x + y) % 5
			dest := newX + 5*newY
			if seen[dest] {
				t.Fatalf("(x,y)->(y,x+y mod 5) is not injective: dest %d repeated", dest)
			}
			seen[dest] = true
		}
	}
	if len(seen) != 25 {
		t.Fatalf("expected 25 distinct destinations, got %d", len(seen))
	}
}

// Every rho-pi variant must relocate each source lane to a distinct
// destination without aliasing. Rotation preserves Hamming weight, so
// assigning each source lane a distinct weight (1 set bit for lane 0, 2
// for lane 1, ...) and checking that all 25 weights still appear exactly
// once afterward witnesses a true 25-way permutation, independent of the
// coordinate formula each variant uses.
func TestRhoPiVariantsArePermutations(t *testing.T) {
	for i, fn := range RhoPiVariants {
		var s State
		for j := range s {
			s[j] = uint64(1<<uint(j+1)) - 1 // j+1 low bits set
		}
		fn(&s)
		seenWeight := make(map[int]bool)
		for _, lane := range s {
			w := bits.OnesCount64(lane)
			if seenWeight[w] {
				t.Errorf("rho-pi variant %d: weight %d produced by more than one lane", i, w)
			}
			seenWeight[w] = true
		}
		if len(seenWeight) != 25 {
			t.Errorf("rho-pi variant %d: expected 25 distinct lane weights, got %d", i, len(seenWeight))
		}
	}
}
