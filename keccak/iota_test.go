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

func TestIotaV0RoundZero(t *testing.T) {
	var s State
	IotaV0(&s, 0)
	if s[0] != 0x0000000000000001 {
		t.Fatalf("iota v0 round 0: want 0x1, got %#x", s[0])
	}
	for i := 1; i < 25; i++ {
		if s[i] != 0 {
			t.Fatalf("iota v0 round 0: lane %d should be untouched, got %#x", i, s[i])
		}
	}
}

// TestIotaOnlyTouchesLaneZero confirms every iota variant leaves lanes
// 1..24 untouched, for every round index.
func TestIotaOnlyTouchesLaneZero(t *testing.T) {
	for i, fn := range IotaVariants {
		for round := 0; round < 24; round++ {
			var s State
			for j := range s {
				s[j] = uint64(j) + 1
			}
			want := s
			fn(&s, round)
			for j := 1; j < 25; j++ {
				if s[j] != want[j] {
					t.Fatalf("iota variant %d round %d: lane %d changed unexpectedly", i, round, j)
				}
			}
		}
	}
}

func TestIotaV6MatchesLFSRSteppedRoundPlusOne(t *testing.T) {
	lfsr := uint64(0x243f6a8885a308d3)
	for round := 0; round < 24; round++ {
		if lfsr&0x8000000000000000 != 0 {
			lfsr = (lfsr << 1) ^ 0x1B
		} else {
			lfsr <<= 1
		}
		var s State
		IotaV6(&s, round)
		if s[0] != lfsr {
			t.Fatalf("iota v6 round %d: want %#x, got %#x", round, lfsr, s[0])
		}
	}
}
