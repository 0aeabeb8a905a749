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

import "math/bits"

// RhoPiVariants holds the seven interchangeable rho-pi implementations,
// indexed by variant number.
var RhoPiVariants = [NumVariants]RhoPiFunc{
	RhoPiV0, RhoPiV1, RhoPiV2, RhoPiV3, RhoPiV4, RhoPiV5, RhoPiV6,
}

// RhoPiV0 is the canonical FIPS 202 rho-pi step: walk the lane-update
// cycle described by piln, rotating each lane by rotc before it lands.
func RhoPiV0(a *State) {
	var b State
	t := a[1]
	for i := 0; i < 24; i++ {
		j := piln[i]
		b[j] = bits.RotateLeft64(t, rotc[i])
		t = a[j]
	}
	b[0] = a[0]
	*a = b
}

// rhoPiFixedOffset implements the shared shape of variants 1, 2, 3 and 6:
// lane (x, y) moves to (y, 2x+3y mod 5) and is rotated by a fixed
// per-(x,y) offset table.
func rhoPiFixedOffset(a *State, offsets [5][5]int) {
	var b State
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			newX := y
			newY := (2*x + 3*y) % 5
			idx := x + 5*y
			destIdx := newX + 5*newY
			b[destIdx] = bits.RotateLeft64(a[idx], offsets[x][y])
		}
	}
	*a = b
}

// RhoPiV1 rotates by a Fibonacci-derived offset table.
func RhoPiV1(a *State) { rhoPiFixedOffset(a, fibOffsets) }

// RhoPiV2 rotates by an offset table drawn from consecutive odd primes.
func RhoPiV2(a *State) { rhoPiFixedOffset(a, primeOffsets) }

// RhoPiV3 rotates by an arithmetic offset table with a uniform step.
func RhoPiV3(a *State) { rhoPiFixedOffset(a, uniformOffsets) }

// RhoPiV4 moves lane (x, y) to (y, (x+y) mod 5) instead of the
// 2x+3y-weighted permutation used by the other variants, rotating by a
// fixed transpose-derived offset table.
func RhoPiV4(a *State) {
	var b State
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			newX := y
			newY := (x + y) % 5
			idx := x + 5*y
			destIdx := newX + 5*newY
			b[destIdx] = bits.RotateLeft64(a[idx], transposeOffsets[x][y])
		}
	}
	*a = b
}

// RhoPiV5 uses the same 2x+3y lane permutation as V1-V3 and V6 but
// computes its rotation amount from source and destination coordinates
// rather than a fixed table.
func RhoPiV5(a *State) {
	var b State
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			newX := y
			newY := (2*x + 3*y) % 5
			idx := x + 5*y
			destIdx := newX + 5*newY
			rot := ((x*7 + y*11) + (newX*13 + newY*17)) % 64
			b[destIdx] = bits.RotateLeft64(a[idx], rot)
		}
	}
	*a = b
}

// RhoPiV6 rotates by a row-major offset table built from small
// Fibonacci-like increments.
func RhoPiV6(a *State) { rhoPiFixedOffset(a, rowMajorOffsets) }
