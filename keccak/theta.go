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

// ThetaVariants holds the seven interchangeable theta implementations,
// indexed by variant number.
var ThetaVariants = [NumVariants]ThetaFunc{
	ThetaV0, ThetaV1, ThetaV2, ThetaV3, ThetaV4, ThetaV5, ThetaV6,
}

// ThetaV0 is the canonical FIPS 202 theta step.
func ThetaV0(a *State) {
	var c, d [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		l, r := (x+4)%5, (x+1)%5
		d[x] = c[l] ^ bits.RotateLeft64(c[r], 1)
	}
	for i := 0; i < 25; i++ {
		a[i] ^= d[i%5]
	}
}

// ThetaV1 weights the column parity by rotating the y=1, y=2 and y=4
// rows (by 7, 13 and 19) before folding, in place of the uniform xor of
// the canonical step.
func ThetaV1(a *State) {
	var c, d [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^
			bits.RotateLeft64(a[x+5], 7) ^
			bits.RotateLeft64(a[x+10], 13) ^
			a[x+15] ^
			bits.RotateLeft64(a[x+20], 19)
	}
	for x := 0; x < 5; x++ {
		l, r := (x+4)%5, (x+1)%5
		d[x] = c[l] ^ bits.RotateLeft64(c[r], 1)
	}
	for i := 0; i < 25; i++ {
		a[i] ^= d[i%5]
	}
}

// ThetaV2 folds both column parity (C) and row parity (R) into the
// diffusion term, rather than column parity alone.
func ThetaV2(a *State) {
	var c, r [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for y := 0; y < 5; y++ {
		r[y] = a[y*5] ^ a[y*5+1] ^ a[y*5+2] ^ a[y*5+3] ^ a[y*5+4]
	}
	for x := 0; x < 5; x++ {
		dx := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		for y := 0; y < 5; y++ {
			a[x+5*y] ^= dx ^ bits.RotateLeft64(r[(y+1)%5], 1)
		}
	}
}

// ThetaV3 rotates the right-neighbor column parity by 2 instead of 1.
func ThetaV3(a *State) {
	var c, d [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		l, r := (x+4)%5, (x+1)%5
		d[x] = c[l] ^ bits.RotateLeft64(c[r], 2)
	}
	for i := 0; i < 25; i++ {
		a[i] ^= d[i%5]
	}
}

// ThetaV4 rotates the right-neighbor column parity by 3 instead of 1.
func ThetaV4(a *State) {
	var c, d [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		l, r := (x+4)%5, (x+1)%5
		d[x] = c[l] ^ bits.RotateLeft64(c[r], 3)
	}
	for i := 0; i < 25; i++ {
		a[i] ^= d[i%5]
	}
}

// ThetaV5 rotates both the left- and right-neighbor column parity terms
// by 1, instead of leaving the left term unrotated.
func ThetaV5(a *State) {
	var c, d [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		l, r := (x+4)%5, (x+1)%5
		d[x] = bits.RotateLeft64(c[l], 1) ^ bits.RotateLeft64(c[r], 1)
	}
	for i := 0; i < 25; i++ {
		a[i] ^= d[i%5]
	}
}

// ThetaV6 combines the row-weighted column parity of V1 with a third
// rotated term drawn from two columns over, for a wider diffusion
// radius.
func ThetaV6(a *State) {
	var c, d [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^
			bits.RotateLeft64(a[x+5], 7) ^
			bits.RotateLeft64(a[x+10], 13) ^
			a[x+15] ^
			bits.RotateLeft64(a[x+20], 19)
	}
	for x := 0; x < 5; x++ {
		l, r := (x+4)%5, (x+1)%5
		d[x] = c[l] ^ bits.RotateLeft64(c[r], 1) ^ bits.RotateLeft64(c[(x+2)%5], 5)
	}
	for i := 0; i < 25; i++ {
		a[i] ^= d[i%5]
	}
}
