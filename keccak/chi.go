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

// ChiVariants holds the seven interchangeable chi implementations,
// indexed by variant number.
var ChiVariants = [NumVariants]ChiFunc{
	ChiV0, ChiV1, ChiV2, ChiV3, ChiV4, ChiV5, ChiV6,
}

// chiRows applies f independently to each of the five rows of a,
// presenting f with the row's five lanes and writing back what it
// returns.
func chiRows(a *State, f func(row *[5]uint64)) {
	var temp [5]uint64
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			temp[x] = a[x+5*y]
		}
		f(&temp)
		for x := 0; x < 5; x++ {
			a[x+5*y] = temp[x]
		}
	}
}

// ChiV0 is the canonical FIPS 202 chi step: each lane is xored with the
// AND of the complement of its immediate right neighbor and the lane two
// to the right.
func ChiV0(a *State) {
	chiRows(a, func(t *[5]uint64) {
		var out [5]uint64
		for x := 0; x < 5; x++ {
			out[x] = t[x] ^ (^t[(x+1)%5] & t[(x+2)%5])
		}
		*t = out
	})
}

// ChiV1 shifts the two neighbor terms one lane further right than the
// canonical step.
func ChiV1(a *State) {
	chiRows(a, func(t *[5]uint64) {
		var out [5]uint64
		for x := 0; x < 5; x++ {
			out[x] = t[x] ^ (^t[(x+2)%5] & t[(x+3)%5])
		}
		*t = out
	})
}

// ChiV2 shifts the two neighbor terms two lanes further right than the
// canonical step.
func ChiV2(a *State) {
	chiRows(a, func(t *[5]uint64) {
		var out [5]uint64
		for x := 0; x < 5; x++ {
			out[x] = t[x] ^ (^t[(x+3)%5] & t[(x+4)%5])
		}
		*t = out
	})
}

// ChiV3 is the same neighbor pair as V2 with the roles of complemented
// and plain term swapped.
func ChiV3(a *State) {
	chiRows(a, func(t *[5]uint64) {
		var out [5]uint64
		for x := 0; x < 5; x++ {
			out[x] = t[x] ^ (^t[(x+4)%5] & t[(x+3)%5])
		}
		*t = out
	})
}

// ChiV4 replaces the canonical step's AND-of-complement with a
// multiplexer: (b & rol(c,1)) | (~b & rol(d,3)), drawing on three
// neighbor lanes instead of two.
func ChiV4(a *State) {
	chiRows(a, func(t *[5]uint64) {
		var out [5]uint64
		for x := 0; x < 5; x++ {
			b := t[(x+1)%5]
			c := t[(x+2)%5]
			d := t[(x+3)%5]
			rotC := bits.RotateLeft64(c, 1)
			rotD := bits.RotateLeft64(d, 3)
			out[x] = t[x] ^ ((b & rotC) | (^b & rotD))
		}
		*t = out
	})
}

// ChiV5 uses a higher-nonlinearity combiner over three neighbor lanes:
// (~b & c) | (b & ~c & d).
func ChiV5(a *State) {
	chiRows(a, func(t *[5]uint64) {
		var out [5]uint64
		for x := 0; x < 5; x++ {
			av := t[x]
			b := t[(x+1)%5]
			c := t[(x+2)%5]
			d := t[(x+3)%5]
			out[x] = av ^ ((^b & c) | (b & ^c & d))
		}
		*t = out
	})
}

// ChiV6 xors in a boolean majority of three neighbor lanes plus a
// copy of the third of those lanes rotated left by 7, balancing the output's Hamming weight more
// evenly than the canonical AND-of-complement.
func ChiV6(a *State) {
	chiRows(a, func(t *[5]uint64) {
		var out [5]uint64
		for x := 0; x < 5; x++ {
			av := t[x]
			b := t[(x+1)%5]
			c := t[(x+2)%5]
			d := t[(x+3)%5]
			maj := (b & c) | (b & d) | (c & d)
			out[x] = av ^ maj ^ bits.RotateLeft64(d, 7)
		}
		*t = out
	})
}
