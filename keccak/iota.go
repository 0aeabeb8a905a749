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

// IotaVariants holds the seven interchangeable iota implementations,
// indexed by variant number.
var IotaVariants = [NumVariants]IotaFunc{
	IotaV0, IotaV1, IotaV2, IotaV3, IotaV4, IotaV5, IotaV6,
}

// IotaV0 is the canonical FIPS 202 iota step.
func IotaV0(a *State, round int) { a[0] ^= canonicalRC[round] }

// IotaV1 xors in a constant table derived from the golden ratio's
// fractional digits instead of the LFSR-generated canonical constants.
func IotaV1(a *State, round int) { a[0] ^= iotaPhiConstants[round] }

// IotaV2 xors in a constant table with no declared derivation, included
// purely as an additional candidate value set.
func IotaV2(a *State, round int) { a[0] ^= caConstants[round] }

// IotaV3 xors in a constant table holding the first 24 SHA-512 round
// constants, whose upper 32 bits are the first 24 SHA-256 round
// constants.
func IotaV3(a *State, round int) { a[0] ^= sha256StyleConstants[round] }

// IotaV4 xors in a constant table derived from the fractional digits of
// pi.
func IotaV4(a *State, round int) { a[0] ^= piConstants[round] }

// IotaV5 xors in a constant table derived from the fractional digits of
// e.
func IotaV5(a *State, round int) { a[0] ^= eConstants[round] }

// IotaV6 regenerates its constant on every call by stepping a 64-bit
// Galois LFSR (polynomial 0x1B) round+1 times from a fixed seed, rather
// than indexing a precomputed table.
func IotaV6(a *State, round int) {
	lfsr := uint64(0x243f6a8885a308d3)
	for i := 0; i <= round; i++ {
		if lfsr&0x8000000000000000 != 0 {
			lfsr = (lfsr << 1) ^ 0x000000000000001B
		} else {
			lfsr <<= 1
		}
	}
	a[0] ^= lfsr
}
