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

// piln and rotc drive the canonical rho-pi lane permutation: piln[i] is
// the destination lane for the lane visited at step i, rotc[i] its
// rotation amount.
var piln = [24]int{10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4, 15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1}
var rotc = [24]int{1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14, 27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44}

// canonicalRC holds the 24 FIPS 202 round constants used by iota variant 0.
var canonicalRC = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a,
	0x8000000080008000, 0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008a,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// iotaPhiConstants seeds iota variant 1.
var iotaPhiConstants = [24]uint64{
	0x06BC5545CFC8F594, 0xA4F3CEFF4F1371A9, 0x432B48B8CE5DEDBE,
	0xE162C2724DA869D3, 0x7F9A3C2BCCF2E5E8, 0x1DD1B5E54C3D61FD,
	0xBC092F9ECB87DE12, 0x5A40A9584AD25A27, 0xF8782311CA1CD63C,
	0x96AF9CCB49675251, 0x34E71684C8B1CE66, 0xD31E903E47FC4A7B,
	0x715609F7C746C690, 0x0F8D83B1469142A5, 0xADC4FD6AC5DBBEBA,
	0x4BFC772445263ACF, 0xEA33F0DDC470B6E4, 0x886B6A9743BB32F9,
	0x26A2E450C305AF0E, 0xC4DA5E0A42502B23, 0x6311D7C3C19AA738,
	0x0149517D40E5234D, 0x9F80CB36C02F9F62, 0x3DB844F03F7A1B77,
}

// caConstants seeds iota variant 2.
var caConstants = [24]uint64{
	0xdcc593ae756195ab, 0xf0f15c12c71b6808, 0xfba71d7064679f81,
	0xfd96e0b1b18ed95f, 0xdadbdcbb100372cb, 0xc987c0b67909f069,
	0x64bac1a452ebec40, 0xf51e968d1e10f1e8, 0x4a2ac120270d9df9,
	0x03b893064e487d12, 0x0374c9c06fa50f63, 0xa1611e8a0b618d79,
	0x5ea41c38037e4e84, 0xe1409e0cb3ee025f, 0x9048ad54bc95df4f,
	0xcc8940da3d0fc244, 0x80383a87fc613d0f, 0x77438338845faf78,
	0xb94c598b703659ec, 0xca6f5bbcf1da3800, 0x5c9dec36444e0aa3,
	0x1010402d5f031aa6, 0x2dd1a27321830397, 0x58fefd9faa23983b,
}

// sha256StyleConstants seeds iota variant 3.
var sha256StyleConstants = [24]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f,
	0xe9b5dba58189dbbc, 0x3956c25bf348b538, 0x59f111f1b605d019,
	0x923f82a4af194f9b, 0xab1c5ed5da6d8118, 0xd807aa98a3030242,
	0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235,
	0xc19bf174cf692694, 0xe49b69c19ef14ad2, 0xefbe4786384f25e3,
	0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65, 0x2de92c6f592b0275,
	0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
}

// piConstants seeds iota variant 4.
var piConstants = [24]uint64{
	0x243f6a8885a308d3, 0x13198a2e03707344, 0xa4093822299f31d0,
	0x082efa98ec4e6c89, 0x452821e638d01377, 0xbe5466cf34e90c6c,
	0xc0ac29b7c97c50dd, 0x3f84d5b5b5470917, 0x9216d5d98979fb1b,
	0xd1310ba698dfb5ac, 0x2ffd72dbd01adfb7, 0xb8e1afed6a267e96,
	0xba7c9045f12c7f99, 0x24a19947b3916cf7, 0x0801f2e2858efc16,
	0x636920d871574e69, 0xa458fea3f4933d7e, 0x0d95748f728eb658,
	0x718bcd5882154aee, 0x7b54a41dc25a59b5, 0x9c30d5392af26013,
	0xc5d1b023286085f0, 0xca417918b8db38ef, 0x8e79dcb0603a180e,
}

// eConstants seeds iota variant 5.
var eConstants = [24]uint64{
	0x2b7e151628aed2a6, 0xabf7158809cf4f3c, 0x762e7160f38b4da5,
	0x6a784d9045190cfe, 0xf324e7738926cfbe, 0x5f4bf8d8d8c31d76,
	0x3da06c80abb1185e, 0xb4f7c7b5757f5958, 0x490cfd47d7c19bb4,
	0x2158d9554f7b46bc, 0xed55c4d79fd5f24d, 0x6613c31c3839a2dd,
	0xf8a9a276bcfbfa1c, 0x877c56284dab79cd, 0x4c2b3293d20e9e5e,
	0xa0248876229c6c1d, 0xd41244d6da212011, 0x19a4c58dc8544d65,
	0xd19d99d435061763, 0x3e1f0e42d76632c0, 0x24aa23a41031e7e4,
	0xe08f11559139d499, 0x1c8340a5a3068e4c, 0x5466861d07c09362,
}

// fibOffsets drives rho-pi variant 1's rotation amounts, indexed [x][y].
var fibOffsets = [5][5]int{
	{0, 1, 1, 2, 3}, {5, 8, 13, 21, 34}, {55, 25, 16, 41, 57}, {34, 27, 61, 24, 21}, {45, 18, 63, 7, 14},
}

// primeOffsets drives rho-pi variant 2's rotation amounts. The fifth row
// repeats the first five odd primes above 5 rather than continuing the
// sequence; this duplication is intentional, preserved from the source
// table.
var primeOffsets = [5][5]int{
	{0, 2, 3, 5, 7}, {11, 13, 17, 19, 23}, {29, 31, 37, 41, 43}, {47, 53, 59, 61, 1}, {7, 11, 13, 17, 19},
}

// uniformOffsets drives rho-pi variant 3's rotation amounts.
var uniformOffsets = [5][5]int{
	{0, 3, 5, 8, 10}, {13, 15, 18, 21, 23}, {26, 28, 31, 33, 36}, {38, 41, 44, 46, 49}, {51, 54, 56, 59, 62},
}

// transposeOffsets drives rho-pi variant 4's rotation amounts.
var transposeOffsets = [5][5]int{
	{0, 36, 3, 41, 18}, {1, 44, 10, 45, 2}, {62, 6, 43, 15, 61}, {28, 55, 25, 21, 56}, {27, 20, 39, 8, 14},
}

// rowMajorOffsets drives rho-pi variant 6's rotation amounts.
var rowMajorOffsets = [5][5]int{
	{0, 1, 2, 3, 5}, {8, 13, 21, 34, 55}, {25, 16, 9, 4, 2}, {35, 39, 44, 50, 57}, {15, 22, 30, 39, 49},
}
