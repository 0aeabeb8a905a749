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

// RateLanes is the number of state lanes the rate block is absorbed
// into; the remaining 8 lanes are the untouched capacity.
const RateLanes = RateBytes / 8

// InitStateFromMessage pads msg with pad10*1, absorbs the first
// RateBytes of the padded output into lanes 0..16 of a fresh state
// (little-endian byte order per lane), and leaves the capacity lanes
// 17..24 zero. The transient padding buffer is sized len(msg)+RateBytes+1,
// which always holds the padded message, so the ErrPaddingBufferTooSmall
// return from ApplySHA3Padding is passed through but never occurs.
func InitStateFromMessage(msg []byte) (State, error) {
	var st State
	buf := make([]byte, len(msg)+RateBytes+1)
	n, err := ApplySHA3Padding(msg, buf)
	if err != nil {
		return st, err
	}
	_ = n
	for i := 0; i < RateLanes; i++ {
		off := i * 8
		lane := uint64(buf[off]) |
			uint64(buf[off+1])<<8 |
			uint64(buf[off+2])<<16 |
			uint64(buf[off+3])<<24 |
			uint64(buf[off+4])<<32 |
			uint64(buf[off+5])<<40 |
			uint64(buf[off+6])<<48 |
			uint64(buf[off+7])<<56
		st[i] = lane
	}
	return st, nil
}

// InitStateFromPlaintext is a convenience wrapper over
// InitStateFromMessage for string input; the buffer sizing in
// InitStateFromMessage guarantees this never fails.
func InitStateFromPlaintext(s string) State {
	st, err := InitStateFromMessage([]byte(s))
	if err != nil {
		panic(err)
	}
	return st
}
