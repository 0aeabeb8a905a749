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

package seed

// Domain separators distinguish message-derived schedules from
// key-derived ones; changing either string changes every seed produced
// from it.
const (
	domainMessage = "KECCAK_VARIANT_MSG_PSJ"
	domainKey     = "KECCAK_VARIANT_KEY_PSJ"
)

// FromPlaintext derives a schedule from a UTF-8 string under the
// message domain separator, labeled ModePlaintext.
func FromPlaintext(s string) KeccakSchedule {
	digest := SHA256(append([]byte(domainMessage), []byte(s)...))
	sched := generateScheduleInternal(digest)
	sched.Mode = ModePlaintext
	return sched
}

// FromBinary derives a schedule from an arbitrary byte slice under the
// same message domain separator as FromPlaintext. It labels the result
// ModePlaintext rather than introducing a distinct binary mode, matching
// the source this package is derived from byte-for-byte.
func FromBinary(b []byte) KeccakSchedule {
	digest := SHA256(append([]byte(domainMessage), b...))
	sched := generateScheduleInternal(digest)
	sched.Mode = ModePlaintext
	return sched
}

// FromKey derives a schedule from a UTF-8 key string under the key
// domain separator, labeled ModeKey.
func FromKey(s string) KeccakSchedule {
	digest := SHA256(append([]byte(domainKey), []byte(s)...))
	sched := generateScheduleInternal(digest)
	sched.Mode = ModeKey
	return sched
}
