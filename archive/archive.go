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

package archive

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/crypto/blake2b"
)

// Entry is one archived run report: a label (typically the CLI's input
// description), the rendered schedule report, a run identifier, and a
// BLAKE2b-256 checksum of Report taken at write time.
type Entry struct {
	ID       uuid.UUID `json:"id"`
	Label    string    `json:"label"`
	Report   string    `json:"report"`
	Checksum [32]byte  `json:"checksum"`
}

func checksum(report string) [32]byte {
	return blake2b.Sum256([]byte(report))
}

// Writer appends entries to a zstd-compressed stream, one JSON record
// per line.
type Writer struct {
	enc *zstd.Encoder
}

// NewWriter wraps w with a zstd encoder. The caller must call Close to
// flush the final compressed frame.
func NewWriter(w io.Writer) (*Writer, error) {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("archive: new writer: %w", err)
	}
	return &Writer{enc: enc}, nil
}

// Append writes one entry: label, report text, a fresh run identifier,
// and the report's BLAKE2b-256 checksum.
func (w *Writer) Append(label, report string) error {
	entry := Entry{
		ID:       uuid.New(),
		Label:    label,
		Report:   report,
		Checksum: checksum(report),
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("archive: encode entry %q: %w", label, err)
	}
	line = append(line, '\n')
	if _, err := w.enc.Write(line); err != nil {
		return fmt.Errorf("archive: write entry %q: %w", label, err)
	}
	return nil
}

// Close flushes and closes the underlying zstd encoder.
func (w *Writer) Close() error {
	return w.enc.Close()
}

// Read decodes a zstd-compressed archive written by Writer, verifying
// every entry's checksum. It returns an error naming the first entry
// whose stored checksum does not match its report text.
func Read(r io.Reader) ([]Entry, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("archive: new reader: %w", err)
	}
	defer dec.Close()

	var entries []Entry
	scanner := bufio.NewScanner(dec)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("archive: decode entry: %w", err)
		}
		if checksum(e.Report) != e.Checksum {
			return nil, fmt.Errorf("archive: checksum mismatch for entry %q (%s)", e.Label, e.ID)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("archive: scan entries: %w", err)
	}
	return entries, nil
}
