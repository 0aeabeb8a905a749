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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PinkOwOjak/polymtd-keccak/archive"
	"github.com/PinkOwOjak/polymtd-keccak/config"
	"github.com/PinkOwOjak/polymtd-keccak/keccak"
	"github.com/PinkOwOjak/polymtd-keccak/report"
	"github.com/PinkOwOjak/polymtd-keccak/seed"
)

func main() {
	keyMode := flag.Bool("key", false, "derive the schedule as a key rather than a message")
	configPath := flag.String("config", "", "path to a YAML config file of CLI defaults")
	archivePath := flag.String("archive", "", "path to a zstd archive to append this run's report to")
	flag.Parse()

	cfg := config.Config{}
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *archivePath == "" {
		*archivePath = cfg.Archive
	}
	if !*keyMode && cfg.Domain == "key" {
		*keyMode = true
	}

	args := flag.Args()
	var input string
	var label string
	if len(args) > 0 {
		input = args[0]
		label = input
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading stdin: %s\n", err)
			os.Exit(1)
		}
		input = string(data)
		label = "-"
	}

	var schedule seed.KeccakSchedule
	if *keyMode {
		schedule = seed.FromKey(input)
	} else {
		schedule = seed.FromPlaintext(input)
	}

	state := keccak.InitStateFromPlaintext(input)
	keccak.Permute(&state, &schedule)

	out := bufio.NewWriter(os.Stdout)
	text := report.FormatSchedule(schedule)
	fmt.Fprint(out, text)
	for i, lane := range state {
		fmt.Fprintf(out, "lane %02d: %016x\n", i, lane)
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *archivePath != "" {
		f, err := os.OpenFile(*archivePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening archive %s: %s\n", *archivePath, err)
			os.Exit(1)
		}
		w, err := archive.NewWriter(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := w.Append(label, text); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := w.Close(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := f.Close(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
