// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alexeyco/simpletable"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
	"github.com/urfave/cli/v2"

	"github.com/woozymasta/fastlz"
)

func init() {
	DefaultList = append(DefaultList, RATIO())
}

func RATIO() *cli.Command {
	return &cli.Command{
		Name:      "ratio",
		Usage:     "compare compressed sizes of fastlz levels against other block codecs",
		ArgsUsage: "<file>...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("ratio needs at least one file", 2)
			}

			return newRunner().ratio(c.App.Writer, c.Args().Slice())
		},
	}
}

// ratioCodecs lists the block codecs compared by the ratio command, in column order.
var ratioCodecs = []struct {
	name   string
	encode func(src []byte) (int, error)
}{
	{"fastlz-1", fastlzSize(fastlz.Level1)},
	{"fastlz-2", fastlzSize(fastlz.Level2)},
	{"snappy", func(src []byte) (int, error) { return len(snappy.Encode(nil, src)), nil }},
	{"s2", func(src []byte) (int, error) { return len(s2.Encode(nil, src)), nil }},
	{"lz4", func(src []byte) (int, error) {
		var c lz4.Compressor
		dst := make([]byte, lz4.CompressBlockBound(len(src)))
		n, err := c.CompressBlock(src, dst)
		if err == nil && n == 0 {
			// Incompressible: lz4 reports 0 and the data would be stored raw.
			n = len(src)
		}
		return n, err
	}},
}

func fastlzSize(level fastlz.Level) func(src []byte) (int, error) {
	return func(src []byte) (int, error) {
		return fastlz.CompressLevel(level, src, make([]byte, fastlz.CompressBound(len(src))))
	}
}

func (r *runner) ratio(w io.Writer, files []string) error {
	table := simpletable.New()
	table.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignCenter, Text: "File"},
			{Align: simpletable.AlignCenter, Text: "Size"},
		},
	}
	for _, codec := range ratioCodecs {
		table.Header.Cells = append(table.Header.Cells, &simpletable.Cell{Align: simpletable.AlignCenter, Text: codec.name})
	}

	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}

		row := []*simpletable.Cell{
			{Align: simpletable.AlignLeft, Text: file},
			{Align: simpletable.AlignRight, Text: strconv.Itoa(len(src))},
		}
		for _, codec := range ratioCodecs {
			n, err := codec.encode(src)
			if err != nil {
				return fmt.Errorf("%s %s: %w", codec.name, file, err)
			}
			row = append(row, &simpletable.Cell{Align: simpletable.AlignRight, Text: percent(n, len(src))})
		}

		table.Body.Cells = append(table.Body.Cells, row)
	}

	table.SetStyle(simpletable.StyleCompactLite)
	_, err := fmt.Fprintln(w, table.String())
	return err
}

func percent(n, of int) string {
	if of == 0 {
		return "-"
	}

	return fmt.Sprintf("%.2f%%", 100*float64(n)/float64(of))
}
