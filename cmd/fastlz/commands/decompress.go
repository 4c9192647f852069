// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/rudderlabs/rudder-go-kit/logger"
	obskit "github.com/rudderlabs/rudder-observability-kit/go/labels"

	"github.com/woozymasta/fastlz"
)

func init() {
	DefaultList = append(DefaultList, DECOMPRESS())
}

func DECOMPRESS() *cli.Command {
	return &cli.Command{
		Name:      "decompress",
		Usage:     "decompress a raw FastLZ stream",
		ArgsUsage: "<input> <output>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Usage:   "decompressed size; when 0 the buffer grows up to FastLZ.maxOutputSize",
			},
		},
		Action: func(c *cli.Context) error {
			in, out, err := twoArgs(c)
			if err != nil {
				return err
			}

			return newRunner().decompressFile(in, out, c.Int("size"))
		},
	}
}

func (r *runner) decompressFile(in, out string, size int) error {
	start := time.Now()

	src, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}

	if len(src) == 0 {
		r.log.Infon("empty stream, writing empty output", logger.NewStringField("input", in))
		return writeFile(out, nil)
	}

	level, err := fastlz.StreamLevel(src)
	if err != nil {
		return fmt.Errorf("decompress %s: %w", in, err)
	}

	var plain []byte
	if size > 0 {
		plain, err = fastlz.Decompress(src, fastlz.DefaultDecompressOptions(size))
	} else {
		plain, err = decompressGrow(src, r.maxOutputSize())
	}
	if err != nil {
		r.log.Errorn("decompress failed", logger.NewStringField("input", in), obskit.Error(err))
		return fmt.Errorf("decompress %s: %w", in, err)
	}

	if err := writeFile(out, plain); err != nil {
		return err
	}

	r.record("decompress", level, len(src), len(plain), start)
	r.log.Infon("decompressed",
		logger.NewStringField("input", in),
		logger.NewStringField("level", level.String()),
		logger.NewIntField("inputBytes", int64(len(src))),
		logger.NewIntField("outputBytes", int64(len(plain))),
	)

	return nil
}

// decompressGrow decodes src without a known size, doubling the buffer on
// ErrOutputTooSmall until limit.
func decompressGrow(src []byte, limit int) ([]byte, error) {
	size := min(max(4*len(src), 1<<12), limit)

	for {
		dst := make([]byte, size)
		n, err := fastlz.DecompressInto(src, dst)
		if err == nil {
			return dst[:n], nil
		}

		if !errors.Is(err, fastlz.ErrOutputTooSmall) || size >= limit {
			return nil, err
		}

		size = min(2*size, limit)
	}
}
