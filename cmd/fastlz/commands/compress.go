// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/rudderlabs/rudder-go-kit/logger"
	obskit "github.com/rudderlabs/rudder-observability-kit/go/labels"

	"github.com/woozymasta/fastlz"
)

func init() {
	DefaultList = append(DefaultList, COMPRESS())
}

func COMPRESS() *cli.Command {
	return &cli.Command{
		Name:      "compress",
		Usage:     "compress a file into a raw FastLZ stream",
		ArgsUsage: "<input> <output>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "auto, 1 or 2 (default from FastLZ.level)",
			},
		},
		Action: func(c *cli.Context) error {
			in, out, err := twoArgs(c)
			if err != nil {
				return err
			}

			r := newRunner()
			level, err := r.level(c.String("level"))
			if err != nil {
				return err
			}

			return r.compressFile(in, out, level)
		},
	}
}

func (r *runner) compressFile(in, out string, level fastlz.Level) error {
	start := time.Now()

	src, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}

	cmp, err := fastlz.Compress(src, &fastlz.CompressOptions{Level: level})
	if err != nil {
		r.log.Errorn("compress failed", logger.NewStringField("input", in), obskit.Error(err))
		return fmt.Errorf("compress %s: %w", in, err)
	}

	if err := writeFile(out, cmp); err != nil {
		return err
	}

	if len(cmp) == 0 {
		r.log.Infon("empty input, nothing to compress", logger.NewStringField("input", in))
		return nil
	}

	used, err := fastlz.StreamLevel(cmp)
	if err != nil {
		return fmt.Errorf("compress %s: %w", in, err)
	}

	r.record("compress", used, len(src), len(cmp), start)
	r.log.Infon("compressed",
		logger.NewStringField("input", in),
		logger.NewStringField("level", used.String()),
		logger.NewIntField("inputBytes", int64(len(src))),
		logger.NewIntField("outputBytes", int64(len(cmp))),
	)

	return nil
}
