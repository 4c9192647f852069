// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/rudderlabs/rudder-go-kit/config"
	"github.com/rudderlabs/rudder-go-kit/logger"
	"github.com/rudderlabs/rudder-go-kit/stats"

	"github.com/woozymasta/fastlz"
)

// DefaultList holds every command; files register theirs in init.
var DefaultList []*cli.Command

// StartStats starts the metrics exporter. It is the app's Before hook.
func StartStats(c *cli.Context) error {
	if err := stats.Default.Start(c.Context, stats.DefaultGoRoutineFactory); err != nil {
		return fmt.Errorf("start stats: %w", err)
	}

	return nil
}

// StopStats flushes and stops the metrics exporter. It is the app's After hook.
func StopStats(*cli.Context) error {
	stats.Default.Stop()
	return nil
}

// runner carries what the commands share: configuration, logging and metrics.
type runner struct {
	conf  *config.Config
	log   logger.Logger
	stats stats.Stats
}

func newRunner() *runner {
	return &runner{
		conf:  config.Default,
		log:   logger.NewLogger().Child("fastlz"),
		stats: stats.Default,
	}
}

// level resolves the compression level: the flag wins over FastLZ.level.
func (r *runner) level(flag string) (fastlz.Level, error) {
	if flag != "" {
		return fastlz.ParseLevel(flag)
	}

	return fastlz.Level(r.conf.GetIntVar(0, 1, "FastLZ.level")), nil
}

// maxOutputSize bounds decompression when the caller does not pass --size.
func (r *runner) maxOutputSize() int {
	return int(r.conf.GetInt64Var(1<<30, 1, "FastLZ.maxOutputSize"))
}

// record reports sizes and duration of one operation.
func (r *runner) record(op string, level fastlz.Level, in, out int, start time.Time) {
	tags := stats.Tags{"op": op, "level": level.String()}
	r.stats.NewTaggedStat("fastlz_input_bytes", stats.CountType, tags).Count(in)
	r.stats.NewTaggedStat("fastlz_output_bytes", stats.CountType, tags).Count(out)
	r.stats.NewTaggedStat("fastlz_duration", stats.TimerType, tags).Since(start)
}

// twoArgs returns the input and output paths of c.
func twoArgs(c *cli.Context) (string, string, error) {
	if c.NArg() != 2 {
		return "", "", cli.Exit(fmt.Sprintf("%s needs <input> <output>", c.Command.Name), 2)
	}

	return c.Args().Get(0), c.Args().Get(1), nil
}

// writeFile writes data next to path and renames it into place.
func writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}

	return nil
}
