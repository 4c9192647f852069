// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/woozymasta/fastlz/cmd/fastlz/commands"
)

func main() {
	app := &cli.App{
		Name:     "fastlz",
		Usage:    "compress and decompress raw FastLZ streams",
		Commands: commands.DefaultList,
		Before:   commands.StartStats,
		After:    commands.StopStats,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
