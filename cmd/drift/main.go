// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command drift drives the structural expression editor from the command
// line: it generates code for expression files, renders and reconciles
// them, selects nodes by position, replays editing sessions, checks code
// with TeX and watches files for changes.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"cogentcore.org/core/base/errors"
	"github.com/kitsne241/drift/config"
	"github.com/kitsne241/drift/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}

// app is the state shared by all commands.
type app struct {
	cfg *config.Config
	out *termenv.Output

	// flags
	configFile string
	verbose    bool
	tex        bool
	delay      time.Duration
	font       string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "drift",
		Short: "Structural editor core for math expressions",
		Long: `drift works on expression trees stored as JSON, YAML or TOML files,
chosen by file extension. Every node has a kind (Sum, Product, Fraction
or Leaf), a symbol for leaves, and children.

Code is generated as plain TeX math, rendered by the built in layout and
reconciled with the tree so that nodes can be selected by position.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "TOML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")
	pf.BoolVar(&a.tex, "tex", false, "check code with TeX before rendering")
	pf.DurationVar(&a.delay, "delay", 0, "settle delay of editing and watching")
	pf.StringVar(&a.font, "font", "", "font of the built in renderer: "+strings.Join(render.FontNames(), ", "))

	root.AddCommand(
		a.codeCmd(),
		a.renderCmd(),
		a.treeCmd(),
		a.selectCmd(),
		a.editCmd(),
		a.checkCmd(),
		a.watchCmd(),
		a.convertCmd(),
		a.sampleCmd(),
		a.configCmd(),
	)
	return root
}

// setup loads the config, applies the flags on top of it
// and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.New()
	if a.configFile != "" {
		c, err := config.Open(a.configFile)
		if err != nil {
			return err
		}
		a.cfg = c
	}
	flags := cmd.Flags()
	if a.verbose {
		a.cfg.Log.Level = slog.LevelDebug
	}
	if flags.Changed("tex") {
		a.cfg.Editor.TeX = a.tex
	}
	if flags.Changed("delay") {
		a.cfg.Editor.SettleDelay = config.Duration(a.delay)
	}
	if flags.Changed("font") {
		if _, err := render.NewFace(a.font, a.cfg.Render.FontSize); err != nil {
			return err
		}
		a.cfg.Render.Font = a.font
	}

	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: a.cfg.Log.Level})
	slog.SetDefault(slog.New(h))

	var opts []termenv.OutputOption
	if !a.cfg.Log.Color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	a.out = termenv.NewOutput(cmd.OutOrStdout(), opts...)
	return nil
}

// paint returns s in the given ANSI color when the output supports it.
func (a *app) paint(s string, color string) string {
	return a.out.String(s).Foreground(a.out.Color(color)).String()
}

const (
	colorPath  = "6"
	colorOK    = "2"
	colorError = "1"
)
