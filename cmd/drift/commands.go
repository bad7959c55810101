// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/kitsne241/drift/editor"
	"github.com/kitsne241/drift/expr"
	"github.com/kitsne241/drift/reconcile"
	"github.com/kitsne241/drift/render"
	"github.com/kitsne241/drift/typeset"
)

// load opens the expression file and renders it, leaving the
// tree reconciled with its bounds computed.
func (a *app) load(filename string) (*expr.Node, *render.Structure, error) {
	root, err := expr.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	s, err := reconcile.Render(root, a.cfg.Renderer())
	if err != nil {
		return nil, nil, err
	}
	if root.HasChildren() || root.Kind == expr.Leaf {
		if _, err := root.ComputeBounds(); err != nil {
			return nil, nil, err
		}
	}
	return root, s, nil
}

func (a *app) codeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "code <file>",
		Short: "Print the generated code of an expression file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := expr.Open(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), root.Code())
			return nil
		},
	}
}

func (a *app) renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <file>",
		Short: "Print the rendered structure of an expression file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := a.load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s.String())
			return nil
		},
	}
}

func (a *app) treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the expression tree with the bounds of every node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), root.Dump())
			return nil
		},
	}
}

func (a *app) selectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <file> <x,y> [<x,y>]",
		Short: "Print the smallest node containing one or two points",
		Long: `select prints the smallest node containing the given point, as a click
does, or both of the given points, as a drag from the first to the second does.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			p, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			q := p
			if len(args) == 3 {
				if q, err = parsePoint(args[2]); err != nil {
					return err
				}
			}
			n, err := root.Select(p, q)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.describe(n))
			return nil
		},
	}
}

// describe returns the path, description and code of n.
func (a *app) describe(n *expr.Node) string {
	return fmt.Sprintf("%s %v %s", a.paint(n.Path(), colorPath), n, n.Code())
}

func (a *app) editCmd() *cobra.Command {
	var click, path, keys, out string
	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Replay an editing session on an expression file",
		Long: `edit selects a node by clicking at a point or by path, sends it the
given comma separated keys, deselects and prints the resulting code.
Keys are single characters or ArrowLeft, ArrowRight, Backspace, Enter
and Escape. A key that would produce code that does not reconcile is
undone along with the rest of its interaction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := expr.Open(args[0])
			if err != nil {
				return err
			}
			ed := editor.New(root, a.cfg.Renderer(), -1)
			defer ed.Close()
			if err := ed.Flush(); err != nil {
				return err
			}
			switch {
			case click != "":
				p, err := parsePoint(click)
				if err != nil {
					return err
				}
				if err := ed.PointerDown(p); err != nil {
					return err
				}
				ed.PointerUp()
			case path != "":
				if err := ed.SelectPath(path); err != nil {
					return err
				}
			}
			for _, k := range editor.ParseKeys(keys) {
				if err := ed.KeyDown(k); err != nil {
					errors.Log(err)
					continue
				}
				errors.Log(ed.Flush())
			}
			ed.Blur()
			if err := ed.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ed.Code())
			if out != "" {
				return expr.Save(ed.Root(), out)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&click, "click", "", "select by clicking at `x,y`")
	f.StringVar(&path, "path", "", "select the node at the given `path`, like /[0]/[1]")
	f.StringVarP(&keys, "keys", "k", "", "comma separated `keys` to send")
	f.StringVarP(&out, "out", "o", "", "save the result to this `file`")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Check that the code of expression files typesets with TeX",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, fn := range args {
				root, err := expr.Open(fn)
				if err == nil {
					err = typeset.Check(root.Code())
				}
				if err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), fn, a.paint("FAIL", colorError))
					errs = append(errs, err)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), fn, a.paint("ok", colorOK))
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d of %d files failed: %w", len(errs), len(args), errs[0])
			}
			return nil
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <from> <to>",
		Short: "Convert an expression file to the format of another file name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := expr.Open(args[0])
			if err != nil {
				return err
			}
			return expr.Save(root, args[1])
		},
	}
}

func (a *app) sampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample <file>",
		Short: "Save the sample expression (2a+3)/5 = 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return expr.Save(expr.Sample(), args[0])
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective config as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), a.cfg.String())
			return nil
		},
	}
}

// parsePoint parses a point written as x,y.
func parsePoint(s string) (math32.Vector2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return math32.Vector2{}, fmt.Errorf("point %q is not x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return math32.Vector2{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return math32.Vector2{}, fmt.Errorf("point %q: %w", s, err)
	}
	return math32.Vec2(float32(x), float32(y)), nil
}

// settleDelay returns the configured settle delay.
func (a *app) settleDelay() time.Duration {
	return time.Duration(a.cfg.Editor.SettleDelay)
}
