// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for drift,
// which are read from TOML files.
package config

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"cogentcore.org/core/base/errors"
	"github.com/kitsne241/drift/editor"
	"github.com/kitsne241/drift/render"
	"github.com/kitsne241/drift/typeset"
)

// Config is the main config struct that contains
// all of the configuration options for drift.
type Config struct {

	// Editor has the options of editing sessions.
	Editor Editor `toml:"editor"`

	// Render has the layout metrics of the built in renderer.
	Render Render `toml:"render"`

	// Log has the logging options.
	Log Log `toml:"log"`
}

type Editor struct {

	// SettleDelay is the delay after the last change before the tree is
	// rendered and reconciled. A negative delay only settles on demand.
	SettleDelay Duration `toml:"settle_delay"`

	// TeX is whether code is checked with the TeX engine before it is rendered.
	TeX bool `toml:"tex"`
}

type Render struct {

	// Font is the font used to measure glyphs, one of [render.FontNames].
	Font string `toml:"font"`

	// FontSize is the font size in dots; the basic font ignores it.
	FontSize float64 `toml:"font_size"`

	// Gap is the horizontal space between the units of a run, in dots.
	Gap float32 `toml:"gap"`

	// FracGap is the vertical space between a fraction slot and its bar.
	FracGap float32 `toml:"frac_gap"`

	// FracPad is the horizontal overhang of a fraction bar.
	FracPad float32 `toml:"frac_pad"`

	// CaretWidth is the width of an empty caret.
	CaretWidth float32 `toml:"caret_width"`
}

type Log struct {

	// Level is the minimum level of log messages.
	Level slog.Level `toml:"level"`

	// Color is whether terminal output is colored when supported.
	Color bool `toml:"color"`
}

// Duration is a [time.Duration] written as text, like "30ms".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// New returns a new [Config] with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Defaults sets the default values of all fields.
func (c *Config) Defaults() {
	c.Editor.SettleDelay = Duration(editor.DefaultSettleDelay)
	l := render.NewLayout()
	c.Render = Render{Font: render.FontBasic, FontSize: 10, Gap: l.Gap, FracGap: l.FracGap, FracPad: l.FracPad, CaretWidth: l.CaretWidth}
	c.Log = Log{Level: slog.LevelInfo, Color: true}
}

// Open reads the config from the given TOML file on top of
// the default values. Unknown fields are an error.
func Open(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c := New()
	if err := c.Read(f); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return c, nil
}

// Read reads TOML from the given reader into the config
// and checks that the font can be loaded.
func (c *Config) Read(r io.Reader) error {
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(c); err != nil {
		return err
	}
	_, err := render.NewFace(c.Render.Font, c.Render.FontSize)
	return err
}

// Write writes the config as TOML to the given writer.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// String returns the config as TOML.
func (c *Config) String() string {
	var b bytes.Buffer
	if err := c.Write(&b); err != nil {
		return err.Error()
	}
	return b.String()
}

// Layout returns a renderer layout with the render options.
// A font that can not be loaded is logged and the basic font is used.
func (c *Config) Layout() *render.Layout {
	l := render.NewLayout()
	if face, err := render.NewFace(c.Render.Font, c.Render.FontSize); errors.Log(err) == nil {
		l.Face = face
	}
	l.Gap = c.Render.Gap
	l.FracGap = c.Render.FracGap
	l.FracPad = c.Render.FracPad
	l.CaretWidth = c.Render.CaretWidth
	return l
}

// Renderer returns the renderer given by the options.
func (c *Config) Renderer() render.Renderer {
	if c.Editor.TeX {
		return typeset.Checked(c.Layout())
	}
	return c.Layout()
}
