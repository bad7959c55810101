// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/core/base/errors"
)

// Format is a serialization format for expression files.
type Format int32

const (
	// JSON is the encoding/json format.
	JSON Format = iota

	// YAML is the gopkg.in/yaml.v3 format.
	YAML

	// TOML is the github.com/pelletier/go-toml/v2 format.
	TOML
)

// ErrUnknownFormat is returned for a file extension with no known [Format].
var ErrUnknownFormat = errors.New("unknown expression file format")

// FormatOf returns the [Format] for the extension of the given file name.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return JSON, fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
}

// Open reads a tree from the given file, in the [Format] given by its extension.
func Open(filename string) (*Node, error) {
	f, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	n, err := Read(bufio.NewReader(fp), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return n, nil
}

// Save writes the given tree to the given file, in the [Format]
// given by its extension.
func Save(n *Node, filename string) error {
	f, err := FormatOf(filename)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	if err := Write(&b, n, f); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0666)
}

// Read reads a tree in the given format from the given reader.
func Read(r io.Reader, f Format) (*Node, error) {
	var rec Record
	var err error
	switch f {
	case YAML:
		err = yaml.NewDecoder(r).Decode(&rec)
	case TOML:
		err = toml.NewDecoder(r).Decode(&rec)
	default:
		err = json.NewDecoder(r).Decode(&rec)
	}
	if err != nil {
		return nil, err
	}
	return FromRecord(rec)
}

// Write writes the given tree in the given format to the given writer.
func Write(w io.Writer, n *Node, f Format) error {
	rec := n.Record()
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(rec)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
}

// ReadBytes reads a tree in the given format from the given bytes.
func ReadBytes(b []byte, f Format) (*Node, error) {
	return Read(bytes.NewReader(b), f)
}

// WriteBytes returns the given tree encoded in the given format.
func WriteBytes(n *Node, f Format) ([]byte, error) {
	var b bytes.Buffer
	err := Write(&b, n, f)
	return b.Bytes(), err
}
