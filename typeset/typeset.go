// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package typeset runs generated code through a plain TeX engine, to check
// that it typesets and to produce DVI output. This is NOT LaTeX: only
// \frac is defined on top of plain TeX.
package typeset

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/kitsne241/drift/render"
	"star-tex.org/x/tex"
)

var (
	engine *tex.Engine
	mu     sync.Mutex

	preamble = `\nopagenumbers

\def\frac#1#2{{{#1}\over{#2}}}
`
)

// Error is an error of the TeX engine on some code.
type Error struct {

	// Code is the code that failed.
	Code string

	// Log is the terminal output of the engine.
	Log string

	// Err is the error returned by the engine.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("typeset %q: %v", e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// DVI typesets the given code in inline math mode and returns
// the resulting DVI document.
func DVI(code string) ([]byte, error) {
	mu.Lock()
	defer mu.Unlock()

	r := strings.NewReader(fmt.Sprintf(`%s $%s$
\bye
`, preamble, code))
	w := &bytes.Buffer{}
	stdout := &bytes.Buffer{}
	if engine == nil {
		engine = tex.New()
	}
	engine.Stdout = stdout
	if err := engine.Process(w, r); err != nil {
		return nil, &Error{Code: code, Log: stdout.String(), Err: err}
	}
	slog.Debug("typeset", "code", code, "bytes", w.Len())
	return w.Bytes(), nil
}

// Check returns an error if the given code does not typeset.
func Check(code string) error {
	_, err := DVI(code)
	return err
}

// Checked returns a [render.Renderer] that checks code with [Check]
// before rendering it with r.
func Checked(r render.Renderer) render.Renderer {
	return render.RendererFunc(func(code string) (*render.Structure, error) {
		if err := Check(code); err != nil {
			return nil, err
		}
		return r.Render(code)
	})
}
