// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package editor provides [Editor], the edit state machine that turns
// pointer and key input into selections and mutations of an expression
// tree, and keeps the tree reconciled with its rendered structure.
package editor

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/kitsne241/drift/expr"
	"github.com/kitsne241/drift/reconcile"
	"github.com/kitsne241/drift/render"
)

// ErrUnsettled is returned for pointer input before the geometry
// of the current tree has been settled.
var ErrUnsettled = errors.New("geometry is not settled")

// ErrNoNode is returned when selecting a path with no node.
var ErrNoNode = errors.New("no node at path")

// Editor is an interactive editing session on one expression tree.
//
// Every input handler runs to completion under the editor mutex.
// A handler that changes the tree schedules one settle on the [Settler],
// which renders the new code with the [render.Renderer], reconciles the
// result and aggregates bounds. If a settle fails after a change, the
// tree, selection and caret are restored to their state before the
// first change since the last successful settle.
type Editor struct {

	// ID identifies the session in log messages.
	ID uuid.UUID

	// Logger is the session logger, carrying the session ID.
	Logger *slog.Logger

	// OnSettle is called, if set, after every settle with its result.
	// It is called without the editor lock held.
	OnSettle func(err error)

	renderer render.Renderer
	settler  *Settler

	mu        sync.Mutex
	root      *expr.Node
	selected  *expr.Node
	caret     *expr.Node
	dragStart math32.Vector2
	dragging  bool

	// settled is whether the geometry of root is current.
	settled bool

	// dirty is whether root changed since the last successful settle.
	dirty bool

	// committed is the state restored after a failed settle.
	committed snapshot

	structure *render.Structure
	lastErr   error
}

// snapshot is a copy of the tree with the index paths of the selection
// and the caret; a nil path means none.
type snapshot struct {
	root     *expr.Node
	selected []int
	caret    []int
}

// New returns a new [Editor] on the given tree, rendering with the given
// renderer. A nil root starts with an empty [expr.Sum]. The first settle
// is scheduled with the given delay; see [Settler.Delay].
func New(root *expr.Node, r render.Renderer, delay time.Duration) *Editor {
	if root == nil {
		root = expr.NewSum()
	}
	ed := &Editor{ID: uuid.New(), renderer: r, root: root}
	ed.Logger = slog.Default().With("session", ed.ID.String())
	ed.settler = NewSettler(delay, ed.settle)
	ed.committed = ed.snapshot()
	ed.settler.Schedule()
	return ed
}

// Root returns the root of the tree.
func (ed *Editor) Root() *expr.Node {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.root
}

// Selected returns the selected node, or nil.
func (ed *Editor) Selected() *expr.Node {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.selected
}

// Caret returns the caret node while editing, or nil.
// The caret may carry a pending symbol.
func (ed *Editor) Caret() *expr.Node {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.caret
}

// State returns the current [State].
func (ed *Editor) State() State {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.state()
}

func (ed *Editor) state() State {
	switch {
	case ed.caret != nil:
		return Editing
	case ed.selected != nil:
		return Selected
	}
	return Idle
}

// Code returns the generated code of the tree.
func (ed *Editor) Code() string {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.root.Code()
}

// Structure returns the rendered structure of the last successful settle.
func (ed *Editor) Structure() *render.Structure {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.structure
}

// Settled returns whether the geometry of the current tree is settled.
func (ed *Editor) Settled() bool {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.settled
}

// Settler returns the settler that schedules settles.
func (ed *Editor) Settler() *Settler {
	return ed.settler
}

// Flush runs pending settles until none is left, including the
// re-render of a restored tree, and returns the first error.
func (ed *Editor) Flush() error {
	var first error
	for ed.settler.Flush() {
		ed.mu.Lock()
		err := ed.lastErr
		ed.mu.Unlock()
		if first == nil {
			first = err
		}
	}
	return first
}

// Close cancels any pending settle.
func (ed *Editor) Close() {
	ed.settler.Stop()
}

// Load replaces the tree with the given one, clearing the selection,
// and schedules a settle. The new tree is committed as is.
func (ed *Editor) Load(root *expr.Node) {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.root = root
	ed.selected, ed.caret = nil, nil
	ed.dragging = false
	ed.settled, ed.dirty = false, false
	ed.committed = ed.snapshot()
	ed.settler.Schedule()
}

// SelectPath selects the node at the given path, as given by
// [expr.Node.Path], leaving any caret first.
func (ed *Editor) SelectPath(path string) error {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.begin()
	ed.deselect()
	n := ed.root.FindPath(path)
	if n == nil {
		return fmt.Errorf("%w %q", ErrNoNode, path)
	}
	ed.selected = n
	return nil
}

// Pointer input:

// PointerDown selects the smallest node at the given point and starts
// a drag from it. It is ignored while editing.
func (ed *Editor) PointerDown(p math32.Vector2) error {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	if ed.caret != nil {
		return nil
	}
	if !ed.settled {
		return ErrUnsettled
	}
	n, err := ed.root.Select(p, p)
	if err != nil {
		return err
	}
	ed.selected = n
	ed.dragStart = p
	ed.dragging = true
	ed.Logger.Debug("pointer down", "selected", n.Path())
	return nil
}

// PointerMove selects the smallest node containing both the drag start
// and the given point, while dragging.
func (ed *Editor) PointerMove(p math32.Vector2) error {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	if !ed.dragging {
		return nil
	}
	if !ed.settled {
		return ErrUnsettled
	}
	n, err := ed.root.Select(ed.dragStart, p)
	if err != nil {
		return err
	}
	ed.selected = n
	return nil
}

// PointerUp ends a drag.
func (ed *Editor) PointerUp() {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.dragging = false
}

// Blur deselects, as when the formula loses focus.
func (ed *Editor) Blur() {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.begin()
	ed.deselect()
}

// Key input:

// KeyDown handles the given key. Keys are ignored when nothing is
// selected. A rejected key returns an error wrapping
// [expr.ErrInvalidMutation] and changes nothing. While a fraction slot
// is left empty, the only key that can start editing is Backspace on
// the slot or one of its ancestors, so the tree never holds two carets.
func (ed *Editor) KeyDown(k Key) error {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	st := ed.state()
	if st == Idle {
		return nil
	}
	ed.begin()
	var err error
	if st == Selected {
		err = ed.keySelected(k)
	} else {
		err = ed.keyEditing(k)
	}
	if err != nil {
		return err
	}
	ed.Logger.Debug("key", "key", k, "from", st, "to", ed.state())
	return nil
}

// keySelected handles a key in the [Selected] state.
func (ed *Editor) keySelected(k Key) error {
	sel := ed.selected
	switch k {
	case ArrowLeft, ArrowRight, Enter, Backspace:
		// an empty fraction slot left by deselect is the only caret
		// until it is filled or replaced
		old := expr.FindCaret(ed.root)
		if old != nil && !(k == Backspace && sel.IsAncestorOf(old)) {
			return fmt.Errorf("%w: the empty slot at %s must be filled first", expr.ErrInvalidMutation, old.Path())
		}
	}
	switch k {
	case ArrowLeft, ArrowRight:
		after := k == ArrowRight
		caret := expr.NewCaret()
		p, sib := sel.Parent(), sel
		if p == nil {
			if sel.Kind == expr.Leaf {
				ed.root = expr.NewSum(sel)
			}
			p, sib = ed.root, nil
		}
		owner, err := placeCaret(p, sib, after, caret)
		if err != nil {
			return err
		}
		ed.edit(owner, caret)
	case Enter:
		if sel.Kind == expr.Leaf {
			return fmt.Errorf("%w: %v can not hold a caret", expr.ErrInvalidMutation, sel)
		}
		caret := expr.NewCaret()
		owner, err := placeCaret(sel, nil, false, caret)
		if err != nil {
			return err
		}
		ed.edit(owner, caret)
	case Backspace:
		caret := expr.NewCaret()
		p := sel.Parent()
		switch {
		case p != nil:
			if err := p.ReplaceChild(sel, caret); err != nil {
				return err
			}
		case sel.Kind.IsContainer():
			if err := sel.ReplaceChildren(caret); err != nil {
				return err
			}
			p = sel
		default:
			ed.root = expr.NewSum(caret)
			p = ed.root
		}
		ed.edit(p, caret)
	case Escape:
		ed.deselect()
	}
	return nil
}

// edit enters the [Editing] state with the given caret under owner.
func (ed *Editor) edit(owner, caret *expr.Node) {
	ed.selected = owner
	ed.caret = caret
	ed.changed()
}

// keyEditing handles a key in the [Editing] state.
func (ed *Editor) keyEditing(k Key) error {
	c := ed.caret
	p := c.Parent()
	switch {
	case k == Escape:
		ed.deselect()
		return nil
	case k == ArrowLeft || k == ArrowRight:
		if p.Kind == expr.Fraction {
			return nil
		}
		committed := c.Symbol != ""
		if err := ed.commit(); err != nil {
			return err
		}
		p = c.Parent()
		idx := c.IndexInParent()
		to := idx - 1
		if k == ArrowRight {
			to = idx + 1
		}
		to = min(max(to, 0), p.NumChildren()-1)
		if to == idx && !committed {
			return nil
		}
		if err := p.MoveChild(c, to); err != nil {
			return err
		}
	case k == Backspace:
		if c.Symbol != "" {
			if err := c.SetSymbol(""); err != nil {
				return err
			}
			break
		}
		idx := c.IndexInParent()
		if idx == 0 || p.Kind == expr.Fraction {
			return nil
		}
		if err := p.RemoveChild(p.Child(idx - 1)); err != nil {
			return err
		}
	case k.IsAlnum() || k.IsOperator():
		if err := ed.typeChar(string(k)); err != nil {
			return err
		}
	default:
		return nil
	}
	ed.selected = ed.caret.Parent()
	ed.changed()
	return nil
}

// typeChar types the given character at the caret.
func (ed *Editor) typeChar(ch string) error {
	c := ed.caret
	p := c.Parent()
	op := expr.IsOperator(ch)
	switch {
	case op && p.Kind == expr.Product && !p.IsRoot() && p.Parent().Kind == expr.Sum:
		if err := ed.commit(); err != nil {
			return err
		}
		if err := splitProduct(p, c); err != nil {
			return err
		}
		return c.SetSymbol(ch)
	case !op && p.Kind == expr.Product:
		if err := ed.commit(); err != nil {
			return err
		}
		idx := c.IndexInParent()
		if err := p.InsertChild(expr.NewLeaf(ch), idx+1); err != nil {
			return err
		}
		return p.MoveChild(c, idx+1)
	case !op && c.Symbol != "" && !expr.IsOperator(c.Symbol):
		next := expr.NewCaret()
		if err := c.PromoteToProduct(expr.NewLeaf(c.Symbol), expr.NewLeaf(ch), next); err != nil {
			return err
		}
		ed.caret = next
		return nil
	case c.Symbol != "":
		if err := ed.commit(); err != nil {
			return err
		}
	}
	return c.SetSymbol(ch)
}

// commit turns the pending symbol of the caret, if any, into a leaf
// left of the caret. A caret that is a fraction slot is first wrapped
// in a [expr.Product].
func (ed *Editor) commit() error {
	c := ed.caret
	if c.Symbol == "" {
		return nil
	}
	if c.Parent().Kind == expr.Fraction {
		if _, err := wrap(c); err != nil {
			return err
		}
	}
	leaf := expr.NewLeaf(c.Symbol)
	if err := c.Parent().InsertChild(leaf, c.IndexInParent()); err != nil {
		return err
	}
	return c.SetSymbol("")
}

// deselect leaves the [Editing] and [Selected] states. An empty caret is
// removed, along with any container it leaves empty, unless it fills
// a fraction slot.
func (ed *Editor) deselect() {
	c := ed.caret
	ed.selected, ed.caret = nil, nil
	ed.dragging = false
	if c == nil || !c.IsCaret() {
		return
	}
	if fillsSlot(c) {
		return
	}
	p := c.Parent()
	errors.Log(p.RemoveChild(c))
	for p.NumChildren() == 0 && !p.IsRoot() {
		gp := p.Parent()
		errors.Log(gp.RemoveChild(p))
		p = gp
	}
	ed.changed()
}

// Settling:

// begin records the committed snapshot before the first change
// since the last successful settle.
func (ed *Editor) begin() {
	if !ed.dirty {
		ed.committed = ed.snapshot()
	}
}

// changed marks the tree as changed and schedules a settle.
func (ed *Editor) changed() {
	ed.dirty = true
	ed.settled = false
	ed.settler.Schedule()
}

func (ed *Editor) snapshot() snapshot {
	s := snapshot{root: ed.root.Clone()}
	if ed.selected != nil {
		s.selected = ed.selected.IndexPath()
	}
	if ed.caret != nil {
		s.caret = ed.caret.IndexPath()
	}
	return s
}

func (ed *Editor) restore() {
	s := ed.committed
	ed.root = s.root.Clone()
	ed.selected, ed.caret = nil, nil
	if s.selected != nil {
		ed.selected = ed.root.NodeAt(s.selected)
	}
	if s.caret != nil {
		ed.caret = ed.root.NodeAt(s.caret)
	}
	ed.dragging = false
}

// settle renders and reconciles the current tree. It is the settle
// function of the [Settler].
func (ed *Editor) settle() {
	ed.mu.Lock()
	err := ed.settleLocked()
	fn := ed.OnSettle
	ed.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}

func (ed *Editor) settleLocked() error {
	err := ed.renderTree()
	ed.lastErr = err
	if err == nil {
		ed.settled = true
		ed.dirty = false
		ed.committed = ed.snapshot()
		ed.Logger.Debug("settled", "code", ed.root.Code())
		return nil
	}
	ed.settled = false
	ed.Logger.Error("settle failed", "err", err, "code", ed.root.Code())
	if ed.dirty {
		ed.restore()
		ed.dirty = false
		ed.settler.Schedule()
	}
	return err
}

func (ed *Editor) renderTree() error {
	if ed.renderer == nil {
		return errors.New("editor has no renderer")
	}
	s, err := reconcile.Render(ed.root, ed.renderer)
	if err != nil {
		return err
	}
	if ed.root.HasChildren() || ed.root.Kind == expr.Leaf {
		if _, err := ed.root.ComputeBounds(); err != nil {
			ed.root.ClearGeometry()
			return err
		}
	}
	ed.structure = s
	return nil
}
