// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlerDebounce(t *testing.T) {
	var n atomic.Int32
	done := make(chan struct{}, 10)
	s := NewSettler(20*time.Millisecond, func() {
		n.Add(1)
		done <- struct{}{}
	})
	for range 5 {
		s.Schedule()
	}
	assert.True(t, s.Pending())
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("settle did not run")
	}
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), n.Load())
	assert.False(t, s.Pending())
}

func TestSettlerFlush(t *testing.T) {
	var n atomic.Int32
	s := NewSettler(time.Hour, func() { n.Add(1) })
	assert.False(t, s.Flush())
	s.Schedule()
	s.Schedule()
	require.True(t, s.Flush())
	assert.Equal(t, int32(1), n.Load())
	assert.False(t, s.Flush())
	assert.False(t, s.Pending())
}

func TestSettlerStop(t *testing.T) {
	var n atomic.Int32
	s := NewSettler(5*time.Millisecond, func() { n.Add(1) })
	s.Schedule()
	s.Stop()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), n.Load())
	assert.False(t, s.Flush())
}

func TestSettlerManual(t *testing.T) {
	var n atomic.Int32
	s := NewSettler(-1, func() { n.Add(1) })
	s.Schedule()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), n.Load())
	assert.True(t, s.Pending())
	assert.True(t, s.Flush())
	assert.Equal(t, int32(1), n.Load())
}

func TestSettlerReschedule(t *testing.T) {
	var n atomic.Int32
	var s *Settler
	s = NewSettler(-1, func() {
		if n.Add(1) == 1 {
			s.Schedule()
		}
	})
	s.Schedule()
	for s.Flush() {
	}
	assert.Equal(t, int32(2), n.Load())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []Key{ArrowRight, "x", "+", Escape}, ParseKeys("ArrowRight, x,+,,Escape"))
	assert.True(t, Key("x").IsAlnum())
	assert.True(t, Key("7").IsAlnum())
	assert.False(t, Key("+").IsAlnum())
	assert.True(t, Key("+").IsOperator())
	assert.True(t, Key("é").IsChar())
	assert.False(t, Enter.IsChar())
	assert.False(t, Key("").IsChar())
	assert.Equal(t, "Editing", Editing.String())
	assert.Equal(t, "State(5)", State(5).String())
}
