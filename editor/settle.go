// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"sync"
	"time"
)

// DefaultSettleDelay is the default delay between a change
// and the settle that renders and reconciles it.
const DefaultSettleDelay = 30 * time.Millisecond

// Settler runs a settle function once after a delay, debouncing
// repeated requests: scheduling while a settle is pending supersedes
// the pending one, so at most one settle is ever in flight.
type Settler struct {

	// Delay is the delay after the last [Settler.Schedule] call before the
	// settle function runs. A negative delay disables the timer, so that
	// pending settles only run through [Settler.Flush].
	Delay time.Duration

	fn func()

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending bool
}

// NewSettler returns a new [Settler] that calls fn to settle.
func NewSettler(delay time.Duration, fn func()) *Settler {
	return &Settler{Delay: delay, fn: fn}
}

// Schedule schedules a settle, superseding any pending one.
func (s *Settler) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimer()
	s.pending = true
	if s.Delay < 0 {
		return
	}
	gen := s.gen
	s.timer = time.AfterFunc(s.Delay, func() {
		s.mu.Lock()
		if gen != s.gen || !s.pending {
			s.mu.Unlock()
			return
		}
		s.pending = false
		s.timer = nil
		s.mu.Unlock()
		s.fn()
	})
}

// Flush runs the pending settle now, if there is one, and returns
// whether it did. It must not be called from the settle function.
func (s *Settler) Flush() bool {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return false
	}
	s.stopTimer()
	s.pending = false
	s.mu.Unlock()
	s.fn()
	return true
}

// Stop cancels the pending settle, if any.
func (s *Settler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimer()
	s.pending = false
}

// Pending returns whether a settle is scheduled and has not run yet.
func (s *Settler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// stopTimer stops the timer and invalidates any callback already
// waiting for the lock. Must be called under the mutex.
func (s *Settler) stopTimer() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
