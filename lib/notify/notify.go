// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Package notify buffers the transient toasts the dashboard shows
// after mutations. Posting never blocks: the queue is a bounded ring
// that drops its oldest entry under pressure, and entries expire on
// their own after a fixed display window. Nothing here persists; a
// missed toast is gone.
package notify

import (
	"sync"
	"time"
)

// Level classifies a notice for styling.
type Level int

const (
	// Info is a neutral status note.
	Info Level = iota
	// Success follows a completed mutation.
	Success
	// Error carries a failure message, verbatim from the server
	// when one was provided.
	Error
)

func (level Level) String() string {
	switch level {
	case Success:
		return "success"
	case Error:
		return "error"
	}
	return "info"
}

// Notice is one queued toast.
type Notice struct {
	Level   Level
	Message string
	Posted  time.Time
}

// DefaultTTL is how long a notice stays visible.
const DefaultTTL = 4 * time.Second

// DefaultCapacity bounds the queue; older notices are dropped first.
const DefaultCapacity = 5

// Queue is a bounded, self-expiring notice buffer. Safe for
// concurrent use. The zero value is not usable; construct with [New].
type Queue struct {
	mu       sync.Mutex
	notices  []Notice
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

// New returns a queue with the default capacity and display window.
func New() *Queue {
	return &Queue{
		capacity: DefaultCapacity,
		ttl:      DefaultTTL,
		now:      time.Now,
	}
}

// WithTTL overrides the display window. Zero or negative keeps the
// default.
func (queue *Queue) WithTTL(ttl time.Duration) *Queue {
	if ttl > 0 {
		queue.ttl = ttl
	}
	return queue
}

// WithClock substitutes the time source. Tests use this to control
// expiry without sleeping.
func (queue *Queue) WithClock(now func() time.Time) *Queue {
	if now != nil {
		queue.now = now
	}
	return queue
}

// Post appends a notice, evicting the oldest when the queue is full.
// Never blocks.
func (queue *Queue) Post(level Level, message string) {
	if message == "" {
		return
	}
	queue.mu.Lock()
	defer queue.mu.Unlock()
	queue.pruneLocked()
	if len(queue.notices) >= queue.capacity {
		queue.notices = queue.notices[1:]
	}
	queue.notices = append(queue.notices, Notice{
		Level:   level,
		Message: message,
		Posted:  queue.now(),
	})
}

// Success posts a success notice.
func (queue *Queue) Success(message string) { queue.Post(Success, message) }

// Failure posts an error notice.
func (queue *Queue) Failure(message string) { queue.Post(Error, message) }

// Active returns the notices still inside their display window,
// oldest first. Expired entries are pruned as a side effect.
func (queue *Queue) Active() []Notice {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	queue.pruneLocked()
	active := make([]Notice, len(queue.notices))
	copy(active, queue.notices)
	return active
}

// Clear drops everything, expired or not.
func (queue *Queue) Clear() {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	queue.notices = nil
}

// NextExpiry reports when the oldest active notice will expire, and
// false when the queue is empty. The dashboard schedules its redraw
// tick from this.
func (queue *Queue) NextExpiry() (time.Time, bool) {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	queue.pruneLocked()
	if len(queue.notices) == 0 {
		return time.Time{}, false
	}
	return queue.notices[0].Posted.Add(queue.ttl), true
}

func (queue *Queue) pruneLocked() {
	cutoff := queue.now().Add(-queue.ttl)
	kept := queue.notices[:0]
	for _, notice := range queue.notices {
		if notice.Posted.After(cutoff) {
			kept = append(kept, notice)
		}
	}
	queue.notices = kept
}
