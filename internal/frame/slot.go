// Package frame coalesces redraw requests into a single pending frame.
package frame

import "time"

// DefaultInterval approximates one display refresh.
const DefaultInterval = 16 * time.Millisecond

// Token identifies one scheduled frame. The zero Token is never issued.
type Token uint64

// Slot holds at most one pending frame. A new request replaces the pending
// one instead of queueing behind it, so any burst of requests made before a
// frame fires runs the work once.
//
// Slot is not safe for concurrent use; it is owned by a single event loop.
type Slot struct {
	last      Token
	pending   Token
	fired     int
	coalesced int
}

// Request cancels any pending frame and schedules a new one.
func (s *Slot) Request() Token {
	if s.pending != 0 {
		s.coalesced++
	}
	s.last++
	s.pending = s.last
	return s.pending
}

// Take claims the frame for t. It returns false when t was superseded,
// cancelled or already taken.
func (s *Slot) Take(t Token) bool {
	if t == 0 || t != s.pending {
		return false
	}
	s.pending = 0
	s.fired++
	return true
}

// Cancel drops the pending frame, reporting whether one existed.
func (s *Slot) Cancel() bool {
	if s.pending == 0 {
		return false
	}
	s.pending = 0
	return true
}

// Pending reports whether a frame is scheduled.
func (s *Slot) Pending() bool {
	return s.pending != 0
}

// Fired returns how many frames ran.
func (s *Slot) Fired() int {
	return s.fired
}

// Coalesced returns how many requests were replaced before firing.
func (s *Slot) Coalesced() int {
	return s.coalesced
}
