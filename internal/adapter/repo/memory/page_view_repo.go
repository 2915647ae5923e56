package memory

import (
	"context"
	"sync"

	"mvcapp/internal/app/ports"
)

const DefaultPageViewCapacity = 1024

type actionKey struct {
	controller string
	action     string
}

// PageViewRepo keeps page views in process memory. Counts cover every view
// ever appended; only the most recent capacity views are retained.
type PageViewRepo struct {
	mu     sync.RWMutex
	recent []ports.PageView
	next   int
	full   bool
	counts map[actionKey]int64
}

// NewPageViewRepo retains at most capacity views; capacity <= 0 means
// DefaultPageViewCapacity.
func NewPageViewRepo(capacity int) *PageViewRepo {
	if capacity <= 0 {
		capacity = DefaultPageViewCapacity
	}
	return &PageViewRepo{
		recent: make([]ports.PageView, capacity),
		counts: map[actionKey]int64{},
	}
}

func (r *PageViewRepo) Append(_ context.Context, view ports.PageView) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recent[r.next] = view
	r.next = (r.next + 1) % len(r.recent)
	if r.next == 0 {
		r.full = true
	}
	r.counts[actionKey{controller: view.Controller, action: view.Action}]++
	return nil
}

func (r *PageViewRepo) CountByAction(_ context.Context, controller, action string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counts[actionKey{controller: controller, action: action}], nil
}

// Recent returns the retained views, oldest first.
func (r *PageViewRepo) Recent() []ports.PageView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.full {
		return append([]ports.PageView(nil), r.recent[:r.next]...)
	}
	out := make([]ports.PageView, 0, len(r.recent))
	out = append(out, r.recent[r.next:]...)
	return append(out, r.recent[:r.next]...)
}
