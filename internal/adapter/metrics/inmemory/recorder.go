package inmemory

import "sync"

type Snapshot struct {
	RequestTotal  uint64            `json:"request_total"`
	PageViews     uint64            `json:"page_views"`
	PageNotFound  uint64            `json:"page_not_found"`
	PageFailure   uint64            `json:"page_failure"`
	ViewsByAction map[string]uint64 `json:"views_by_action"`
}

type Recorder struct {
	mu       sync.Mutex
	views    uint64
	notFound uint64
	failure  uint64
	byAction map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction: map[string]uint64{},
	}
}

func (r *Recorder) RecordView(controller, action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views++
	r.byAction[controller+"/"+action]++
}

func (r *Recorder) RecordNotFound() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notFound++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		PageViews:     r.views,
		PageNotFound:  r.notFound,
		PageFailure:   r.failure,
		RequestTotal:  r.views + r.notFound + r.failure,
		ViewsByAction: make(map[string]uint64, len(r.byAction)),
	}
	for k, v := range r.byAction {
		out.ViewsByAction[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
