package inmemory

import "sync"

type commandCounts struct {
	Success   uint64 `json:"success"`
	Rejection uint64 `json:"rejection"`
	Failure   uint64 `json:"failure"`
}

type Snapshot struct {
	Total     uint64                   `json:"total"`
	ByCommand map[string]commandCounts `json:"by_command"`
}

// Recorder counts engine command outcomes. In-process only; scraped via the
// ops endpoint.
type Recorder struct {
	mu    sync.Mutex
	byCmd map[string]*commandCounts
}

func NewRecorder() *Recorder {
	return &Recorder{byCmd: map[string]*commandCounts{}}
}

func (r *Recorder) RecordSuccess(command string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts(command).Success++
}

func (r *Recorder) RecordRejection(command string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts(command).Rejection++
}

func (r *Recorder) RecordFailure(command string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts(command).Failure++
}

func (r *Recorder) counts(command string) *commandCounts {
	c, ok := r.byCmd[command]
	if !ok {
		c = &commandCounts{}
		r.byCmd[command] = c
	}
	return c
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{ByCommand: make(map[string]commandCounts, len(r.byCmd))}
	for name, c := range r.byCmd {
		out.ByCommand[name] = *c
		out.Total += c.Success + c.Rejection + c.Failure
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
