package sorting

import "github.com/san-kum/sortviz/internal/trace"

// recorder sorts a private working copy and records every operation on it.
type recorder struct {
	a     trace.Sequence
	steps trace.Trace
}

func newRecorder(seq trace.Sequence) *recorder {
	return &recorder{a: seq.Clone(), steps: make(trace.Trace, 0, len(seq)*len(seq))}
}

// greater records a comparison of positions i and j and reports a[i] > a[j].
func (r *recorder) greater(i, j int) bool {
	r.steps = append(r.steps, trace.CompareStep(i, j))
	return r.a[i] > r.a[j]
}

func (r *recorder) compare(i, j int) {
	r.steps = append(r.steps, trace.CompareStep(i, j))
}

func (r *recorder) swap(i, j int) {
	r.steps = append(r.steps, trace.SwapStep(i, j))
	r.a[i], r.a[j] = r.a[j], r.a[i]
}

func (r *recorder) overwrite(i, v int) {
	r.steps = append(r.steps, trace.OverwriteStep(i, v))
	r.a[i] = v
}

func (r *recorder) result() trace.Trace {
	if len(r.steps) == 0 {
		return trace.Trace{}
	}
	return r.steps
}
