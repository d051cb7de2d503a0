package coordinator

import "time"

// Report is what a run observed once every worker has been joined.
type Report struct {
	// Rearms counts the coordinator's writes of Active, the initial one included.
	Rearms uint64
	// WorkerTotal is the sum of the counts returned by the workers.
	WorkerTotal uint64
	// PerWorker holds each worker's count, indexed by id-1.
	PerWorker []uint64
	Elapsed   time.Duration
}

// Diverged reports whether the workers claimed a different number of Active
// periods than the coordinator issued.
func (r Report) Diverged() bool {
	return r.Rearms != r.WorkerTotal
}
