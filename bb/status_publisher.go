package bb

import (
	"cmp"
	"time"
)

// StatusSnapshot is a point-in-time view of a running parallel search.
type StatusSnapshot[C cmp.Ordered] struct {
	LowerBound      *C
	UpperBound      *C
	OpenSubproblems int
	Elapsed         time.Duration
}

// StatusPublisher receives a StatusSnapshot after every batch of
// children the driver absorbs from a worker. Publish must not block
// the driver for long; a slow or unreachable publisher only delays
// the next dispatch round, it never aborts the search.
type StatusPublisher[C cmp.Ordered] interface {
	Publish(StatusSnapshot[C])
}

// ParallelOption configures a Parallel call.
type ParallelOption[S Solution[C], C cmp.Ordered] func(*parallelConfig[S, C])

type parallelConfig[S Solution[C], C cmp.Ordered] struct {
	publisher StatusPublisher[C]
}

// WithStatusPublisher makes Parallel report a StatusSnapshot to pub
// after every message it absorbs from a worker.
func WithStatusPublisher[S Solution[C], C cmp.Ordered](pub StatusPublisher[C]) ParallelOption[S, C] {
	return func(cfg *parallelConfig[S, C]) { cfg.publisher = pub }
}
