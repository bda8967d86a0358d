package bb

import (
	"cmp"
	"sync"
	"time"
)

type toWorker[S Solution[C], C cmp.Ordered] struct {
	finish  bool
	problem Problem[S, C]
	relaxed S
}

type childResult[S Solution[C], C cmp.Ordered] struct {
	problem  Problem[S, C]
	relaxed  S
	feasible bool
}

type fromWorker[S Solution[C], C cmp.Ordered] struct {
	parentCost C
	children   []childResult[S, C]
}

// worker receives subproblems on inbox and expands each into its
// children, reporting the aggregated result on outbox. It returns
// when it receives a finish message.
func worker[S Solution[C], C cmp.Ordered](inbox <-chan toWorker[S, C], outbox chan<- fromWorker[S, C]) {
	for msg := range inbox {
		if msg.finish {
			return
		}
		children := msg.problem.Subproblems(msg.relaxed)
		report := fromWorker[S, C]{
			parentCost: msg.relaxed.Cost(),
			children:   make([]childResult[S, C], 0, len(children)),
		}
		for _, child := range children {
			childRelaxed := child.SolveRelaxation()
			report.children = append(report.children, childResult[S, C]{
				problem:  child,
				relaxed:  childRelaxed,
				feasible: childRelaxed.IsFeasible(),
			})
		}
		go func(r fromWorker[S, C]) { outbox <- r }(report)
	}
}

// Parallel runs an exact branch-and-bound search over problem using
// numWorkers worker goroutines. It returns the same optimal cost as
// Serial on the same problem; numWorkers == 1 produces an equivalent
// search order to Serial modulo the pool's LIFO-vs-FIFO discipline.
//
// Workers never share mutable state: the driver alone owns the
// lower-bound multiset, the open-subproblem counter and the solving
// status. Communication is exclusively through the per-worker inbox
// channels and the shared outbox channel.
func Parallel[S Solution[C], C cmp.Ordered](problem Problem[S, C], numWorkers int, opts ...ParallelOption[S, C]) (S, bool) {
	if numWorkers < 1 {
		numWorkers = 1
	}

	var cfg parallelConfig[S, C]
	for _, opt := range opts {
		opt(&cfg)
	}
	start := time.Now()

	inboxes := make([]chan toWorker[S, C], numWorkers)
	outbox := make(chan fromWorker[S, C], numWorkers)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		inboxes[i] = make(chan toWorker[S, C])
		wg.Add(1)
		go func(inbox chan toWorker[S, C]) {
			defer wg.Done()
			worker[S, C](inbox, outbox)
		}(inboxes[i])
	}

	status := NewSolvingStatus[S, C]()
	lb := NewLowerBoundMultiset[C]()
	cursor := 0
	openSubproblems := 0

	dispatch := func(p Problem[S, C], relaxed S) {
		inboxes[cursor] <- toWorker[S, C]{problem: p, relaxed: relaxed}
		cursor = (cursor + 1) % numWorkers
		openSubproblems++
	}

	rootRelaxed := problem.SolveRelaxation()
	lb.Register(rootRelaxed.Cost())
	_ = status.SetLowerBound(rootRelaxed.Cost())

	if rootRelaxed.IsFeasible() {
		_ = status.SetBestSolution(rootRelaxed)
	} else {
		dispatch(problem, rootRelaxed)
	}

	for !status.Finished() && openSubproblems > 0 {
		msg := <-outbox
		openSubproblems--
		lb.Discard(msg.parentCost)

		for _, child := range msg.children {
			if child.feasible {
				_ = status.SetBestSolution(child.relaxed)
				continue
			}
			best, hasBest := status.BestSolution()
			if !hasBest || child.relaxed.Cost() < best.Cost() {
				lb.Register(child.relaxed.Cost())
				dispatch(child.problem, child.relaxed)
			}
		}

		if min, ok := lb.Min(); ok {
			_ = status.SetLowerBound(min)
		}

		if cfg.publisher != nil {
			cfg.publisher.Publish(snapshot(status, openSubproblems, start))
		}
	}

	for _, inbox := range inboxes {
		inbox <- toWorker[S, C]{finish: true}
	}
	wg.Wait()

	// Every subproblem still open has exactly one report in flight;
	// receive them so their sending goroutines can exit.
	for ; openSubproblems > 0; openSubproblems-- {
		<-outbox
	}

	return status.ExtractBestSolution()
}

func snapshot[S Solution[C], C cmp.Ordered](status *SolvingStatus[S, C], openSubproblems int, start time.Time) StatusSnapshot[C] {
	snap := StatusSnapshot[C]{OpenSubproblems: openSubproblems, Elapsed: time.Since(start)}
	if lb, ok := status.LowerBound(); ok {
		snap.LowerBound = &lb
	}
	if best, ok := status.BestSolution(); ok {
		cost := best.Cost()
		snap.UpperBound = &cost
	}
	return snap
}
