package framework

import (
	"sort"
	"sync"
)

// resultSortingQueue releases finished tests in ID order. IDs start at zero and have no gaps, so a
// result that arrives before its predecessors is held back until they have all been released.
type resultSortingQueue struct {
	lastID   int
	deferred []finishedTest
	lock     sync.Mutex
}

type finishedTest struct {
	result TestResult
	output CapturedOutput
}

func newResultSortingQueue() *resultSortingQueue {
	return &resultSortingQueue{lastID: -1}
}

// Accept adds a finished test and returns every test that can now be released, in order.
func (q *resultSortingQueue) Accept(f finishedTest) []finishedTest {
	q.lock.Lock()
	defer q.lock.Unlock()
	if f.result.ID() > q.lastID+1 {
		q.deferred = append(q.deferred, f)
		sort.Slice(q.deferred, func(i, j int) bool { return q.deferred[i].result.ID() < q.deferred[j].result.ID() })
		return nil
	}
	q.lastID = f.result.ID()
	ready := []finishedTest{f}
	for len(q.deferred) > 0 {
		next := q.deferred[0]
		if next.result.ID() != q.lastID+1 {
			break
		}
		q.deferred = q.deferred[1:]
		q.lastID++
		ready = append(ready, next)
	}
	return ready
}
