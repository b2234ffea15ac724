package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeFinishedTest(id int) finishedTest {
	r, _ := NewTestResult(id, true, nil, nil, 0, "")
	return finishedTest{result: r}
}

func acceptTestItems(q *resultSortingQueue, ids ...int) []int {
	var released []int
	for _, id := range ids {
		for _, f := range q.Accept(fakeFinishedTest(id)) {
			released = append(released, f.result.ID())
		}
	}
	return released
}

func TestResultSortingQueueWithResultsInOrder(t *testing.T) {
	q := newResultSortingQueue()
	released := acceptTestItems(q, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, released)
}

func TestResultSortingQueueWithResultsOutOfOrder(t *testing.T) {
	q := newResultSortingQueue()

	assert.Empty(t, acceptTestItems(q, 2))
	assert.Empty(t, acceptTestItems(q, 1))
	assert.Empty(t, acceptTestItems(q, 5))
	assert.Equal(t, []int{0, 1, 2}, acceptTestItems(q, 0))
	assert.Empty(t, acceptTestItems(q, 4))
	assert.Equal(t, []int{3, 4, 5}, acceptTestItems(q, 3))
	assert.Equal(t, []int{6}, acceptTestItems(q, 6))
}
