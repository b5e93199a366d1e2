package cpu

import (
	"slices"
)

type Queue struct {
	Data []int
}

func (q *Queue) Reset() {
	if len(q.Data) > 0 {
		q.Data = q.Data[:0]
	}
}

func (q *Queue) Push(value int) {
	q.Data = append(q.Data, value)
}

func (q *Queue) Pop() (value int, ok bool) {
	value, ok = q.Peek()
	if ok {
		q.Data = q.Data[1:]
	}
	return
}

func (q *Queue) Peek() (value int, ok bool) {
	if q.Empty() {
		return
	}

	return q.Data[0], true
}

func (q *Queue) Len() int {
	return len(q.Data)
}

func (q *Queue) Empty() bool {
	return len(q.Data) == 0
}

func (q *Queue) Values() []int {
	return slices.Clone(q.Data)
}

func (q *Queue) Replace(values []int) {
	q.Data = slices.Clone(values)
}
