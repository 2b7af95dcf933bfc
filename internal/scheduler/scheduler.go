// internal/scheduler/scheduler.go
package scheduler

import "container/heap"

// TaskID - идентификатор отложенной задачи. Ноль никогда не выдаётся.
type TaskID uint64

type task struct {
	id        TaskID
	due       float64
	seq       uint64 // Порядок постановки, чтобы задачи с одинаковым due шли FIFO
	fn        func()
	cancelled bool
	index     int
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler - очередь отложенных задач, которая крутится в игровом цикле.
// Время задаёт хост через Advance, поэтому пауза останавливает и задачи.
// Каждая задача живёт независимо: отмена одной не трогает остальные.
type Scheduler struct {
	now    float64
	nextID TaskID
	seq    uint64
	queue  taskQueue
	byID   map[TaskID]*task
}

// New создаёт пустой планировщик с нулевым временем.
func New() *Scheduler {
	return &Scheduler{
		byID: make(map[TaskID]*task),
	}
}

// Now возвращает время последнего Advance.
func (s *Scheduler) Now() float64 {
	return s.now
}

// After ставит fn на выполнение через delay секунд игрового времени.
// Отрицательная задержка считается нулевой.
func (s *Scheduler) After(delay float64, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.seq++
	t := &task{
		id:  s.nextID,
		due: s.now + delay,
		seq: s.seq,
		fn:  fn,
	}
	heap.Push(&s.queue, t)
	s.byID[t.id] = t
	return t.id
}

// Cancel снимает задачу. Возвращает false, если задача уже выполнена или неизвестна.
func (s *Scheduler) Cancel(id TaskID) bool {
	t, ok := s.byID[id]
	if !ok {
		return false
	}
	t.cancelled = true
	delete(s.byID, id)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Pending - число задач, ожидающих выполнения.
func (s *Scheduler) Pending() int {
	return len(s.byID)
}

// Advance переводит часы на now и выполняет все задачи с due <= now
// в порядке срока. Задачи, поставленные во время выполнения с нулевой
// задержкой, тоже выполнятся в этом же вызове. Время назад не идёт.
func (s *Scheduler) Advance(now float64) int {
	if now > s.now {
		s.now = now
	}
	ran := 0
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.due > s.now {
			break
		}
		heap.Pop(&s.queue)
		delete(s.byID, next.id)
		if next.cancelled || next.fn == nil {
			continue
		}
		next.fn()
		ran++
	}
	return ran
}

// Clear отменяет все задачи, часы не трогает.
func (s *Scheduler) Clear() {
	for _, t := range s.queue {
		t.cancelled = true
	}
	s.queue = s.queue[:0]
	s.byID = make(map[TaskID]*task)
}
