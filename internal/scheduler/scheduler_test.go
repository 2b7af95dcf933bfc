package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfter_RunsWhenDue(t *testing.T) {
	s := New()
	ran := false
	s.After(0.07, func() { ran = true })

	assert.Equal(t, 0, s.Advance(0.05))
	assert.False(t, ran)

	assert.Equal(t, 1, s.Advance(0.07))
	assert.True(t, ran)
	assert.Equal(t, 0, s.Pending())
}

func TestAdvance_OrdersByDueThenFIFO(t *testing.T) {
	s := New()
	var order []string
	s.After(0.2, func() { order = append(order, "late") })
	s.After(0.1, func() { order = append(order, "first") })
	s.After(0.1, func() { order = append(order, "second") })

	s.Advance(1)
	assert.Equal(t, []string{"first", "second", "late"}, order)
}

func TestCancel(t *testing.T) {
	s := New()
	ran := false
	id := s.After(0.1, func() { ran = true })

	require.True(t, s.Cancel(id))
	assert.False(t, s.Cancel(id), "second cancel must report unknown task")

	s.Advance(1)
	assert.False(t, ran)
}

func TestCancel_AfterRunReturnsFalse(t *testing.T) {
	s := New()
	id := s.After(0, func() {})
	s.Advance(0)
	assert.False(t, s.Cancel(id))
}

func TestOverlappingTasksAreIndependent(t *testing.T) {
	s := New()
	hidden := 0
	s.After(0.07, func() { hidden++ })
	s.Advance(0.05)
	s.After(0.07, func() { hidden++ }) // due 0.12

	s.Advance(0.08)
	assert.Equal(t, 1, hidden)
	s.Advance(0.13)
	assert.Equal(t, 2, hidden)
}

func TestAdvance_TimeNeverGoesBack(t *testing.T) {
	s := New()
	s.Advance(5)
	s.Advance(3)
	assert.Equal(t, 5.0, s.Now())

	ran := false
	s.After(0.5, func() { ran = true })
	s.Advance(5.4)
	assert.False(t, ran)
	s.Advance(5.5)
	assert.True(t, ran)
}

func TestAdvance_ZeroDelayScheduledDuringRun(t *testing.T) {
	s := New()
	var chained bool
	s.After(0.1, func() {
		s.After(0, func() { chained = true })
	})
	assert.Equal(t, 2, s.Advance(0.1))
	assert.True(t, chained)
}

func TestClear(t *testing.T) {
	s := New()
	ran := false
	id := s.After(0.1, func() { ran = true })
	s.Clear()

	assert.Equal(t, 0, s.Pending())
	assert.False(t, s.Cancel(id))
	s.Advance(1)
	assert.False(t, ran)
}
