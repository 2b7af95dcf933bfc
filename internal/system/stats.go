// internal/system/stats.go
package system

import (
	"fmt"

	"go-raycast-shooter/internal/event"
)

// Stats - счётчики стрельбы для HUD.
type Stats struct {
	Shots       int
	Hits        int // Попадания в мишени
	SurfaceHits int // Попадания во всё остальное
	Kills       int
}

// Accuracy - доля выстрелов, попавших в мишень, от 0 до 1.
func (s Stats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}

// Lines - строки для панели статистики.
func (s Stats) Lines() []string {
	return []string{
		fmt.Sprintf("Shots: %d", s.Shots),
		fmt.Sprintf("Hits: %d", s.Hits),
		fmt.Sprintf("Destroyed: %d", s.Kills),
		fmt.Sprintf("Accuracy: %.0f%%", s.Accuracy()*100),
	}
}

// StatsSystem считает выстрелы, попадания и разрушения по событиям.
type StatsSystem struct {
	stats Stats
}

func NewStatsSystem(eventDispatcher *event.Dispatcher) *StatsSystem {
	s := &StatsSystem{}
	eventDispatcher.Subscribe(event.ShotFired, s)
	eventDispatcher.Subscribe(event.TargetHit, s)
	eventDispatcher.Subscribe(event.TargetDestroyed, s)
	eventDispatcher.Subscribe(event.RangeReset, s)
	return s
}

func (s *StatsSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShotFired:
		s.stats.Shots++
	case event.TargetHit:
		if data, ok := e.Data.(event.HitData); ok && data.Damageable {
			s.stats.Hits++
		} else {
			s.stats.SurfaceHits++
		}
	case event.TargetDestroyed:
		s.stats.Kills++
	case event.RangeReset:
		s.stats = Stats{}
	}
}

func (s *StatsSystem) Stats() Stats {
	return s.stats
}
