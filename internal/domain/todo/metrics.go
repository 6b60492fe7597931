package todo

import (
	"maps"
	"math"
)

// Metrics is the completion-time snapshot. All values are whole minutes.
// ByPriority always carries an entry for every priority.
type Metrics struct {
	AverageTime int64
	ByPriority  map[Priority]int64
}

// ZeroMetrics returns the snapshot used when nothing has been completed.
func ZeroMetrics() Metrics {
	byPriority := make(map[Priority]int64, len(Priorities()))
	for _, p := range Priorities() {
		byPriority[p] = 0
	}
	return Metrics{ByPriority: byPriority}
}

// Clone returns a deep copy so callers cannot mutate a shared snapshot.
func (m Metrics) Clone() Metrics {
	return Metrics{AverageTime: m.AverageTime, ByPriority: maps.Clone(m.ByPriority)}
}

// CompletionMinutes returns DoneDate - CreationDate in fractional minutes.
// ok is false unless the todo is done and both timestamps are set.
// Negative durations are returned as-is.
func CompletionMinutes(t *Todo) (minutes float64, ok bool) {
	if !t.Done || t.DoneDate == nil || t.CreationDate.IsZero() {
		return 0, false
	}
	ms := t.DoneDate.Sub(t.CreationDate).Milliseconds()
	return float64(ms) / 60000, true
}

// ComputeMetrics derives the snapshot from a full set of todos. Means are
// rounded half away from zero.
func ComputeMetrics(todos []Todo) Metrics {
	type acc struct {
		sum   float64
		count int
	}

	var total acc
	perPriority := make(map[Priority]*acc, len(Priorities()))

	for i := range todos {
		minutes, ok := CompletionMinutes(&todos[i])
		if !ok {
			continue
		}
		total.sum += minutes
		total.count++

		a := perPriority[todos[i].Priority]
		if a == nil {
			a = &acc{}
			perPriority[todos[i].Priority] = a
		}
		a.sum += minutes
		a.count++
	}

	m := ZeroMetrics()
	if total.count == 0 {
		return m
	}

	m.AverageTime = roundMinutes(total.sum / float64(total.count))
	for p, a := range perPriority {
		if !p.IsValid() {
			continue
		}
		m.ByPriority[p] = roundMinutes(a.sum / float64(a.count))
	}
	return m
}

func roundMinutes(v float64) int64 {
	return int64(math.Round(v))
}
