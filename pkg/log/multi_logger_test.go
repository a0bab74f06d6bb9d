package log

import "testing"

type countingLogger struct {
	events []Event
}

func (c *countingLogger) Log(event Event) {
	c.events = append(c.events, event)
}

func TestMultiLoggerFansOut(t *testing.T) {
	a := &countingLogger{}
	b := &countingLogger{}
	m := NewMultiLogger(a, b, NoopLogger{})

	m.Log(Event{RunID: "run-1", Category: CategoryRun})
	m.Log(Event{RunID: "run-1", Category: CategoryBuild, Table: TableB})

	if len(a.events) != 2 || len(b.events) != 2 {
		t.Errorf("fan-out counts = %d/%d, want 2/2", len(a.events), len(b.events))
	}
	if a.events[1].Table != TableB {
		t.Errorf("events[1].Table = %v", a.events[1].Table)
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	m := NewMultiLogger()
	m.Log(Event{RunID: "run-1"})
}
