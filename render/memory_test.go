package render

import "testing"

func TestMessageHistoryRecordsClears(t *testing.T) {
	m := NewMemoryMessage()
	m.SetMessage("one")
	m.SetMessage("two")
	m.Clear()

	history := m.History()
	if len(history) != 3 {
		t.Fatalf("Expected 3 history entries, got %d", len(history))
	}
	if history[2] != "" {
		t.Errorf("Expected the clear recorded as empty, got %q", history[2])
	}
	if m.State() != StateNeutral {
		t.Errorf("Expected neutral state after clear, got %v", m.State())
	}
}

func TestNoticeIndependentOfMessage(t *testing.T) {
	m := NewMemoryMessage()
	m.SetMessage("greeting")
	m.SetNotice("hold on")

	if m.Message() != "greeting" {
		t.Errorf("Notice disturbed the message: %q", m.Message())
	}
	m.ClearNotice()
	if m.Notice() != "" {
		t.Errorf("Expected cleared notice, got %q", m.Notice())
	}
	if m.Message() != "greeting" {
		t.Errorf("Notice clear disturbed the message: %q", m.Message())
	}
}

func TestContainerSpawnCountAndClear(t *testing.T) {
	s := NewMemoryStage()
	c := s.Memory("burst")

	el := c.Spawn(Particle{Kind: KindConfetti})
	c.Spawn(Particle{Kind: KindShell})
	if c.Count() != 2 {
		t.Fatalf("Expected 2 live, got %d", c.Count())
	}

	el.Remove()
	if c.Count() != 1 {
		t.Fatalf("Expected 1 live after remove, got %d", c.Count())
	}

	c.Clear()
	if c.Count() != 0 {
		t.Fatalf("Expected empty after clear, got %d", c.Count())
	}
	if c.Spawned() != 2 {
		t.Errorf("Clear must not reset lifetime spawn count, got %d", c.Spawned())
	}
	if c.SpawnedOf(KindShell) != 1 {
		t.Errorf("Expected 1 shell spawned, got %d", c.SpawnedOf(KindShell))
	}
}

func TestRemoveAfterClearIsNoOp(t *testing.T) {
	s := NewMemoryStage()
	c := s.Memory("burst")
	el := c.Spawn(Particle{Kind: KindPrimarySpark})

	c.Clear()
	el.Remove() // Stale handle; must not panic

	c.Spawn(Particle{Kind: KindPrimarySpark})
	if c.Count() != 1 {
		t.Errorf("Stale remove affected a later particle: %d live", c.Count())
	}
}

func TestStageReturnsSameContainer(t *testing.T) {
	s := NewMemoryStage()
	a := s.Container("burst")
	a.Spawn(Particle{})

	if got := s.Memory("burst").Count(); got != 1 {
		t.Errorf("Expected the same container on repeat lookup, got %d live", got)
	}
	if len(s.All()) != 1 {
		t.Errorf("Expected 1 container on the stage, got %d", len(s.All()))
	}
}
