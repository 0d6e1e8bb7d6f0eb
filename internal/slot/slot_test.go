package slot

import "testing"

func TestSlotID(t *testing.T) {
	s := Slot{Date: "2025-09-05", Time: "17:30", Court: "Court 1"}
	want := "2025-09-05_17:30_Court 1"
	if got := s.ID(); got != want {
		t.Errorf("Slot.ID() = %q, want %q", got, want)
	}
}

func TestDiff(t *testing.T) {
	s1 := Slot{Date: "2025-09-05", Time: "17:30", Court: "Court 1"}
	s2 := Slot{Date: "2025-09-05", Time: "18:00", Court: "Court 3"}
	s3 := Slot{Date: "2025-09-06", Time: "10:00", Court: "Court 2"}

	t.Run("finds new slots", func(t *testing.T) {
		previous := IDSet([]Slot{s1})
		fresh := Diff(previous, []Slot{s1, s2, s3})

		if len(fresh) != 2 {
			t.Fatalf("expected 2 new slots, got %d", len(fresh))
		}
		if fresh[0].ID() != s2.ID() || fresh[1].ID() != s3.ID() {
			t.Errorf("expected s2 and s3 in input order, got %+v", fresh)
		}
	})

	t.Run("nil previous set means everything is new", func(t *testing.T) {
		fresh := Diff(nil, []Slot{s1, s2})
		if len(fresh) != 2 {
			t.Errorf("expected 2 new slots, got %d", len(fresh))
		}
	})

	t.Run("identical runs produce no new slots", func(t *testing.T) {
		current := []Slot{s1, s2, s3}
		previous := IDSet(current)
		if fresh := Diff(previous, current); len(fresh) != 0 {
			t.Errorf("expected 0 new slots, got %d", len(fresh))
		}
	})
}

func TestIDs(t *testing.T) {
	slots := []Slot{
		{Date: "2025-09-05", Time: "17:30", Court: "Court 1"},
		{Date: "2025-09-06", Time: "8pm", Court: "Court 4"},
	}

	ids := IDs(slots)
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(ids))
	}
	if ids[0] != "2025-09-05_17:30_Court 1" || ids[1] != "2025-09-06_8pm_Court 4" {
		t.Errorf("unexpected ids: %v", ids)
	}
}
