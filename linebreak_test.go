package ggtext

import "testing"

func TestLinebreakData_MaskDisablesReportedKind(t *testing.T) {
	soft := LinebreakData{strength: BreakSoft}
	hard := LinebreakData{strength: BreakHard}

	if got := soft.Mask(MaskHard); got != LinebreakNone {
		t.Errorf("expected Soft masked without MaskSoft to become None, got %+v", got)
	}
	if got := soft.Mask(MaskSoft); got != soft {
		t.Errorf("expected Soft masked with MaskSoft to pass through unchanged, got %+v", got)
	}
	if got := hard.Mask(MaskSoft); got != LinebreakNone {
		t.Errorf("expected Hard masked without MaskHard to become None, got %+v", got)
	}
	if got := hard.Mask(MaskSoft | MaskHard); !got.IsHard() {
		t.Errorf("expected Hard masked with MaskHard to remain Hard")
	}
}

func TestBreakStrength_Ordering(t *testing.T) {
	if !(BreakNone < BreakSoft && BreakSoft < BreakHard) {
		t.Errorf("expected strict ordering None < Soft < Hard")
	}
}

func TestLinebreakNone_IsZeroValue(t *testing.T) {
	if LinebreakNone.Strength() != BreakNone {
		t.Errorf("expected LinebreakNone to carry BreakNone strength")
	}
	if LinebreakNone.IsHard() {
		t.Errorf("expected LinebreakNone to not be hard")
	}
}
