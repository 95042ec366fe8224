package countdown

import (
	"testing"
	"time"

	"github.com/vincentqiao/medflow/internal/constants"
)

func TestCompute_NoLastDose(t *testing.T) {
	status := Compute(nil, 6, time.Now())

	if status.Display != constants.CountdownNotStarted {
		t.Errorf("expected %q, got %q", constants.CountdownNotStarted, status.Display)
	}
	if status.Percent != 0 {
		t.Errorf("expected 0%%, got %v", status.Percent)
	}
	if status.Started {
		t.Error("countdown should not be started before the first check-in")
	}
	if status.Due {
		t.Error("countdown should not be due before the first check-in")
	}
}

func TestCompute_Halfway(t *testing.T) {
	// 6 hour interval, 3 hours elapsed: 03:00:00 remaining at 50%.
	now := time.UnixMilli(1_000_000_000).Add(3 * time.Hour)
	last := int64(1_000_000_000)

	status := Compute(&last, 6, now)

	if status.Display != "03:00:00" {
		t.Errorf("expected 03:00:00, got %q", status.Display)
	}
	if status.Percent != 50 {
		t.Errorf("expected 50%%, got %v", status.Percent)
	}
	if status.Due {
		t.Error("halfway through the cycle should not be due")
	}
	if !status.Started {
		t.Error("a cycle with a last dose should be started")
	}
}

func TestCompute_ZeroPadding(t *testing.T) {
	// 9 minutes 5 seconds left.
	last := int64(0)
	now := time.UnixMilli(int64(time.Hour/time.Millisecond) - (9*60+5)*1000)

	status := Compute(&last, 1, now)

	if status.Display != "00:09:05" {
		t.Errorf("expected 00:09:05, got %q", status.Display)
	}
}

func TestCompute_TimeUp(t *testing.T) {
	last := int64(0)
	now := time.UnixMilli(7 * int64(time.Hour/time.Millisecond))

	status := Compute(&last, 6, now)

	if status.Display != constants.CountdownTimeUp {
		t.Errorf("expected %q, got %q", constants.CountdownTimeUp, status.Display)
	}
	if status.Percent != 100 {
		t.Errorf("percent past the interval must clamp to 100, got %v", status.Percent)
	}
	if !status.Due {
		t.Error("elapsed cycle should be due")
	}
}

func TestCompute_ExactBoundaryIsDue(t *testing.T) {
	last := int64(0)
	now := time.UnixMilli(6 * int64(time.Hour/time.Millisecond))

	status := Compute(&last, 6, now)

	if !status.Due {
		t.Error("remaining of exactly zero should report due")
	}
	if status.Display != constants.CountdownTimeUp {
		t.Errorf("expected %q, got %q", constants.CountdownTimeUp, status.Display)
	}
}

func TestCompute_FutureLastDoseClampsToZero(t *testing.T) {
	// A last dose in the future (clock skew) must not produce a negative percent.
	last := int64(10_000_000)
	now := time.UnixMilli(0)

	status := Compute(&last, 6, now)

	if status.Percent != 0 {
		t.Errorf("expected percent clamped to 0, got %v", status.Percent)
	}
	if status.Due {
		t.Error("future last dose should not be due")
	}
}

func TestCompute_FractionalInterval(t *testing.T) {
	// 1.5 hours = 90 minutes; 30 minutes elapsed leaves 01:00:00.
	last := int64(0)
	now := time.UnixMilli(30 * int64(time.Minute/time.Millisecond))

	status := Compute(&last, 1.5, now)

	if status.Display != "01:00:00" {
		t.Errorf("expected 01:00:00, got %q", status.Display)
	}
}

func TestCompute_NonPositiveIntervalIsImmediatelyDue(t *testing.T) {
	last := int64(1_000_000)

	status := Compute(&last, 0, time.UnixMilli(1_000_000))

	if !status.Due {
		t.Error("a zero interval should be due immediately")
	}
}
