package utils

import (
	"testing"
	"time"
)

func TestNowIsUTCAndTruncated(t *testing.T) {
	n := Now()
	if n.Location() != time.UTC {
		t.Errorf("expected UTC location, got %v", n.Location())
	}
	if n.Nanosecond()%1000 != 0 {
		t.Errorf("expected microsecond precision, got %d ns", n.Nanosecond())
	}
}

func TestNextAfter(t *testing.T) {
	future := time.Now().Add(time.Hour)
	next := NextAfter(future)
	if !next.After(future) {
		t.Errorf("expected %v to be after %v", next, future)
	}
	if got := next.Sub(future); got != time.Microsecond {
		t.Errorf("expected a one microsecond step, got %v", got)
	}

	past := time.Now().Add(-time.Hour)
	if next := NextAfter(past); next.Sub(past) < time.Minute {
		t.Errorf("expected the current time, got %v", next)
	}
}
