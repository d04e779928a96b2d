package clock

import (
	"testing"
	"time"
)

func TestFixed(t *testing.T) {
	c := NewFixed(50)
	if c.Delta() != 20*time.Millisecond {
		t.Fatalf("Delta() = %v, want 20ms", c.Delta())
	}
	for i := uint64(1); i <= 3; i++ {
		s := c.Next()
		if s.Tick != i || s.Elapsed != 20*time.Millisecond {
			t.Errorf("Next() = %+v, want tick %d", s, i)
		}
	}
	if c.Now() != 60*time.Millisecond {
		t.Errorf("Now() = %v, want 60ms", c.Now())
	}
}

func TestFixedDefaultRate(t *testing.T) {
	if d := NewFixed(0).Delta(); d != time.Second/30 {
		t.Errorf("Delta() = %v, want 1/30s", d)
	}
}
