package cycles

import (
	"testing"
	"time"
)

func TestNowIsMonotonicNondecreasing(t *testing.T) {
	prev := Now()
	for i := 0; i < 1000; i++ {
		next := Now()
		if next < prev {
			t.Fatalf("Now() went backwards: %d then %d", prev, next)
		}
		prev = next
	}
}

func TestCalibrateProducesUsableRate(t *testing.T) {
	Calibrate(5 * time.Millisecond)
	if PerSecond() == 0 {
		t.Fatal("PerSecond() == 0 after calibration")
	}
}

func TestToNanosecondsRoundTrip(t *testing.T) {
	Calibrate(5 * time.Millisecond)
	const wantNs = uint64(1_000_000)
	cyc := NsToCycles(wantNs)
	gotNs := ToNanoseconds(cyc)
	// Integer rounding means we only expect this to be close.
	diff := int64(gotNs) - int64(wantNs)
	if diff < -10000 || diff > 10000 {
		t.Fatalf("round trip %d ns -> %d cycles -> %d ns, too far off", wantNs, cyc, gotNs)
	}
}
