package core

import (
	"reflect"
	"testing"
	"time"

	"github.com/kolkov/arachne/internal/affinity"
)

func TestParseOptions_NoOptions(t *testing.T) {
	opts, remaining, err := ParseOptions([]string{"app-arg"})
	if err != nil {
		t.Fatalf("ParseOptions() error: %v", err)
	}
	if opts.NumCores != defaultNumCores || opts.StackSize != defaultStackSize {
		t.Fatalf("opts = %+v, want defaults", opts)
	}
	if !reflect.DeepEqual(remaining, []string{"app-arg"}) {
		t.Fatalf("remaining = %v, want [app-arg]", remaining)
	}
}

func TestParseOptions_ShortOptions(t *testing.T) {
	opts, remaining, err := ParseOptions([]string{"-c", "3", "-s", "2048"})
	if err != nil {
		t.Fatalf("ParseOptions() error: %v", err)
	}
	if opts.NumCores != 3 {
		t.Errorf("NumCores = %d, want 3", opts.NumCores)
	}
	if opts.StackSize != 2048 {
		t.Errorf("StackSize = %d, want 2048", opts.StackSize)
	}
	if len(remaining) != 0 {
		t.Errorf("remaining = %v, want empty", remaining)
	}
}

func TestParseOptions_LongOptions(t *testing.T) {
	opts, _, err := ParseOptions([]string{"--numCores", "4", "--stackSize", "4096"})
	if err != nil {
		t.Fatalf("ParseOptions() error: %v", err)
	}
	if opts.NumCores != 4 || opts.StackSize != 4096 {
		t.Fatalf("opts = %+v, want {4 4096}", opts)
	}
}

func TestParseOptions_MixedOptionsWithAppArgs(t *testing.T) {
	opts, remaining, err := ParseOptions([]string{"-c", "3", "-s", "2048", "serve", "--port", "8080"})
	if err != nil {
		t.Fatalf("ParseOptions() error: %v", err)
	}
	if opts.NumCores != 3 || opts.StackSize != 2048 {
		t.Fatalf("opts = %+v, want {3 2048}", opts)
	}
	want := []string{"serve", "--port", "8080"}
	if !reflect.DeepEqual(remaining, want) {
		t.Fatalf("remaining = %v, want %v", remaining, want)
	}
}

func TestParseOptions_DoubleDashTerminatesParsing(t *testing.T) {
	opts, remaining, err := ParseOptions([]string{"-c", "3", "--", "-s", "ignored"})
	if err != nil {
		t.Fatalf("ParseOptions() error: %v", err)
	}
	if opts.NumCores != 3 {
		t.Errorf("NumCores = %d, want 3", opts.NumCores)
	}
	want := []string{"-s", "ignored"}
	if !reflect.DeepEqual(remaining, want) {
		t.Fatalf("remaining = %v, want %v", remaining, want)
	}
}

func TestParseOptions_UnknownFlagStopsParsing(t *testing.T) {
	opts, remaining, err := ParseOptions([]string{"-c", "3", "--unknown", "x"})
	if err != nil {
		t.Fatalf("ParseOptions() error: %v", err)
	}
	if opts.NumCores != 3 {
		t.Errorf("NumCores = %d, want 3", opts.NumCores)
	}
	want := []string{"--unknown", "x"}
	if !reflect.DeepEqual(remaining, want) {
		t.Fatalf("remaining = %v, want %v", remaining, want)
	}
}

func TestParseOptions_MissingArgumentErrors(t *testing.T) {
	if _, _, err := ParseOptions([]string{"-c"}); err == nil {
		t.Fatal("expected an error for -c with no argument")
	}
}

func TestParseOptions_NonNumericArgumentErrors(t *testing.T) {
	if _, _, err := ParseOptions([]string{"-s", "not-a-number"}); err == nil {
		t.Fatal("expected an error for a non-numeric -s argument")
	}
}

// TestInit_OversubscribedCoresStillStarts checks that asking for more
// cores than affinity.Available reports is only ever logged, never a
// failure, when StrictAffinity is not requested.
func TestInit_OversubscribedCoresStillStarts(t *testing.T) {
	err := Init(Options{NumCores: affinity.Available() + 4, StackSize: defaultStackSize},
		WithCycleCalibration(time.Microsecond))
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	defer Destroy()

	if got := NumCores(); got != affinity.Available()+4 {
		t.Fatalf("NumCores() = %d, want %d", got, affinity.Available()+4)
	}
}
