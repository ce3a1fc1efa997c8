package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/numblocks/internal/core"
)

const testRate = beep.SampleRate(8000)

func drain(s beep.Streamer) (samples [][2]float64) {
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		samples = append(samples, buf[:n]...)
		if !ok || n < len(buf) {
			return samples
		}
	}
}

func TestEveryCueHasRecipe(t *testing.T) {
	for _, cue := range core.Cues() {
		if _, ok := Recipes[cue]; !ok {
			t.Errorf("cue %q has no recipe", cue)
		}
		if Build(cue, testRate, 1) == nil {
			t.Errorf("Build(%q) returned nil", cue)
		}
	}
	if Build("bogus", testRate, 1) != nil {
		t.Error("unknown cue should build nothing")
	}
}

func TestCueLengths(t *testing.T) {
	tests := []struct {
		cue  core.Cue
		want time.Duration
	}{
		{core.CueSpawn, 100 * time.Millisecond},
		{core.CueMerge, 200 * time.Millisecond},
		{core.CueTransform, 200 * time.Millisecond},
		{core.CueSplit, 150 * time.Millisecond},
		{core.CueSuccess, 600 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(string(tt.cue), func(t *testing.T) {
			if got := Length(tt.cue); got != tt.want {
				t.Errorf("Length = %v, want %v", got, tt.want)
			}
			samples := drain(Build(tt.cue, testRate, 1))
			if want := testRate.N(tt.want); len(samples) != want {
				t.Errorf("streamed %d samples, want %d", len(samples), want)
			}
		})
	}
}

func TestSamplesStayBelowGain(t *testing.T) {
	for _, cue := range core.Cues() {
		limit := 0.0
		for _, tone := range Recipes[cue] {
			limit += tone.Gain
		}
		for i, s := range drain(Build(cue, testRate, 1)) {
			if math.Abs(s[0]) > limit+1e-9 {
				t.Fatalf("%s sample %d = %f exceeds %f", cue, i, s[0], limit)
			}
		}
	}
}

func TestSweepEndpoints(t *testing.T) {
	v := newVoice(Recipes[core.CueTransform][0], testRate)
	if got := v.freqAt(0); got != 523 {
		t.Errorf("start = %f, want 523", got)
	}
	if got := v.freqAt(0.5); got != 783 {
		t.Errorf("middle = %f, want 783", got)
	}
	if got := v.freqAt(0.999999); math.Abs(got-523) > 1 {
		t.Errorf("end = %f, want ~523", got)
	}

	exp := newVoice(Recipes[core.CueSpawn][0], testRate)
	if got := exp.freqAt(0.5); math.Abs(got-440*math.Sqrt2) > 1e-6 {
		t.Errorf("exponential midpoint = %f, want %f", got, 440*math.Sqrt2)
	}
}

func TestGainDecaysToFloor(t *testing.T) {
	v := newVoice(Recipes[core.CueMerge][0], testRate)
	if got := v.gainAt(0); got != 0.1 {
		t.Errorf("start gain = %f", got)
	}
	if got := v.gainAt(1); math.Abs(got-floorGain) > 1e-9 {
		t.Errorf("end gain = %f, want %f", got, floorGain)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	for _, s := range drain(Build(core.CueSpawn, testRate, 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatal("zero volume should produce silence")
		}
	}
}

func TestDisabledPlayer(t *testing.T) {
	p := New(Config{Enabled: false}, nil)
	defer p.Close()

	if p.Enabled() {
		t.Fatal("disabled player reports enabled")
	}
	p.PlayAll([]core.Cue{core.CueSpawn, core.CueSpawn, core.CueSuccess})
	if got := p.Requested(core.CueSpawn); got != 2 {
		t.Errorf("spawn requested %d times, want 2", got)
	}

	if !p.ToggleMute() || !p.Muted() {
		t.Error("first toggle should mute")
	}
	if p.ToggleMute() {
		t.Error("second toggle should unmute")
	}
}
