package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/numblocks/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
)

// Curve is how a frequency sweep moves between its points.
type Curve int

const (
	CurveExp Curve = iota
	CurveLinear
)

// floorGain is where every envelope ends.
const floorGain = 0.01

// Tone is one synthesised note. Freqs are evenly spaced over Duration;
// a single entry holds a steady pitch.
type Tone struct {
	Wave     Wave
	Freqs    []float64
	Curve    Curve
	Duration time.Duration
	Gain     float64       // Starting gain, decays exponentially to floorGain
	Delay    time.Duration // Silence before the note
}

// Recipes maps each cue to its notes.
var Recipes = map[core.Cue][]Tone{
	core.CueSpawn: {
		{Wave: WaveSine, Freqs: []float64{440, 880}, Curve: CurveExp, Duration: 100 * time.Millisecond, Gain: 0.1},
	},
	core.CueMerge: {
		{Wave: WaveTriangle, Freqs: []float64{330, 660}, Curve: CurveExp, Duration: 200 * time.Millisecond, Gain: 0.1},
	},
	core.CueTransform: {
		{Wave: WaveSine, Freqs: []float64{523, 783, 523}, Curve: CurveLinear, Duration: 200 * time.Millisecond, Gain: 0.1},
	},
	core.CueSplit: {
		{Wave: WaveSine, Freqs: []float64{660, 220}, Curve: CurveExp, Duration: 150 * time.Millisecond, Gain: 0.1},
	},
	core.CueSuccess: arpeggio(100*time.Millisecond, 300*time.Millisecond, 0.05, 523.25, 659.25, 783.99, 1046.50),
}

func arpeggio(step, length time.Duration, gain float64, freqs ...float64) []Tone {
	tones := make([]Tone, len(freqs))
	for i, f := range freqs {
		tones[i] = Tone{
			Wave:     WaveSine,
			Freqs:    []float64{f},
			Duration: length,
			Gain:     gain,
			Delay:    time.Duration(i) * step,
		}
	}
	return tones
}

// voice renders a Tone sample by sample.
type voice struct {
	tone     Tone
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

func newVoice(t Tone, rate beep.SampleRate) *voice {
	return &voice{tone: t, rate: rate, total: rate.N(t.Duration)}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.position >= v.total {
			return i, i > 0
		}
		p := float64(v.position) / float64(v.total)

		val := v.sample() * v.gainAt(p)
		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.freqAt(p) / float64(v.rate)
		v.phase -= math.Floor(v.phase)
		v.position++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

func (v *voice) sample() float64 {
	switch v.tone.Wave {
	case WaveTriangle:
		return 1 - 4*math.Abs(v.phase-0.5)
	default:
		return math.Sin(2 * math.Pi * v.phase)
	}
}

// freqAt returns the sweep frequency at progress p in [0, 1).
func (v *voice) freqAt(p float64) float64 {
	fs := v.tone.Freqs
	if len(fs) == 0 {
		return 0
	}
	if len(fs) == 1 {
		return fs[0]
	}
	seg := p * float64(len(fs)-1)
	i := min(int(seg), len(fs)-2)
	local := seg - float64(i)
	from, to := fs[i], fs[i+1]
	if v.tone.Curve == CurveExp && from > 0 && to > 0 {
		return from * math.Pow(to/from, local)
	}
	return from + (to-from)*local
}

func (v *voice) gainAt(p float64) float64 {
	g := v.tone.Gain
	if g <= floorGain {
		return g
	}
	return g * math.Pow(floorGain/g, p)
}

// Build returns the streamer for a cue, or nil for an unknown cue.
func Build(cue core.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	tones, ok := Recipes[cue]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		var s beep.Streamer = newVoice(t, rate)
		if t.Delay > 0 {
			s = beep.Seq(beep.Silence(rate.N(t.Delay)), s)
		}
		parts = append(parts, s)
	}

	var mixed beep.Streamer
	if len(parts) == 1 {
		mixed = parts[0]
	} else {
		mixed = beep.Mix(parts...)
	}
	return withVolume(mixed, volume)
}

// Length returns how long a cue sounds.
func Length(cue core.Cue) time.Duration {
	var longest time.Duration
	for _, t := range Recipes[cue] {
		longest = max(longest, t.Delay+t.Duration)
	}
	return longest
}

// math.Log2(0) is -Inf, so zero volume is expressed with Silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
