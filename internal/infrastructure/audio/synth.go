package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/younwookim/pong/internal/application/system"
)

type waveType int

const (
	waveSine waveType = iota
	waveSquare
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream of known length
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = math.Max(float64(remaining)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; vol <= 0 silences it
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one enveloped note
type tone struct {
	freq     float64
	duration time.Duration
	wave     waveType
}

const (
	attack  = 2 * time.Millisecond
	release = 15 * time.Millisecond
)

// cueTones lists the notes each cue plays in sequence
var cueTones = map[system.Cue][]tone{
	system.CueInteract: {{660, 60 * time.Millisecond, waveSquare}},
	system.CueStart:    {{440, 80 * time.Millisecond, waveSine}, {880, 80 * time.Millisecond, waveSine}},
	system.CueHit:      {{880, 40 * time.Millisecond, waveSquare}},
	system.CueBounce:   {{440, 40 * time.Millisecond, waveSquare}},
	system.CueEnd:      {{330, 150 * time.Millisecond, waveSine}, {220, 250 * time.Millisecond, waveSine}},
}

// cueDuration returns the total length of a cue, or 0 for unknown cues
func cueDuration(cue system.Cue) time.Duration {
	var d time.Duration
	for _, t := range cueTones[cue] {
		d += t.duration
	}
	return d
}

// cueSound builds a finite streamer for cue, or nil for unknown cues
func cueSound(cue system.Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	tones, ok := cueTones[cue]
	if !ok {
		return nil
	}

	notes := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		notes = append(notes, newEnvelope(noteStreamer(t, rate), t.duration, attack, release, rate))
	}
	return newVolume(beep.Seq(notes...), volume)
}

func noteStreamer(t tone, rate beep.SampleRate) beep.Streamer {
	if t.wave == waveSine {
		if sine, err := generators.SineTone(rate, t.freq); err == nil {
			return beep.Take(rate.N(t.duration), sine)
		}
		// SineTone rejects frequencies at or above Nyquist; fall through
	}
	return newOscillator(t.freq, t.duration, t.wave, rate)
}
