package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator is a sine that glides between two pitches and fades out.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
}

// NewSweepGenerator glides from one frequency to another over d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, length: sr.N(d)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress
		t := float64(g.pos) / float64(g.sr)

		sample := 0.25 * (1 - progress) * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ChimeGenerator is a bright two-note blip.
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewChimeGenerator creates the pickup chime.
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.sr.N(pickupDuration / 2)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 988.0 // B5
		if g.pos >= half {
			freq = 1319 // E6
		}
		envelope := math.Exp(-t * 12)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// loopNotes is the bass line of the background loop, one note per beat.
var loopNotes = []float64{131, 165, 196, 165, 147, 175, 220, 175}

// LoopGenerator is a soft endless bass line with a light pulse.
type LoopGenerator struct {
	sr   beep.SampleRate
	beat int
	pos  int
}

// NewLoopGenerator creates the music loop at 150 BPM.
func NewLoopGenerator(sr beep.SampleRate) *LoopGenerator {
	return &LoopGenerator{sr: sr, beat: sr.N(400 * time.Millisecond)}
}

func (g *LoopGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := loopNotes[(g.pos/g.beat)%len(loopNotes)]
		beatPos := g.pos % g.beat
		t := float64(g.pos) / float64(g.sr)

		envelope := 1 - float64(beatPos)/float64(g.beat)
		sample := 0.08*envelope*math.Sin(2*math.Pi*note*t) +
			0.03*math.Sin(2*math.Pi*note*2*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *LoopGenerator) Err() error {
	return nil
}
