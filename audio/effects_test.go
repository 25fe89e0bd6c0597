package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

const testRate = beep.SampleRate(44100)

// drain streams s to the end and returns every sample, bounded by limit
func drain(s beep.Streamer, limit int) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) <= limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	return out
}

func TestNoteLength(t *testing.T) {
	d := 50 * time.Millisecond
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples := drain(tone(440, wave, d, 5*time.Millisecond, 10*time.Millisecond, testRate), testRate.N(time.Second))
		if len(samples) != testRate.N(d) {
			t.Errorf("wave %d: %d samples, want %d", wave, len(samples), testRate.N(d))
		}
	}
}

func TestNoteAmplitudeBounded(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		peak := 0.0
		for _, s := range drain(tone(330, wave, 40*time.Millisecond, 0, 0, testRate), testRate.N(time.Second)) {
			if s[0] != s[1] {
				t.Fatalf("wave %d: channels differ", wave)
			}
			peak = max(peak, abs(s[0]))
		}
		if peak == 0 || peak > 1.0001 {
			t.Errorf("wave %d: peak %f outside (0,1]", wave, peak)
		}
	}
}

func TestNoteGain(t *testing.T) {
	n := newNote(generators.Silence(-1), 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, testRate)
	tests := []struct {
		name string
		pos  int
		want float64
	}{
		{"start", 0, 0},
		{"mid attack", n.attack / 2, 0.5},
		{"sustain", n.attack + 1, 1},
		{"release start", n.total - n.release, 1},
		{"last", n.total - 1, 1 / float64(n.release)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.gain(tt.pos); abs(got-tt.want) > 1e-2 {
				t.Errorf("gain(%d) = %f, want %f", tt.pos, got, tt.want)
			}
		})
	}
}

func TestNoteOverlappingRamps(t *testing.T) {
	n := newNote(generators.Silence(-1), 10*time.Millisecond, 20*time.Millisecond, 20*time.Millisecond, testRate)
	if n.attack+n.release != n.total {
		t.Errorf("attack %d + release %d != total %d", n.attack, n.release, n.total)
	}
}

func TestSourceRejectsNyquist(t *testing.T) {
	// Above half the sample rate the generators refuse; the note must still stream silence
	samples := drain(tone(float64(testRate), WaveSine, 10*time.Millisecond, 0, 0, testRate), testRate.N(time.Second))
	for _, s := range samples {
		if s[0] != 0 {
			t.Fatal("expected silence")
		}
	}
	if len(samples) != testRate.N(10*time.Millisecond) {
		t.Errorf("%d samples", len(samples))
	}
}

// TestGetSoundEffect verifies every cue produces samples
func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultAudioConfig()

	for st := SoundType(0); st < soundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			sound := GetSoundEffect(st, cfg)
			if sound == nil {
				t.Fatalf("Expected non-nil sound for %s", st)
			}

			samples := make([][2]float64, 100)
			n, ok := sound.Stream(samples)
			if !ok {
				t.Errorf("Expected %s sound to stream successfully", st)
			}
			if n == 0 {
				t.Errorf("Expected %s sound to produce samples", st)
			}
		})
	}
}

// TestGetSoundEffectInvalid verifies handling of invalid sound type
func TestGetSoundEffectInvalid(t *testing.T) {
	cfg := DefaultAudioConfig()
	if sound := GetSoundEffect(SoundType(999), cfg); sound != nil {
		t.Error("Expected nil for invalid sound type")
	}
}

// TestCuesTerminate verifies one-shot cues end instead of looping
func TestCuesTerminate(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	limit := rate.N(2 * time.Second)

	for st := SoundType(0); st < soundTypeCount; st++ {
		sound := GetSoundEffect(st, cfg)
		buf := make([][2]float64, 512)
		total := 0
		for {
			n, ok := sound.Stream(buf)
			total += n
			if !ok || total > limit {
				break
			}
		}
		if total > limit {
			t.Errorf("%s did not finish within 2s", st)
		}
	}
}

// TestSoundEffectVolume verifies master volume scaling
func TestSoundEffectVolume(t *testing.T) {
	cfg := DefaultAudioConfig()

	for _, vol := range []float64{0.0, 0.5, 1.0} {
		cfg.MasterVolume = vol
		sound := GetSoundEffect(SoundWrong, cfg)

		samples := make([][2]float64, 100)
		n, ok := sound.Stream(samples)
		if !ok || n == 0 {
			t.Fatalf("Expected samples at volume %f", vol)
		}

		if vol == 0.0 {
			maxAmp := 0.0
			for i := 0; i < n; i++ {
				if amp := abs(samples[i][0]); amp > maxAmp {
					maxAmp = amp
				}
			}
			if maxAmp > 0.01 {
				t.Errorf("Expected near-zero amplitude for zero volume, got max %f", maxAmp)
			}
		}
	}
}

// TestNewVolumeZero verifies zero volume handling
func TestNewVolumeZero(t *testing.T) {
	vol := newVolume(tone(440.0, WaveSine, 50*time.Millisecond, 0, 0, testRate), 0.0)

	samples := make([][2]float64, 100)
	n, ok := vol.Stream(samples)
	if !ok {
		t.Error("Expected volume effect to stream")
	}
	if n == 0 {
		t.Error("Expected volume effect to produce samples")
	}
}

// Helper function for absolute value
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
