package notify

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/pkg/errors"
)

// SpeakerRate is the sample rate the speaker is opened with. Sounds in
// other rates are resampled.
const SpeakerRate beep.SampleRate = 44100

var (
	speakerOnce sync.Once
	speakerErr  error
	speakerLock sync.Mutex
)

// Player plays the completion sound.
type Player interface {
	Play()
}

// Chime is a buffered sound played through beep's speaker.
type Chime struct {
	buffer *beep.Buffer
	volume float64
}

// NewChime loads file (an Ogg Vorbis path) into memory, or synthesizes a
// two-tone beep when file is empty. volume is an exponent of 2 applied on
// playback.
func NewChime(file string, volume float64) (*Chime, error) {
	var (
		buf *beep.Buffer
		err error
	)
	if file == "" {
		buf, err = synthesize(SpeakerRate)
	} else {
		buf, err = decodeFile(file)
	}
	if err != nil {
		return nil, err
	}
	return &Chime{buffer: buf, volume: volume}, nil
}

// Len returns the sound length in samples at SpeakerRate.
func (c *Chime) Len() int {
	return c.buffer.Len()
}

// Play starts the sound and returns immediately. Audio problems disable
// the chime and are logged once.
func (c *Chime) Play() {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SpeakerRate, SpeakerRate.N(time.Second/10))
		if speakerErr != nil {
			log.Printf("Audio disabled: Failed to initialize speaker: %v", speakerErr)
		}
	})
	if speakerErr != nil {
		return
	}

	speakerLock.Lock()
	defer speakerLock.Unlock()

	speaker.Play(&effects.Volume{
		Streamer: c.buffer.Streamer(0, c.buffer.Len()),
		Base:     2,
		Volume:   c.volume,
		Silent:   false,
	})
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open sound %s", path)
	}
	defer f.Close()

	streamer, format, err := vorbis.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode sound %s", path)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != SpeakerRate {
		s = beep.Resample(4, format.SampleRate, SpeakerRate, streamer)
	}
	format.SampleRate = SpeakerRate
	buf := beep.NewBuffer(format)
	buf.Append(s)
	log.Printf("Loaded sound %s", path)
	return buf, nil
}

// synthesize builds two short 880Hz beeps separated by a pause.
func synthesize(sr beep.SampleRate) (*beep.Buffer, error) {
	tone := func() (beep.Streamer, error) {
		s, err := generators.SineTone(sr, 880)
		if err != nil {
			return nil, errors.Wrap(err, "generate tone")
		}
		return beep.Take(sr.N(150*time.Millisecond), s), nil
	}
	first, err := tone()
	if err != nil {
		return nil, err
	}
	second, err := tone()
	if err != nil {
		return nil, err
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(beep.Seq(first, beep.Silence(sr.N(100*time.Millisecond)), second))
	return buf, nil
}
