package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/galton/parameter"
)

// Config selects whether cues play and how loud
type Config struct {
	Enabled bool
	Volume  float64 // [0,1]
}

// Player turns session events into sound cues
// A disabled player accepts every call and plays nothing
type Player struct {
	enabled  bool
	volume   float64
	rate     beep.SampleRate
	logger   zerolog.Logger
	now      func() time.Time
	play     func(...beep.Streamer)
	close    func()
	lastLand time.Time
}

// NewPlayer initializes the speaker; on failure it returns a disabled player with the error,
// the application keeps running without sound
func NewPlayer(cfg Config, logger zerolog.Logger) (*Player, error) {
	p := &Player{
		volume: cfg.Volume,
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		logger: logger.With().Str("component", "audio").Logger(),
		now:    time.Now,
	}
	if !cfg.Enabled {
		p.logger.Info().Msg("audio disabled")
		return p, nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		p.logger.Warn().Err(err).Msg("speaker init failed, continuing without audio")
		return p, err
	}

	p.enabled = true
	p.play = speaker.Play
	p.close = speaker.Close
	p.logger.Info().Int("sample_rate", int(p.rate)).Float64("volume", p.volume).Msg("audio started")
	return p, nil
}

// newPlayerWith builds an enabled player on an arbitrary sink, for tests
func newPlayerWith(volume float64, now func() time.Time, play func(...beep.Streamer)) *Player {
	return &Player{
		enabled: true,
		volume:  volume,
		rate:    beep.SampleRate(parameter.AudioSampleRate),
		logger:  zerolog.Nop(),
		now:     now,
		play:    play,
	}
}

// Enabled reports whether cues reach a speaker
func (p *Player) Enabled() bool {
	return p.enabled
}

// Landed plays a landing blip for n balls counted this tick
// Blips closer than MinSoundGap are dropped so a busy board does not saturate the mixer
func (p *Player) Landed(n int) {
	if !p.enabled || n <= 0 {
		return
	}
	now := p.now()
	if !p.lastLand.IsZero() && now.Sub(p.lastLand) < parameter.MinSoundGap {
		return
	}
	p.lastLand = now
	p.play(NewLandSound(n, p.volume, p.rate))
}

// BatchDone plays the batch chime
func (p *Player) BatchDone() {
	if !p.enabled {
		return
	}
	p.play(NewChimeSound(p.volume, p.rate))
}

// Close releases the speaker
func (p *Player) Close() {
	if !p.enabled {
		return
	}
	p.enabled = false
	if p.close != nil {
		p.close()
	}
}
