package audio

import "github.com/lixenwraith/math-snake/constants"

// AudioConfig holds the audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the default audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundError:    0.8,
			SoundBell:     1.0,
			SoundChime:    0.6,
			SoundGameOver: 0.7,
		},
	}
}

// Normalize clamps volumes into [0, 1] and restores a usable sample rate
func (c *AudioConfig) Normalize() {
	c.MasterVolume = clamp01(c.MasterVolume)
	if c.SampleRate <= 0 {
		c.SampleRate = constants.DefaultSampleRate
	}
	if c.EffectVolumes == nil {
		c.EffectVolumes = DefaultAudioConfig().EffectVolumes
	}
	for k, v := range c.EffectVolumes {
		c.EffectVolumes[k] = clamp01(v)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
