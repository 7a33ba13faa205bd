/*
Copyright (c) 2019-2021 Andreas T Jonsson

This software is provided 'as-is', without any express or implied
warranty. In no event will the authors be held liable for any damages
arising from the use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
   claim that you wrote the original software. If you use this software
   in a product, an acknowledgment in the product documentation would be
   appreciated but is not required.
2. Altered source versions must be plainly marked as such, and must not be
   misrepresented as being the original software.
3. This notice may not be removed or altered from any source distribution.
*/

package audio

import "sync"

const (
	// SampleRate is the output rate in Hz, stereo, signed 16-bit.
	SampleRate = 44100

	// NumChannels is the number of tone generators: two pulse waves, one
	// triangle and one noise channel.
	NumChannels = 4

	ticksPerSecond = 60

	maxVolume         = 0x1333
	maxVolumeTriangle = 0x2000
)

// Note is one decoded tone request.
type Note struct {
	StartFreq, EndFreq uint16
	Attack, Decay, Sustain, Release byte
	AttackVolume, SustainVolume     uint16
	Channel, Mode, Pan              byte
}

// DecodeNote unpacks the four tone parameters.
//
// frequency: low half start Hz, high half end Hz (non-zero end sweeps).
// duration: 0xAADDSSRR attack/decay/sustain/release in 60ths of a second.
// volume: high half attack peak 0-100, low half sustain level 0-100.
// flags: 0bXXPPMMCC pan, duty mode and channel.
func DecodeNote(frequency, duration, volume, flags uint32) Note {
	return Note{
		StartFreq:     uint16(frequency),
		EndFreq:       uint16(frequency >> 16),
		Sustain:       byte(duration),
		Release:       byte(duration >> 8),
		Decay:         byte(duration >> 16),
		Attack:        byte(duration >> 24),
		SustainVolume: clampVolume(uint16(volume)),
		AttackVolume:  clampVolume(uint16(volume >> 16)),
		Channel:       byte(flags) & 0x3,
		Mode:          byte(flags>>2) & 0x3,
		Pan:           byte(flags>>4) & 0x3,
	}
}

func clampVolume(v uint16) uint16 {
	if v > 100 {
		return 100
	}
	return v
}

type channel struct {
	freq1, freq2 float64

	// Envelope segment end times in samples since power-on.
	startTime, attackTime, decayTime, sustainTime, releaseTime uint64

	peakVolume, sustainVolume int32

	mode byte
	pan  byte

	phase float64
	lfsr  uint16
	noise int32
}

// APU mixes the four tone channels into interleaved stereo int16 samples.
// Tone may be called from the console goroutine while a platform thread is
// in Render, so the state is lock protected.
type APU struct {
	mu       sync.Mutex
	time     uint64
	channels [NumChannels]channel
}

func New() *APU {
	a := &APU{}
	for i := range a.channels {
		a.channels[i].lfsr = 0x0001
	}
	return a
}

// Tone starts a note, replacing whatever the selected channel is playing.
// Fire and forget: there is no cancellation primitive.
func (a *APU) Tone(frequency, duration, volume, flags uint32) {
	n := DecodeNote(frequency, duration, volume, flags)

	a.mu.Lock()
	defer a.mu.Unlock()

	c := &a.channels[n.Channel]
	c.freq1 = float64(n.StartFreq)
	c.freq2 = float64(n.EndFreq)
	c.mode = n.Mode
	c.pan = n.Pan

	c.startTime = a.time
	c.attackTime = c.startTime + uint64(n.Attack)*SampleRate/ticksPerSecond
	c.decayTime = c.attackTime + uint64(n.Decay)*SampleRate/ticksPerSecond
	c.sustainTime = c.decayTime + uint64(n.Sustain)*SampleRate/ticksPerSecond
	c.releaseTime = c.sustainTime + uint64(n.Release)*SampleRate/ticksPerSecond

	maxv := int32(maxVolume)
	if n.Channel == 2 {
		maxv = maxVolumeTriangle
	}
	c.sustainVolume = maxv * int32(n.SustainVolume) / 100
	if n.AttackVolume == 0 {
		// An attack volume of zero defaults to full volume. Documented
		// quirk, kept for compatibility.
		c.peakVolume = maxv
	} else {
		c.peakVolume = maxv * int32(n.AttackVolume) / 100
	}
}

func (c *channel) active(time uint64) bool {
	return time < c.releaseTime
}

func (c *channel) frequency(time uint64) float64 {
	if c.freq2 <= 0 {
		return c.freq1
	}
	span := c.releaseTime - c.startTime
	if span == 0 {
		return c.freq2
	}
	t := float64(time-c.startTime) / float64(span)
	return c.freq1 + (c.freq2-c.freq1)*t
}

func (c *channel) volume(time uint64) int32 {
	switch {
	case time >= c.releaseTime:
		return 0
	case time >= c.sustainTime:
		return ramp(time, c.sustainTime, c.releaseTime, c.sustainVolume, 0)
	case time >= c.decayTime:
		return c.sustainVolume
	case time >= c.attackTime:
		return ramp(time, c.attackTime, c.decayTime, c.peakVolume, c.sustainVolume)
	default:
		return ramp(time, c.startTime, c.attackTime, 0, c.peakVolume)
	}
}

func ramp(time, start, end uint64, from, to int32) int32 {
	if end <= start {
		return to
	}
	t := float64(time-start) / float64(end-start)
	return from + int32(t*float64(to-from))
}

var dutyCycles = [4]float64{0.125, 0.25, 0.5, 0.75}

func (c *channel) sample(idx int, time uint64) int32 {
	if !c.active(time) {
		return 0
	}

	vol := c.volume(time)
	freq := c.frequency(time)

	switch idx {
	case 3: // noise
		// The LFSR reclock rate grows with the square of the frequency.
		c.phase += freq * freq / 1000000.0
		for c.phase >= 1 {
			c.phase -= 1
			c.lfsr ^= c.lfsr >> 7
			c.lfsr ^= c.lfsr << 9
			c.lfsr ^= c.lfsr >> 13
			if c.lfsr&0x1 != 0 {
				c.noise = 1
			} else {
				c.noise = -1
			}
		}
		return vol * c.noise

	case 2: // triangle
		c.phase += freq / SampleRate
		if c.phase >= 1 {
			c.phase -= 1
		}
		// Rises from -1 to 1 over the first half period, falls back
		// over the second.
		t := c.phase
		if t < 0.5 {
			return int32(float64(vol) * (4*t - 1))
		}
		return int32(float64(vol) * (3 - 4*t))

	default: // pulse
		c.phase += freq / SampleRate
		if c.phase >= 1 {
			c.phase -= 1
		}
		if c.phase < dutyCycles[c.mode] {
			return vol
		}
		return -vol
	}
}

// Render fills out with interleaved stereo samples and advances the APU
// clock by len(out)/2 sample frames.
func (a *APU) Render(out []int16) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := 0; i+1 < len(out); i += 2 {
		var left, right int32
		for idx := range a.channels {
			c := &a.channels[idx]
			s := c.sample(idx, a.time)
			if s == 0 {
				continue
			}
			switch c.pan {
			case 1:
				left += s
			case 2:
				right += s
			default:
				left += s
				right += s
			}
		}
		out[i] = clampSample(left)
		out[i+1] = clampSample(right)
		a.time++
	}
}

// Active reports whether any channel still produces sound. Mainly for
// tools that render until silence.
func (a *APU) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.channels {
		if a.channels[i].active(a.time) {
			return true
		}
	}
	return false
}

func clampSample(s int32) int16 {
	if s > 32767 {
		return 32767
	}
	if s < -32768 {
		return -32768
	}
	return int16(s)
}
