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

import "testing"

func TestDecodeNote(t *testing.T) {
	n := DecodeNote(
		440|880<<16,
		10|20<<8|30<<16|40<<24,
		75|50<<16,
		0x1|0x8|0x20,
	)

	if n.StartFreq != 440 || n.EndFreq != 880 {
		t.Errorf("frequency: got %d -> %d", n.StartFreq, n.EndFreq)
	}
	if n.Sustain != 10 || n.Release != 20 || n.Decay != 30 || n.Attack != 40 {
		t.Errorf("envelope: got a=%d d=%d s=%d r=%d", n.Attack, n.Decay, n.Sustain, n.Release)
	}
	if n.SustainVolume != 75 || n.AttackVolume != 50 {
		t.Errorf("volume: got peak=%d sustain=%d", n.AttackVolume, n.SustainVolume)
	}
	if n.Channel != 1 || n.Mode != 2 || n.Pan != 2 {
		t.Errorf("flags: got channel=%d mode=%d pan=%d", n.Channel, n.Mode, n.Pan)
	}
}

func TestDecodeNoteClampsVolume(t *testing.T) {
	n := DecodeNote(440, 10, 5000|60000<<16, 0)
	if n.SustainVolume != 100 || n.AttackVolume != 100 {
		t.Errorf("volumes not clamped: %d, %d", n.SustainVolume, n.AttackVolume)
	}
}

func render(calls func(*APU), frames int) []int16 {
	apu := New()
	calls(apu)
	out := make([]int16, frames*2)
	apu.Render(out)
	return out
}

func TestZeroAttackVolumeDefaultsToFull(t *testing.T) {
	const frames = SampleRate / 2

	a := render(func(apu *APU) {
		apu.Tone(440, 10<<24|30, 0<<16|50, 0)
	}, frames)
	b := render(func(apu *APU) {
		apu.Tone(440, 10<<24|30, 100<<16|50, 0)
	}, frames)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %d != %d", i, a[i], b[i])
		}
	}
}

func TestSustainLevel(t *testing.T) {
	out := render(func(apu *APU) {
		apu.Tone(440, 60, 100, 0x8) // channel 0, 50% duty, one second sustain
	}, 100)

	for i := 0; i < len(out); i += 2 {
		s := out[i]
		if s != maxVolume && s != -maxVolume {
			t.Fatalf("sample %d: got %d, want +-%d", i/2, s, int16(maxVolume))
		}
		if out[i] != out[i+1] {
			t.Fatalf("center pan should be symmetric, got %d/%d", out[i], out[i+1])
		}
	}
}

func TestSilenceAfterRelease(t *testing.T) {
	apu := New()
	apu.Tone(440, 1, 100, 0) // one tick long

	out := make([]int16, SampleRate*2) // a full second
	apu.Render(out)

	quietFrom := 2 * (SampleRate / 60)
	for i := quietFrom; i < len(out); i++ {
		if out[i] != 0 {
			t.Fatalf("sample %d not silent after release: %d", i, out[i])
		}
	}
}

func TestPan(t *testing.T) {
	tests := []struct {
		name        string
		pan         uint32
		left, right bool
	}{
		{"center", 0x00, true, true},
		{"left", 0x10, true, false},
		{"right", 0x20, false, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := render(func(apu *APU) {
				apu.Tone(440, 60, 100, test.pan)
			}, 256)

			var left, right bool
			for i := 0; i < len(out); i += 2 {
				left = left || out[i] != 0
				right = right || out[i+1] != 0
			}
			if left != test.left || right != test.right {
				t.Errorf("got left=%v right=%v, want %v/%v", left, right, test.left, test.right)
			}
		})
	}
}

func TestTriangleUsesOwnPeak(t *testing.T) {
	out := render(func(apu *APU) {
		apu.Tone(440, 60, 100, 0x2) // triangle channel
	}, SampleRate/10)

	var peak int16
	for _, s := range out {
		if s > peak {
			peak = s
		}
	}
	if peak < maxVolume || peak > maxVolumeTriangle {
		t.Errorf("triangle peak %d outside (%d, %d]", peak, int16(maxVolume), int16(maxVolumeTriangle))
	}
}

func TestNoiseProducesBothPolarities(t *testing.T) {
	out := render(func(apu *APU) {
		apu.Tone(4000, 60, 100, 0x3)
	}, SampleRate/10)

	var pos, neg bool
	for _, s := range out {
		pos = pos || s > 0
		neg = neg || s < 0
	}
	if !pos || !neg {
		t.Error("noise channel output is not bipolar")
	}
}

func TestChannelReplacement(t *testing.T) {
	apu := New()
	apu.Tone(440, 255, 100, 0)
	apu.Tone(880, 1, 100, 0) // replaces the long note

	out := make([]int16, SampleRate)
	apu.Render(out)

	quietFrom := 2 * (SampleRate / 60)
	for i := quietFrom; i < len(out); i++ {
		if out[i] != 0 {
			t.Fatalf("old note still playing at sample %d", i)
		}
	}
}
