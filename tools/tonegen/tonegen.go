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

// Tonegen renders a single tone call to a WAV file so envelope or sweep
// changes can be auditioned without booting the console.
package main

import (
	"flag"
	"log"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/andreas-jonsson/virtual4/console/audio"
)

var (
	output = flag.String("o", "tone.wav", "Output WAV file")

	startFreq = flag.Uint("freq", 440, "Start frequency in Hz")
	endFreq   = flag.Uint("freq2", 0, "End frequency in Hz, 0 for constant pitch")

	attack  = flag.Uint("attack", 0, "Attack time in 60ths of a second")
	decay   = flag.Uint("decay", 0, "Decay time in 60ths of a second")
	sustain = flag.Uint("sustain", 60, "Sustain time in 60ths of a second")
	release = flag.Uint("release", 0, "Release time in 60ths of a second")

	attackVolume  = flag.Uint("peak", 0, "Attack peak volume 0-100, 0 for default")
	sustainVolume = flag.Uint("volume", 100, "Sustain volume 0-100")

	channel = flag.Uint("channel", 0, "Channel: 0,1 pulse, 2 triangle, 3 noise")
	mode    = flag.Uint("mode", 2, "Pulse duty cycle: 0=12.5%, 1=25%, 2=50%, 3=75%")
	pan     = flag.Uint("pan", 0, "Pan: 0 center, 1 left, 2 right")
)

func main() {
	flag.Parse()

	frequency := uint32(*startFreq) | uint32(*endFreq)<<16
	duration := uint32(*sustain) | uint32(*release)<<8 | uint32(*decay)<<16 | uint32(*attack)<<24
	volume := uint32(*sustainVolume) | uint32(*attackVolume)<<16
	flags := uint32(*channel) | uint32(*mode)<<2 | uint32(*pan)<<4

	apu := audio.New()
	apu.Tone(frequency, duration, volume, flags)

	var samples []int
	buf := make([]int16, audio.SampleRate/60*2)
	for apu.Active() {
		apu.Render(buf)
		for _, s := range buf {
			samples = append(samples, int(s))
		}
	}

	fp, err := os.Create(*output)
	if err != nil {
		log.Fatal(err)
	}
	defer fp.Close()

	enc := wav.NewEncoder(fp, audio.SampleRate, 16, 2, 1)
	err = enc.Write(&goaudio.IntBuffer{
		Data:           samples,
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: audio.SampleRate},
		SourceBitDepth: 16,
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		log.Fatal(err)
	}

	log.Printf("wrote %d sample frames to %s", len(samples)/2, *output)
}
