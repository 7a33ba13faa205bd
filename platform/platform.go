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

package platform

import (
	"github.com/spf13/afero"

	"github.com/andreas-jonsson/virtual4/console/memory"
)

type internalPlatform interface{}

type Config func(internalPlatform) error

type AudioSpec struct {
	Freq,
	Channels,
	Samples int
}

// InputState is the sampled state of all input devices. The console copies
// it into the mapped registers between frames.
type InputState struct {
	Gamepads     [4]byte
	MouseX       int16
	MouseY       int16
	MouseButtons byte
}

// Platform is the machine-facing side of a front end: a place to put
// pixels and sound, a source of input and a filesystem for save data.
type Platform interface {
	FileSystem() afero.Fs

	HasAudio() bool
	AudioSpec() AudioSpec
	QueueAudio(soundBuffer []byte)
	EnableAudio(b bool)

	// RenderGraphics presents a 160*160*4 RGBA back buffer.
	RenderGraphics(backBuffer []byte)
	SetTitle(title string)

	Input() InputState
	ShutdownRequested() bool
}

var Instance Platform

const screenSize = memory.ScreenSize
