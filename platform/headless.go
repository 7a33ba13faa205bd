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
	"sync"

	"github.com/spf13/afero"
)

// HeadlessPlatform records everything and displays nothing. It backs unit
// tests and batch tools. The filesystem is an in-memory afero fs so save
// data never touches the host disk.
type HeadlessPlatform struct {
	lock sync.Mutex

	NumFrames  int
	LastFrame  []byte
	AudioData  []byte
	Title      string
	InputFeed  InputState
	Shutdown   bool
	WithAudio  bool
	fileSystem afero.Fs
}

func NewHeadless() *HeadlessPlatform {
	return &HeadlessPlatform{fileSystem: afero.NewMemMapFs()}
}

func (p *HeadlessPlatform) FileSystem() afero.Fs {
	return p.fileSystem
}

func (p *HeadlessPlatform) HasAudio() bool {
	return p.WithAudio
}

func (p *HeadlessPlatform) AudioSpec() AudioSpec {
	if !p.WithAudio {
		return AudioSpec{}
	}
	return AudioSpec{Freq: 44100, Channels: 2, Samples: 735}
}

func (p *HeadlessPlatform) QueueAudio(soundBuffer []byte) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.AudioData = append(p.AudioData, soundBuffer...)
}

func (p *HeadlessPlatform) EnableAudio(bool) {
}

func (p *HeadlessPlatform) RenderGraphics(backBuffer []byte) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.NumFrames++
	p.LastFrame = append(p.LastFrame[:0], backBuffer...)
}

func (p *HeadlessPlatform) SetTitle(title string) {
	p.Title = title
}

func (p *HeadlessPlatform) Input() InputState {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.InputFeed
}

func (p *HeadlessPlatform) ShutdownRequested() bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.Shutdown
}

// RequestShutdown stops a console running against this platform after the
// current frame.
func (p *HeadlessPlatform) RequestShutdown() {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Shutdown = true
}

// SetInput feeds an input snapshot for the next frame.
func (p *HeadlessPlatform) SetInput(input InputState) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.InputFeed = input
}
