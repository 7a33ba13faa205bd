// +build sdl

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
	"log"
	"os"
	"sync"

	"github.com/spf13/afero"
	"github.com/veandco/go-sdl2/sdl"
)

type sdlPlatform struct {
	postInitConfigs []func(*sdlPlatform) error
	cleanCallBacks  []func(*sdlPlatform)

	lock     sync.Mutex
	input    InputState
	shutdown bool

	windowScale int32

	audioSpec     *sdl.AudioSpec
	audioDeviceID sdl.AudioDeviceID

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	fileSystem afero.Fs
}

var sdlPlatformInstance sdlPlatform

func registerPostConfig(p internalPlatform, cfg func(*sdlPlatform) error) {
	sp := p.(*sdlPlatform)
	sp.postInitConfigs = append(sp.postInitConfigs, cfg)
}

func registerCleanup(p internalPlatform, cb func(p *sdlPlatform)) {
	sp := p.(*sdlPlatform)
	sp.cleanCallBacks = append(sp.cleanCallBacks, cb)
}

// ConfigWithWindowScale sets the integer scaling factor of the window.
func ConfigWithWindowScale(scale int) Config {
	return func(p internalPlatform) error {
		p.(*sdlPlatform).windowScale = int32(scale)
		return nil
	}
}

func ConfigWithAudio(p internalPlatform) error {
	const (
		frequency = 44100
		latency   = 10
	)

	nextPow := func(v uint16) uint16 {
		v--
		v |= v >> 1
		v |= v >> 2
		v |= v >> 4
		v |= v >> 8
		v++
		return v
	}

	registerPostConfig(p, func(sp *sdlPlatform) error {
		var err error
		sdl.Do(func() {
			if err = sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
				return
			}

			sp.audioSpec = &sdl.AudioSpec{
				Freq:     frequency,
				Format:   sdl.AUDIO_S16,
				Channels: 2,
				Samples:  nextPow(uint16((frequency / 1000) * latency)),
			}

			var have sdl.AudioSpec
			if sp.audioDeviceID, err = sdl.OpenAudioDevice("", false, sp.audioSpec, &have, 0); err == nil {
				sp.audioSpec = &have
				sdl.PauseAudioDevice(sp.audioDeviceID, false)

				registerCleanup(p, func(sp *sdlPlatform) {
					sdl.Do(func() {
						sdl.CloseAudioDevice(sp.audioDeviceID)
						sdl.QuitSubSystem(sdl.INIT_AUDIO)
					})
				})
			}
		})
		return err
	})
	return nil
}

func ConfigWithFullscreen(p internalPlatform) error {
	return nil // Window is fixed size; fullscreen is not supported.
}

// Start runs mainLoop with an SDL window front end. Never returns.
func Start(mainLoop func(Platform), configs ...Config) {
	errHandle := func(err error) {
		log.Println(err)
		os.Exit(-1)
	}

	p := &sdlPlatformInstance
	p.windowScale = 4
	p.fileSystem = afero.NewOsFs()

	sdl.Main(func() {
		for _, cfg := range configs {
			if err := cfg(p); err != nil {
				errHandle(err)
			}
		}

		if err := sdl.Init(0); err != nil {
			errHandle(err)
		}
		defer sdl.Quit()

		for _, cfg := range p.postInitConfigs {
			if err := cfg(p); err != nil {
				errHandle(err)
			}
		}

		defer func() {
			for _, cb := range p.cleanCallBacks {
				cb(p)
			}
		}()

		Instance = p

		if err := p.initializeVideo(); err != nil {
			errHandle(err)
		}
		mainLoop(p)
	})
	os.Exit(0) // Calling Exit is required!
}

func (p *sdlPlatform) initializeVideo() error {
	var err error
	sdl.Do(func() {
		if err = sdl.InitSubSystem(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
			return
		}

		sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")
		size := screenSize * p.windowScale
		if p.window, p.renderer, err = sdl.CreateWindowAndRenderer(size, size, 0); err != nil {
			return
		}
		p.window.SetTitle("virtual4")
		if p.texture, err = p.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, screenSize, screenSize); err != nil {
			return
		}
		err = p.renderer.SetLogicalSize(screenSize, screenSize)
	})
	if err != nil {
		return err
	}

	registerCleanup(p, shutdownVideo)
	return nil
}

func shutdownVideo(p *sdlPlatform) {
	sdl.Do(func() {
		p.texture.Destroy()
		p.renderer.Destroy()
		p.window.Destroy()
		sdl.QuitSubSystem(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	})
}

func (p *sdlPlatform) FileSystem() afero.Fs {
	return p.fileSystem
}

func (p *sdlPlatform) RenderGraphics(backBuffer []byte) {
	if len(backBuffer) != screenSize*screenSize*4 {
		log.Panic("invalid back buffer size")
	}

	sdl.Do(func() {
		p.pumpEvents()

		p.renderer.SetDrawColor(0, 0, 0, 0xFF)
		p.renderer.Clear()

		p.texture.Update(nil, backBuffer, screenSize*4)
		p.renderer.Copy(p.texture, nil, nil)

		p.renderer.Present()
	})
}

func (p *sdlPlatform) SetTitle(title string) {
	sdl.Do(func() {
		p.window.SetTitle(title)
	})
}

func (p *sdlPlatform) HasAudio() bool {
	return p.audioSpec != nil
}

func (p *sdlPlatform) QueueAudio(soundBuffer []byte) {
	if p.HasAudio() {
		sdl.Do(func() {
			sdl.QueueAudio(p.audioDeviceID, soundBuffer)
		})
	}
}

func (p *sdlPlatform) AudioSpec() AudioSpec {
	return AudioSpec{
		Freq:     int(p.audioSpec.Freq),
		Channels: int(p.audioSpec.Channels),
		Samples:  int(p.audioSpec.Samples),
	}
}

func (p *sdlPlatform) EnableAudio(b bool) {
	if p.HasAudio() {
		sdl.Do(func() {
			sdl.ClearQueuedAudio(p.audioDeviceID)
			sdl.PauseAudioDevice(p.audioDeviceID, !b)
		})
	}
}

func (p *sdlPlatform) Input() InputState {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.input
}

func (p *sdlPlatform) ShutdownRequested() bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.shutdown
}
