// +build !sdl

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
	"sync"
	"time"

	"github.com/gdamore/tcell"
	"github.com/spf13/afero"

	"github.com/andreas-jonsson/virtual4/console/memory"
)

// Terminals deliver no key-up events so a pressed button is held for a
// short grace period after the last repeat.
const keyHoldTime = 150 * time.Millisecond

type tcellPlatform struct {
	lock sync.Mutex

	screen   tcell.Screen
	shutdown bool

	input    InputState
	keyTimes map[buttonMap]time.Time

	fileSystem afero.Fs
}

type buttonMap struct {
	player int
	mask   byte
}

var tcellPlatformInstance tcellPlatform

func ConfigWithWindowScale(int) Config {
	return func(internalPlatform) error {
		return nil
	}
}

func ConfigWithAudio(internalPlatform) error {
	return nil
}

func ConfigWithFullscreen(internalPlatform) error {
	return nil
}

// Start runs mainLoop with a terminal front end. Two pixel rows share one
// character cell so the display needs a 160x80 terminal.
func Start(mainLoop func(Platform), configs ...Config) {
	p := &tcellPlatformInstance
	p.keyTimes = make(map[buttonMap]time.Time)
	p.fileSystem = afero.NewOsFs()

	for _, cfg := range configs {
		if err := cfg(p); err != nil {
			log.Fatal(err)
		}
	}

	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	var err error
	if p.screen, err = tcell.NewScreen(); err != nil {
		log.Fatal(err)
	}
	if err = p.screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer p.screen.Fini()

	p.screen.HideCursor()
	p.screen.EnableMouse()
	p.screen.Clear()

	go p.eventLoop()

	Instance = p
	mainLoop(p)
}

var tcellKeyMap = map[tcell.Key]buttonMap{
	tcell.KeyLeft:  {0, memory.ButtonLeft},
	tcell.KeyRight: {0, memory.ButtonRight},
	tcell.KeyUp:    {0, memory.ButtonUp},
	tcell.KeyDown:  {0, memory.ButtonDown},
	tcell.KeyTab:   {1, memory.ButtonX},
}

var tcellRuneMap = map[rune]buttonMap{
	'x': {0, memory.ButtonX},
	' ': {0, memory.ButtonX},
	'z': {0, memory.ButtonZ},
	'y': {0, memory.ButtonZ},
	'q': {1, memory.ButtonZ},
	's': {1, memory.ButtonLeft},
	'f': {1, memory.ButtonRight},
	'e': {1, memory.ButtonUp},
	'd': {1, memory.ButtonDown},
}

func (p *tcellPlatform) eventLoop() {
	for {
		event := p.screen.PollEvent()
		if event == nil {
			return
		}

		p.lock.Lock()
		switch ev := event.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				p.shutdown = true
			case tcell.KeyRune:
				if btn, ok := tcellRuneMap[ev.Rune()]; ok {
					p.keyTimes[btn] = time.Now()
				}
			default:
				if btn, ok := tcellKeyMap[ev.Key()]; ok {
					p.keyTimes[btn] = time.Now()
				}
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			p.input.MouseX = int16(x)
			p.input.MouseY = int16(y * 2)

			var buttons byte
			mask := ev.Buttons()
			if mask&tcell.Button1 != 0 {
				buttons |= memory.MouseLeft
			}
			if mask&tcell.Button3 != 0 {
				buttons |= memory.MouseRight
			}
			if mask&tcell.Button2 != 0 {
				buttons |= memory.MouseMiddle
			}
			p.input.MouseButtons = buttons
		}
		p.lock.Unlock()
	}
}

func (p *tcellPlatform) FileSystem() afero.Fs {
	return p.fileSystem
}

func (p *tcellPlatform) HasAudio() bool {
	return false
}

func (p *tcellPlatform) AudioSpec() AudioSpec {
	return AudioSpec{}
}

func (p *tcellPlatform) QueueAudio([]byte) {
}

func (p *tcellPlatform) EnableAudio(bool) {
}

func (p *tcellPlatform) RenderGraphics(backBuffer []byte) {
	if len(backBuffer) != screenSize*screenSize*4 {
		log.Panic("invalid back buffer size")
	}

	pixel := func(x, y int) tcell.Color {
		offset := (y*screenSize + x) * 4
		return tcell.NewRGBColor(
			int32(backBuffer[offset]),
			int32(backBuffer[offset+1]),
			int32(backBuffer[offset+2]),
		)
	}

	for y := 0; y < screenSize; y += 2 {
		for x := 0; x < screenSize; x++ {
			style := tcell.StyleDefault.
				Foreground(pixel(x, y)).
				Background(pixel(x, y+1))
			p.screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
	p.screen.Show()
}

func (p *tcellPlatform) SetTitle(string) {
}

func (p *tcellPlatform) Input() InputState {
	p.lock.Lock()
	defer p.lock.Unlock()

	now := time.Now()
	var pads [4]byte
	for btn, t := range p.keyTimes {
		if now.Sub(t) <= keyHoldTime {
			pads[btn.player] |= btn.mask
		} else {
			delete(p.keyTimes, btn)
		}
	}
	p.input.Gamepads = pads
	return p.input
}

func (p *tcellPlatform) ShutdownRequested() bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.shutdown
}
