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
	"github.com/veandco/go-sdl2/sdl"

	"github.com/andreas-jonsson/virtual4/console/memory"
)

type buttonMap struct {
	player int
	mask   byte
}

var sdlKeyMap = map[sdl.Keycode]buttonMap{
	sdl.K_x:      {0, memory.ButtonX},
	sdl.K_SPACE:  {0, memory.ButtonX},
	sdl.K_PERIOD: {0, memory.ButtonX},
	sdl.K_z:      {0, memory.ButtonZ},
	sdl.K_y:      {0, memory.ButtonZ},
	sdl.K_COMMA:  {0, memory.ButtonZ},
	sdl.K_LEFT:   {0, memory.ButtonLeft},
	sdl.K_RIGHT:  {0, memory.ButtonRight},
	sdl.K_UP:     {0, memory.ButtonUp},
	sdl.K_DOWN:   {0, memory.ButtonDown},

	sdl.K_TAB: {1, memory.ButtonX},
	sdl.K_q:   {1, memory.ButtonZ},
	sdl.K_s:   {1, memory.ButtonLeft},
	sdl.K_f:   {1, memory.ButtonRight},
	sdl.K_e:   {1, memory.ButtonUp},
	sdl.K_d:   {1, memory.ButtonDown},
}

// pumpEvents drains the SDL event queue and refreshes the input snapshot.
// Runs on the SDL thread, once per rendered frame.
func (p *sdlPlatform) pumpEvents() {
	p.lock.Lock()
	defer p.lock.Unlock()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			p.shutdown = true
		case *sdl.KeyboardEvent:
			if btn, ok := sdlKeyMap[ev.Keysym.Sym]; ok {
				if ev.Type == sdl.KEYDOWN {
					p.input.Gamepads[btn.player] |= btn.mask
				} else if ev.Type == sdl.KEYUP {
					p.input.Gamepads[btn.player] &^= btn.mask
				}
			} else if ev.Keysym.Sym == sdl.K_ESCAPE && ev.Type == sdl.KEYDOWN {
				p.shutdown = true
			}
		}
	}

	mx, my, state := sdl.GetMouseState()
	winW, winH := p.window.GetSize()
	if winW > 0 && winH > 0 {
		p.input.MouseX = int16(mx * screenSize / winW)
		p.input.MouseY = int16(my * screenSize / winH)
	}

	var buttons byte
	if state&sdl.ButtonLMask() != 0 {
		buttons |= memory.MouseLeft
	}
	if state&sdl.ButtonRMask() != 0 {
		buttons |= memory.MouseRight
	}
	if state&sdl.ButtonMMask() != 0 {
		buttons |= memory.MouseMiddle
	}
	p.input.MouseButtons = buttons
}
