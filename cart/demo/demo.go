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

// Package demo holds the built-in test cartridge. It exercises most of
// the host surface: sprites, shapes, text, sound and persistent storage.
package demo

import (
	"encoding/binary"

	"github.com/andreas-jonsson/virtual4/console/api"
	"github.com/andreas-jonsson/virtual4/console/memory"
)

var smiley = []byte{
	0b11000011,
	0b10000001,
	0b00100100,
	0b00100100,
	0b00000000,
	0b00100100,
	0b10011001,
	0b11000011,
}

type Cartridge struct {
	x, y    int
	dx, dy  int
	bounces uint32
	best    uint32
}

func New() *Cartridge {
	return &Cartridge{x: 76, y: 76, dx: 1, dy: 1}
}

func (d *Cartridge) Start(c api.Console) {
	var buf [4]byte
	if c.DiskR(buf[:]) == 4 {
		d.best = binary.LittleEndian.Uint32(buf[:])
	}
	c.Trace([]byte("demo cartridge started"))
}

func (d *Cartridge) Update(c api.Console) {
	mem := c.Memory()

	// Holding X speeds the sprite up.
	speed := 1
	if mem.Gamepad(0)&memory.ButtonX != 0 {
		speed = 3
	}

	d.x += d.dx * speed
	d.y += d.dy * speed

	bounced := false
	if d.x <= 8 || d.x >= memory.ScreenSize-16 {
		d.dx, bounced = -d.dx, true
	}
	if d.y <= 24 || d.y >= memory.ScreenSize-16 {
		d.dy, bounced = -d.dy, true
	}
	if bounced {
		d.bounces++
		if d.bounces > d.best {
			d.best = d.bounces
			var buf [4]byte
			binary.LittleEndian.PutUint32(buf[:], d.best)
			c.DiskW(buf[:])
		}
		c.Tone(460|220<<16, 8|4<<24, 60, api.TonePulse1|api.ToneMode3)
	}

	mem.SetDrawColors(0x0023)
	c.Rect(4, 20, memory.ScreenSize-8, memory.ScreenSize-24)

	mem.SetDrawColors(0x0004)
	c.Text([]byte("VIRTUAL4"), 48, 4)

	if mem.MouseButtons()&memory.MouseLeft != 0 {
		mem.SetDrawColors(0x0042)
		c.Oval(int(mem.MouseX()), int(mem.MouseY()), 12, 12)
	}

	mem.SetDrawColors(0x0004)
	c.Blit(smiley, d.x, d.y, 8, 8, api.Blit1BPP)
}
