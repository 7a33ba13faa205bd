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

package api

import "github.com/andreas-jonsson/virtual4/console/memory"

// Blit flags. The low bit selects the sprite encoding, the rest transform
// the sprite while copying.
const (
	Blit1BPP   = 0x0
	Blit2BPP   = 0x1
	BlitFlipH  = 0x2
	BlitFlipV  = 0x4
	BlitRotate = 0x8
)

// Tone flags, 0bXXPPMMCC. The mode bits select the pulse duty cycle and
// only affect the two pulse channels.
const (
	TonePulse1   = 0x00
	TonePulse2   = 0x01
	ToneTriangle = 0x02
	ToneNoise    = 0x03

	ToneMode1 = 0x00 // 12.5% duty
	ToneMode2 = 0x04 // 25% duty
	ToneMode3 = 0x08 // 50% duty
	ToneMode4 = 0x0C // 75% duty

	TonePanCenter = 0x00
	TonePanLeft   = 0x10
	TonePanRight  = 0x20
)

// Host is the set of procedures the console implements on behalf of a
// cartridge. Drawing calls consult the DRAW_COLORS register at call time;
// none of them report errors. Misuse such as out of range draw-color
// nibbles, interior nul bytes in Text or blit source reads past the sprite
// is undefined behavior, not a checked condition.
type Host interface {
	// Blit copies a 1bpp or 2bpp sprite to the framebuffer.
	Blit(sprite []byte, x, y int, width, height, flags uint32)

	// BlitSub copies a subregion of a sprite. Stride is the full sprite
	// width in pixels and must cover srcX+width, else the source reads
	// are undefined.
	BlitSub(sprite []byte, x, y int, width, height, srcX, srcY, stride, flags uint32)

	// Line draws a segment between two points with draw color 1.
	Line(x1, y1, x2, y2 int)

	// HLine draws length pixels rightwards from x,y. Equivalent to
	// Line(x, y, x+length-1, y).
	HLine(x, y int, length uint32)

	// VLine draws length pixels downwards from x,y. Equivalent to
	// Line(x, y, x, y+length-1).
	VLine(x, y int, length uint32)

	// Oval draws an ellipse of the given size centered at x,y. Draw color
	// 1 fills, draw color 2 outlines.
	Oval(x, y int, width, height uint32)

	// Rect draws a rectangle with its top-left corner at x,y. Draw color
	// 1 fills, draw color 2 outlines.
	Rect(x, y int, width, height uint32)

	// Text renders ASCII text with the built-in 8x8 font, anchored at the
	// top-left corner of the first glyph. Line breaks are honored.
	Text(text []byte, x, y int)

	// Tone plays a note on one of the four channels. See the audio
	// package for the parameter encodings.
	Tone(frequency, duration, volume, flags uint32)

	// DiskR reads from the start of persistent storage into dest and
	// returns the number of bytes transferred, which may be short.
	DiskR(dest []byte) uint32

	// DiskW writes src to the start of persistent storage and returns
	// the number of bytes transferred, which may be short.
	DiskW(src []byte) uint32

	// Trace emits a debug message. Best effort, no delivery guarantee.
	Trace(msg []byte)
}

// Console is what a cartridge gets to talk to: the host procedures plus
// the memory-mapped registers.
type Console interface {
	Host
	Memory() *memory.Region
}

// Cartridge is the unit of program the console runs. Start is called once,
// Update once per frame at 60Hz. Both run on the console goroutine.
type Cartridge interface {
	Start(Console)
	Update(Console)
}

// NullHost discards every call. Useful for tools and tests that only care
// about a subset of the surface.
type NullHost struct{}

func (*NullHost) Blit([]byte, int, int, uint32, uint32, uint32) {}
func (*NullHost) BlitSub([]byte, int, int, uint32, uint32, uint32, uint32, uint32, uint32) {
}
func (*NullHost) Line(int, int, int, int)             {}
func (*NullHost) HLine(int, int, uint32)              {}
func (*NullHost) VLine(int, int, uint32)              {}
func (*NullHost) Oval(int, int, uint32, uint32)       {}
func (*NullHost) Rect(int, int, uint32, uint32)       {}
func (*NullHost) Text([]byte, int, int)               {}
func (*NullHost) Tone(uint32, uint32, uint32, uint32) {}
func (*NullHost) DiskR([]byte) uint32                 { return 0 }
func (*NullHost) DiskW([]byte) uint32                 { return 0 }
func (*NullHost) Trace([]byte)                        {}
