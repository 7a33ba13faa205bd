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

package memory

import "encoding/binary"

// ScreenSize is the width and height of the display in pixels.
const ScreenSize = 160

// Register offsets in console linear memory. These values are part of the
// binary contract with existing cartridges and must never change.
const (
	AddrPalette      = 0x04
	AddrDrawColors   = 0x14
	AddrGamepads     = 0x16
	AddrMouseX       = 0x1a
	AddrMouseY       = 0x1c
	AddrMouseButtons = 0x1e
	AddrSystemFlags  = 0x1f
	AddrNetPlay      = 0x20
	AddrFramebuffer  = 0xa0

	BytesPerRow     = ScreenSize / 4
	FramebufferSize = ScreenSize * BytesPerRow

	Size = AddrFramebuffer + FramebufferSize
)

// Gamepad button bits. Layout is 0bDURLxxZX with the two x bits unused.
const (
	ButtonX     = 0x01
	ButtonZ     = 0x02
	ButtonLeft  = 0x10
	ButtonRight = 0x20
	ButtonUp    = 0x40
	ButtonDown  = 0x80
)

// Mouse button bits, 0bXXXXXMRL.
const (
	MouseLeft   = 0x01
	MouseRight  = 0x02
	MouseMiddle = 0x04
)

// System flag bits, 0bXXXXXX10.
const (
	SystemPreserveFramebuffer = 0x01
	SystemHideGamepadOverlay  = 0x02
)

// NetPlay bits, 0bXXXXXEII. The player index is only meaningful while the
// active bit is set.
const (
	NetPlayActive      = 0x04
	NetPlayPlayerMask  = 0x03
	NetPlayPlayerShift = 0
)

// DefaultPalette is the power-on palette.
var DefaultPalette = [4]uint32{0xe0f8cf, 0x86c06c, 0x306850, 0x071821}

// DefaultDrawColors is the power-on DRAW_COLORS value.
const DefaultDrawColors = 0x1203

// Region is the memory-mapped register bank and framebuffer shared between
// a cartridge and the console hardware. All multi-byte registers are little
// endian.
type Region struct {
	data []byte
}

func NewRegion() *Region {
	return &Region{data: make([]byte, Size)}
}

// Wrap aliases an existing buffer of at least Size bytes so the registers
// can live inside a larger linear memory.
func Wrap(buffer []byte) *Region {
	return &Region{data: buffer[:Size]}
}

// Bytes exposes the raw register bank. Writes through the returned slice
// are visible to all accessors.
func (r *Region) Bytes() []byte {
	return r.data
}

func (r *Region) ReadByte(addr int) byte {
	return r.data[addr]
}

func (r *Region) WriteByte(addr int, data byte) {
	r.data[addr] = data
}

// Reset restores the power-on register state. The framebuffer is cleared
// to color 0.
func (r *Region) Reset() {
	for i := range r.data {
		r.data[i] = 0
	}
	for i, color := range &DefaultPalette {
		r.SetPaletteColor(i, color)
	}
	r.SetDrawColors(DefaultDrawColors)
}

// PaletteColor returns palette slot i (0-3) as 0xXXRRGGBB. The top byte is
// unused by the hardware but is returned as stored.
func (r *Region) PaletteColor(i int) uint32 {
	return binary.LittleEndian.Uint32(r.data[AddrPalette+i*4:])
}

// SetPaletteColor stores 0x00RRGGBB in palette slot i (0-3). The unused top
// byte is always written as zero.
func (r *Region) SetPaletteColor(i int, color uint32) {
	binary.LittleEndian.PutUint32(r.data[AddrPalette+i*4:], color&0xFFFFFF)
}

func (r *Region) DrawColors() uint16 {
	return binary.LittleEndian.Uint16(r.data[AddrDrawColors:])
}

func (r *Region) SetDrawColors(colors uint16) {
	binary.LittleEndian.PutUint16(r.data[AddrDrawColors:], colors)
}

// DrawColor returns the draw-color nibble for slot 1-4. Zero means
// transparent, 1-4 select a palette slot.
func (r *Region) DrawColor(slot int) byte {
	return byte(r.DrawColors()>>((slot-1)*4)) & 0xF
}

// Gamepad returns the button state for player 0-3.
func (r *Region) Gamepad(player int) byte {
	return r.data[AddrGamepads+player]
}

func (r *Region) SetGamepad(player int, buttons byte) {
	r.data[AddrGamepads+player] = buttons
}

func (r *Region) MouseX() int16 {
	return int16(binary.LittleEndian.Uint16(r.data[AddrMouseX:]))
}

func (r *Region) MouseY() int16 {
	return int16(binary.LittleEndian.Uint16(r.data[AddrMouseY:]))
}

func (r *Region) MouseButtons() byte {
	return r.data[AddrMouseButtons]
}

// SetMouse updates the mouse registers. Coordinates may be negative or
// beyond the screen when the pointer is outside the window.
func (r *Region) SetMouse(x, y int16, buttons byte) {
	binary.LittleEndian.PutUint16(r.data[AddrMouseX:], uint16(x))
	binary.LittleEndian.PutUint16(r.data[AddrMouseY:], uint16(y))
	r.data[AddrMouseButtons] = buttons
}

func (r *Region) SystemFlags() byte {
	return r.data[AddrSystemFlags]
}

func (r *Region) SetSystemFlags(flags byte) {
	r.data[AddrSystemFlags] = flags
}

func (r *Region) NetPlay() byte {
	return r.data[AddrNetPlay]
}

// SetNetPlay updates the NetPlay register. Player is masked to 0-3.
func (r *Region) SetNetPlay(active bool, player int) {
	var v byte
	if active {
		v = NetPlayActive
	}
	r.data[AddrNetPlay] = v | byte(player)&NetPlayPlayerMask
}

// Framebuffer returns the packed 2bpp pixel rows.
func (r *Region) Framebuffer() []byte {
	return r.data[AddrFramebuffer : AddrFramebuffer+FramebufferSize]
}

// Pixel returns the color value 0-3 at x,y. Coordinates must be inside the
// screen.
func (r *Region) Pixel(x, y int) byte {
	idx := AddrFramebuffer + y*BytesPerRow + (x >> 2)
	shift := uint(x&3) * 2
	return (r.data[idx] >> shift) & 0x3
}

// SetPixel stores the color value 0-3 at x,y. The value is masked to two
// bits so out of range colors cannot corrupt neighboring pixels.
func (r *Region) SetPixel(x, y int, color byte) {
	idx := AddrFramebuffer + y*BytesPerRow + (x >> 2)
	shift := uint(x&3) * 2
	r.data[idx] = r.data[idx]&^(0x3<<shift) | (color&0x3)<<shift
}

// ClearFramebuffer fills the framebuffer with color 0.
func (r *Region) ClearFramebuffer() {
	fb := r.Framebuffer()
	for i := range fb {
		fb[i] = 0
	}
}
