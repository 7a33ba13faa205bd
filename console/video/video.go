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

package video

import (
	"github.com/andreas-jonsson/virtual4/console/api"
	"github.com/andreas-jonsson/virtual4/console/memory"
)

const screenSize = memory.ScreenSize

// Renderer rasterizes the drawing calls into the packed framebuffer of a
// memory region. The DRAW_COLORS register is read at call time, never
// passed explicitly.
type Renderer struct {
	mem *memory.Region
}

func New(mem *memory.Region) *Renderer {
	return &Renderer{mem: mem}
}

func (r *Renderer) drawPoint(color byte, x, y int) {
	r.mem.SetPixel(x, y, color)
}

func (r *Renderer) drawPointClipped(color byte, x, y int) {
	if x >= 0 && x < screenSize && y >= 0 && y < screenSize {
		r.mem.SetPixel(x, y, color)
	}
}

// drawSpan fills [startX,endX) on row y. Caller clips.
func (r *Renderer) drawSpan(color byte, startX, endX, y int) {
	for x := startX; x < endX; x++ {
		r.mem.SetPixel(x, y, color)
	}
}

// Blit copies a whole sprite. Equivalent to BlitSub with a zero source
// offset and stride equal to the sprite width.
func (r *Renderer) Blit(sprite []byte, x, y int, width, height, flags uint32) {
	r.BlitSub(sprite, x, y, width, height, 0, 0, width, flags)
}

// BlitSub copies a subregion of a sprite into the framebuffer. Sprite rows
// are packed most significant bits first, at 1 or 2 bits per pixel
// depending on the format flag. Source pixel values select a draw-color
// slot; slot value 0 skips the pixel. Reads beyond the sprite for
// inconsistent stride/srcX/width combinations are undefined and not
// checked here.
func (r *Renderer) BlitSub(sprite []byte, x, y int, width, height, srcX, srcY, stride, flags uint32) {
	var (
		bpp2   = flags&api.Blit2BPP != 0
		flipX  = flags&api.BlitFlipH != 0
		flipY  = flags&api.BlitFlipV != 0
		rotate = flags&api.BlitRotate != 0
	)

	w, h := int(width), int(height)
	colors := r.mem.DrawColors()

	// The clip rectangle is expressed in sprite-local coordinates.
	// Rotation is a 90 degree counterclockwise turn, achieved by swapping
	// the axes during sampling and flipping horizontally.
	var clipXMin, clipYMin, clipXMax, clipYMax int
	if rotate {
		flipX = !flipX
		clipXMin, clipYMin = max(0, y)-y, max(0, x)-x
		clipXMax, clipYMax = min(w, screenSize-y), min(h, screenSize-x)
	} else {
		clipXMin, clipYMin = max(0, x)-x, max(0, y)-y
		clipXMax, clipYMax = min(w, screenSize-x), min(h, screenSize-y)
	}

	for row := clipYMin; row < clipYMax; row++ {
		for col := clipXMin; col < clipXMax; col++ {
			// Position on the sprite after the flips.
			sx, sy := col, row
			if flipX {
				sx = w - col - 1
			}
			if flipY {
				sy = h - row - 1
			}

			// Destination pixel on screen. Rotation swaps the axes here
			// instead of when sampling.
			tx, ty := x+col, y+row
			if rotate {
				tx, ty = x+row, y+col
			}

			bitIndex := (int(srcY)+sy)*int(stride) + int(srcX) + sx

			var colorIdx byte
			if bpp2 {
				b := sprite[bitIndex>>2]
				shift := uint(6 - (bitIndex&0x3)<<1)
				colorIdx = (b >> shift) & 0x3
			} else {
				b := sprite[bitIndex>>3]
				shift := uint(7 - bitIndex&0x7)
				colorIdx = (b >> shift) & 0x1
			}

			dc := byte(colors>>(colorIdx<<2)) & 0xF
			if dc != 0 {
				r.drawPoint((dc-1)&0x3, tx, ty)
			}
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
