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

// GlyphSize is the width and height of a font glyph in pixels.
const GlyphSize = 8

// Text renders ASCII text with the built-in font, anchored at the top-left
// corner of the first glyph. Glyph ink goes through draw color 1 and the
// glyph background through draw color 2, exactly like a 1bpp blit. A line
// break moves down one glyph row and returns to the starting column.
// Interior nul bytes are undefined behavior; characters outside the
// printable range advance the pen without drawing.
func (r *Renderer) Text(text []byte, x, y int) {
	penX := x
	for _, c := range text {
		switch {
		case c == '\n':
			y += GlyphSize
			penX = x
		case c >= firstGlyph && c < firstGlyph+numGlyphs:
			offset := (int(c) - firstGlyph) * GlyphSize
			r.BlitSub(fontROM[offset:offset+GlyphSize], penX, y, GlyphSize, GlyphSize, 0, 0, GlyphSize, 0)
			penX += GlyphSize
		default:
			penX += GlyphSize
		}
	}
}
