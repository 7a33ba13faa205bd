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

const (
	firstGlyph = 0x20
	numGlyphs  = 96
)

// fontROM holds the built-in 8x8 font as 1bpp sprite rows, one byte per
// row, most significant bit leftmost. Ink pixels are encoded as 0 so they
// resolve to draw color 1 through the blit path.
var fontROM = [numGlyphs * GlyphSize]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // space
	0xff, 0xc3, 0xc3, 0xe7, 0xe7, 0xe7, 0xff, 0xff, // !
	0x99, 0x99, 0xdb, 0xff, 0xff, 0xff, 0xff, 0xff, // "
	0xff, 0x93, 0x01, 0x93, 0x01, 0x93, 0xff, 0xff, // #
	0xe7, 0x01, 0x3d, 0x81, 0x79, 0x01, 0xe7, 0xff, // $
	0xff, 0xff, 0x39, 0xe3, 0x8f, 0x39, 0xff, 0xff, // %
	0xff, 0x83, 0x83, 0x01, 0x33, 0x01, 0xff, 0xff, // &
	0xcf, 0xcf, 0x9f, 0xff, 0xff, 0xff, 0xff, 0xff, // '
	0xff, 0xe3, 0xcf, 0xcf, 0xcf, 0xe3, 0xff, 0xff, // (
	0xff, 0xc7, 0xf3, 0xf3, 0xf3, 0xc7, 0xff, 0xff, // )
	0xff, 0xff, 0x99, 0x00, 0x81, 0xff, 0xff, 0xff, // *
	0xff, 0xff, 0xe7, 0x81, 0xe7, 0xff, 0xff, 0xff, // +
	0xff, 0xff, 0xff, 0xff, 0xe7, 0xe7, 0xcf, 0xff, // ,
	0xff, 0xff, 0xff, 0x01, 0xff, 0xff, 0xff, 0xff, // -
	0xff, 0xff, 0xff, 0xff, 0xff, 0xe7, 0xff, 0xff, // .
	0xff, 0xff, 0xf9, 0xe3, 0x8f, 0x3f, 0xff, 0xff, // /
	0xff, 0x81, 0x3c, 0x24, 0x3c, 0x81, 0xff, 0xff, // 0
	0xff, 0xc7, 0x87, 0xe7, 0xe7, 0x81, 0xff, 0xff, // 1
	0xff, 0x01, 0xf1, 0xc7, 0x1f, 0x01, 0xff, 0xff, // 2
	0xff, 0x01, 0xf9, 0xc1, 0xf9, 0x01, 0xff, 0xff, // 3
	0xff, 0xe3, 0x83, 0x01, 0xf3, 0xe1, 0xff, 0xff, // 4
	0xff, 0x01, 0x3f, 0x01, 0xf9, 0x01, 0xff, 0xff, // 5
	0xff, 0x87, 0x3f, 0x01, 0x39, 0x01, 0xff, 0xff, // 6
	0xff, 0x01, 0xf9, 0xe3, 0xcf, 0xcf, 0xff, 0xff, // 7
	0xff, 0x01, 0x39, 0x01, 0x39, 0x01, 0xff, 0xff, // 8
	0xff, 0x01, 0x39, 0x81, 0xf9, 0x83, 0xff, 0xff, // 9
	0xff, 0xff, 0xe7, 0xff, 0xe7, 0xe7, 0xff, 0xff, // :
	0xff, 0xff, 0xe7, 0xff, 0xe7, 0xc7, 0xff, 0xff, // ;
	0xff, 0xf9, 0xe3, 0x8f, 0xc7, 0xf1, 0xff, 0xff, // <
	0xff, 0xff, 0x81, 0xff, 0x81, 0xff, 0xff, 0xff, // =
	0xff, 0x9f, 0xc7, 0xf1, 0xe3, 0x8f, 0xff, 0xff, // >
	0xff, 0x01, 0x31, 0xe7, 0xe7, 0xe7, 0xff, 0xff, // ?
	0xff, 0x83, 0x39, 0x21, 0x21, 0x03, 0xff, 0xff, // @
	0xff, 0xc7, 0x11, 0x01, 0x39, 0x39, 0xff, 0xff, // A
	0xff, 0x01, 0x99, 0x81, 0x99, 0x01, 0xff, 0xff, // B
	0xff, 0x81, 0x3d, 0x3f, 0x3d, 0x81, 0xff, 0xff, // C
	0xff, 0x03, 0x99, 0x99, 0x99, 0x03, 0xff, 0xff, // D
	0xff, 0x01, 0x95, 0x87, 0x9d, 0x01, 0xff, 0xff, // E
	0xff, 0x01, 0x95, 0x87, 0x9f, 0x0f, 0xff, 0xff, // F
	0xff, 0x81, 0x3d, 0x21, 0x39, 0x81, 0xff, 0xff, // G
	0xff, 0x39, 0x39, 0x01, 0x39, 0x39, 0xff, 0xff, // H
	0xff, 0xc3, 0xe7, 0xe7, 0xe7, 0xc3, 0xff, 0xff, // I
	0xff, 0xe1, 0xf3, 0xf3, 0x33, 0x03, 0xff, 0xff, // J
	0xff, 0x19, 0x91, 0x87, 0x91, 0x19, 0xff, 0xff, // K
	0xff, 0x0f, 0x9f, 0x9f, 0x9d, 0x01, 0xff, 0xff, // L
	0xff, 0x18, 0x00, 0x24, 0x3c, 0x3c, 0xff, 0xff, // M
	0xff, 0x19, 0x01, 0x21, 0x39, 0x39, 0xff, 0xff, // N
	0xff, 0x01, 0x39, 0x39, 0x39, 0x01, 0xff, 0xff, // O
	0xff, 0x01, 0x99, 0x83, 0x9f, 0x0f, 0xff, 0xff, // P
	0xff, 0x01, 0x39, 0x39, 0x29, 0x01, 0xf1, 0xff, // Q
	0xff, 0x01, 0x99, 0x83, 0x99, 0x19, 0xff, 0xff, // R
	0xff, 0x01, 0x19, 0xc3, 0x39, 0x01, 0xff, 0xff, // S
	0xff, 0x00, 0x66, 0xe7, 0xe7, 0xc3, 0xff, 0xff, // T
	0xff, 0x39, 0x39, 0x39, 0x39, 0x01, 0xff, 0xff, // U
	0xff, 0x3c, 0x3c, 0x3c, 0x18, 0xc3, 0xff, 0xff, // V
	0xff, 0x3c, 0x3c, 0x24, 0x00, 0x99, 0xff, 0xff, // W
	0xff, 0x3c, 0x81, 0xe7, 0x81, 0x3c, 0xff, 0xff, // X
	0xff, 0x3c, 0x18, 0xc3, 0xe7, 0xc3, 0xff, 0xff, // Y
	0xff, 0x00, 0x71, 0xc7, 0x1e, 0x00, 0xff, 0xff, // Z
	0xff, 0xc3, 0xcf, 0xcf, 0xcf, 0xc3, 0xff, 0xff, // [
	0xff, 0x7f, 0x1f, 0x87, 0xe1, 0xf9, 0xff, 0xff, // \
	0xff, 0xc3, 0xf3, 0xf3, 0xf3, 0xc3, 0xff, 0xff, // ]
	0xc7, 0x11, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // ^
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0xff, // _
	0xcf, 0xe7, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // `
	0xff, 0xff, 0x87, 0x83, 0x33, 0x01, 0xff, 0xff, // a
	0xff, 0x1f, 0x87, 0x91, 0x99, 0x81, 0xff, 0xff, // b
	0xff, 0xff, 0x83, 0x39, 0x3f, 0x01, 0xff, 0xff, // c
	0xff, 0xe3, 0xc3, 0x13, 0x33, 0x01, 0xff, 0xff, // d
	0xff, 0xff, 0x83, 0x01, 0x3f, 0x01, 0xff, 0xff, // e
	0xff, 0x83, 0x9b, 0x0f, 0x9f, 0x0f, 0xff, 0xff, // f
	0xff, 0xff, 0x89, 0x33, 0x33, 0x03, 0x33, 0x87, // g
	0xff, 0x1f, 0x93, 0x89, 0x99, 0x19, 0xff, 0xff, // h
	0xff, 0xe7, 0xc7, 0xe7, 0xe7, 0xc3, 0xff, 0xff, // i
	0xff, 0xf9, 0xf1, 0xf9, 0xf9, 0xf9, 0x99, 0xc3, // j
	0xff, 0x1f, 0x99, 0x83, 0x83, 0x19, 0xff, 0xff, // k
	0xff, 0xc7, 0xe7, 0xe7, 0xe7, 0xc3, 0xff, 0xff, // l
	0xff, 0xff, 0x19, 0x00, 0x24, 0x24, 0xff, 0xff, // m
	0xff, 0xff, 0x23, 0x99, 0x99, 0x99, 0xff, 0xff, // n
	0xff, 0xff, 0x83, 0x39, 0x39, 0x01, 0xff, 0xff, // o
	0xff, 0xff, 0x23, 0x99, 0x99, 0x81, 0x9f, 0x0f, // p
	0xff, 0xff, 0x89, 0x33, 0x33, 0x03, 0xf3, 0xe1, // q
	0xff, 0xff, 0x23, 0x89, 0x9f, 0x0f, 0xff, 0xff, // r
	0xff, 0xff, 0x83, 0x19, 0xc3, 0x01, 0xff, 0xff, // s
	0xff, 0xcf, 0x03, 0xcf, 0xcf, 0xc1, 0xff, 0xff, // t
	0xff, 0xff, 0x33, 0x33, 0x33, 0x01, 0xff, 0xff, // u
	0xff, 0xff, 0x3c, 0x3c, 0x18, 0xc3, 0xff, 0xff, // v
	0xff, 0xff, 0x3c, 0x3c, 0x24, 0x00, 0xff, 0xff, // w
	0xff, 0xff, 0x3c, 0x81, 0xc3, 0x18, 0xff, 0xff, // x
	0xff, 0xff, 0x39, 0x39, 0x39, 0x01, 0xf1, 0x07, // y
	0xff, 0xff, 0x01, 0x23, 0x8f, 0x01, 0xff, 0xff, // z
	0xff, 0xe1, 0xe7, 0x87, 0xe7, 0xe1, 0xff, 0xff, // {
	0xff, 0xe7, 0xe7, 0xe7, 0xe7, 0xe7, 0xff, 0xff, // |
	0xff, 0x87, 0xe7, 0xe1, 0xe7, 0x87, 0xff, 0xff, // }
	0xff, 0x01, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // ~
	0xff, 0xff, 0xc7, 0x11, 0x39, 0x01, 0xff, 0xff, // DEL
}
