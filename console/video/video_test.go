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
	"bytes"
	"testing"

	"github.com/andreas-jonsson/virtual4/console/api"
	"github.com/andreas-jonsson/virtual4/console/memory"
)

func newRenderer() (*Renderer, *memory.Region) {
	mem := memory.NewRegion()
	mem.SetDrawColors(memory.DefaultDrawColors)
	return New(mem), mem
}

func framebufferEqual(t *testing.T, a, b *memory.Region) {
	t.Helper()
	if !bytes.Equal(a.Framebuffer(), b.Framebuffer()) {
		t.Error("framebuffers differ")
	}
}

func TestHLineMatchesLine(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		length uint32
	}{
		{"single pixel", 10, 10, 1},
		{"short", 0, 0, 5},
		{"full width", 0, 80, 160},
		{"clipped left", -10, 40, 30},
		{"clipped right", 150, 40, 30},
		{"off screen", 10, 200, 30},
		{"negative row", 10, -1, 30},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ra, _ := newRenderer()
			rb, _ := newRenderer()
			ra.HLine(test.x, test.y, test.length)
			rb.Line(test.x, test.y, test.x+int(test.length)-1, test.y)
			framebufferEqual(t, ra.mem, rb.mem)
		})
	}
}

func TestVLineMatchesLine(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		length uint32
	}{
		{"single pixel", 10, 10, 1},
		{"short", 0, 0, 5},
		{"full height", 80, 0, 160},
		{"clipped top", 40, -10, 30},
		{"clipped bottom", 40, 150, 30},
		{"off screen", 200, 10, 30},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ra, _ := newRenderer()
			rb, _ := newRenderer()
			ra.VLine(test.x, test.y, test.length)
			rb.Line(test.x, test.y, test.x, test.y+int(test.length)-1)
			framebufferEqual(t, ra.mem, rb.mem)
		})
	}
}

func TestLineTransparent(t *testing.T) {
	r, mem := newRenderer()
	mem.SetDrawColors(0x0020) // slot 1 transparent
	r.Line(0, 0, 159, 159)
	r.HLine(0, 10, 100)
	r.VLine(10, 0, 100)

	empty := memory.NewRegion()
	framebufferEqual(t, mem, empty)
}

func TestRectFillAndOutline(t *testing.T) {
	r, mem := newRenderer()
	mem.SetDrawColors(0x0032) // fill slot 2, outline slot 3
	r.Rect(10, 10, 4, 3)

	// Outline resolves to color 2, fill to color 1.
	for x := 10; x < 14; x++ {
		if got := mem.Pixel(x, 10); got != 2 {
			t.Errorf("top edge %d,10: got %d, want 2", x, got)
		}
		if got := mem.Pixel(x, 12); got != 2 {
			t.Errorf("bottom edge %d,12: got %d, want 2", x, got)
		}
	}
	if mem.Pixel(10, 11) != 2 || mem.Pixel(13, 11) != 2 {
		t.Error("side edges not drawn")
	}
	if got := mem.Pixel(11, 11); got != 1 {
		t.Errorf("interior: got %d, want 1", got)
	}
	if mem.Pixel(9, 10) != 0 || mem.Pixel(14, 11) != 0 {
		t.Error("rect spilled outside its bounds")
	}
}

func TestRectTransparentFill(t *testing.T) {
	r, mem := newRenderer()
	mem.SetDrawColors(0x0020) // fill suppressed, outline slot 2
	r.Rect(10, 10, 5, 5)

	if got := mem.Pixel(12, 12); got != 0 {
		t.Errorf("interior drawn despite transparent fill: got %d", got)
	}
	if got := mem.Pixel(10, 10); got != 1 {
		t.Errorf("outline missing: got %d, want 1", got)
	}
}

func TestRectTransparentOutline(t *testing.T) {
	r, mem := newRenderer()
	mem.SetDrawColors(0x0003) // fill slot 3, outline suppressed
	r.Rect(10, 10, 5, 5)

	for y := 10; y < 15; y++ {
		for x := 10; x < 15; x++ {
			if got := mem.Pixel(x, y); got != 2 {
				t.Fatalf("pixel %d,%d: got %d, want 2", x, y, got)
			}
		}
	}
}

func TestOval(t *testing.T) {
	r, mem := newRenderer()
	mem.SetDrawColors(0x0032)
	r.Oval(80, 80, 21, 11)

	if got := mem.Pixel(80, 80); got != 1 {
		t.Errorf("center: got %d, want fill color 1", got)
	}
	if got := mem.Pixel(70, 80); got != 2 {
		t.Errorf("left extreme: got %d, want outline color 2", got)
	}
	if got := mem.Pixel(80, 75); got != 2 {
		t.Errorf("top extreme: got %d, want outline color 2", got)
	}
	if got := mem.Pixel(70, 75); got != 0 {
		t.Errorf("bounding box corner: got %d, want 0", got)
	}
}

func TestOvalOutlineOnly(t *testing.T) {
	r, mem := newRenderer()
	mem.SetDrawColors(0x0020)
	r.Oval(80, 80, 21, 21)

	if got := mem.Pixel(80, 80); got != 0 {
		t.Errorf("center filled despite transparent fill: got %d", got)
	}
	if got := mem.Pixel(70, 80); got != 1 {
		t.Errorf("outline missing: got %d", got)
	}
}

func TestBlit1BPP(t *testing.T) {
	r, mem := newRenderer()
	mem.SetDrawColors(0x0021) // pixel value 0 -> color 0, value 1 -> color 1

	// Single row: 0b10010000
	r.Blit([]byte{0x90}, 0, 0, 8, 1, api.Blit1BPP)

	want := []byte{1, 0, 0, 1, 0, 0, 0, 0}
	for x, w := range want {
		if got := mem.Pixel(x, 0); got != w {
			t.Errorf("pixel %d: got %d, want %d", x, got, w)
		}
	}
}

func TestBlit2BPP(t *testing.T) {
	r, mem := newRenderer()
	mem.SetDrawColors(0x4321) // identity mapping for values 0-3

	// 2x2 sprite, one byte, MSB first: 0b00_01_10_11
	r.Blit([]byte{0x1B}, 0, 0, 2, 2, api.Blit2BPP)

	tests := []struct {
		x, y int
		want byte
	}{
		{0, 0, 0}, {1, 0, 1}, {0, 1, 2}, {1, 1, 3},
	}
	for _, test := range tests {
		if got := mem.Pixel(test.x, test.y); got != test.want {
			t.Errorf("pixel %d,%d: got %d, want %d", test.x, test.y, got, test.want)
		}
	}
}

func TestBlitTransparentSlot(t *testing.T) {
	r, mem := newRenderer()
	mem.SetPixel(0, 0, 3)
	mem.SetPixel(1, 0, 3)
	mem.SetDrawColors(0x0201) // value 1 transparent

	r.Blit([]byte{0x40}, 0, 0, 2, 1, api.Blit1BPP) // 0b01...

	if got := mem.Pixel(0, 0); got != 0 {
		t.Errorf("opaque pixel: got %d, want 0", got)
	}
	if got := mem.Pixel(1, 0); got != 3 {
		t.Errorf("transparent pixel overwritten: got %d, want 3", got)
	}
}

func blitPixels(t *testing.T, flags uint32) [2][2]byte {
	t.Helper()
	r, mem := newRenderer()
	mem.SetDrawColors(0x4321)

	// 0b00_01_10_11: distinct value per pixel.
	r.Blit([]byte{0x1B}, 0, 0, 2, 2, api.Blit2BPP|flags)

	var out [2][2]byte
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			out[y][x] = mem.Pixel(x, y)
		}
	}
	return out
}

func TestBlitFlips(t *testing.T) {
	base := blitPixels(t, 0)

	t.Run("FlipH", func(t *testing.T) {
		got := blitPixels(t, api.BlitFlipH)
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				if got[y][x] != base[y][1-x] {
					t.Fatalf("column order not mirrored at %d,%d", x, y)
				}
			}
		}
	})

	t.Run("FlipHV", func(t *testing.T) {
		got := blitPixels(t, api.BlitFlipH|api.BlitFlipV)
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				if got[y][x] != base[1-y][1-x] {
					t.Fatalf("both flips do not equal a 180 degree rotation at %d,%d", x, y)
				}
			}
		}
	})

	t.Run("Rotate", func(t *testing.T) {
		got := blitPixels(t, api.BlitRotate)
		// 90 degrees counterclockwise: the top-right source pixel
		// becomes the top-left destination pixel.
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				if got[y][x] != base[x][1-y] {
					t.Fatalf("rotation mismatch at %d,%d: got %d", x, y, got[y][x])
				}
			}
		}
	})
}

func TestBlitClipped(t *testing.T) {
	r, mem := newRenderer()
	mem.SetDrawColors(0x4321)

	sprite := []byte{0xFF, 0xFF, 0xFF, 0xFF} // 4x4 2bpp, all value 3
	r.Blit(sprite, -2, -2, 4, 4, api.Blit2BPP)
	r.Blit(sprite, 158, 158, 4, 4, api.Blit2BPP)

	if mem.Pixel(0, 0) != 3 || mem.Pixel(1, 1) != 3 {
		t.Error("top-left clip lost visible pixels")
	}
	if mem.Pixel(158, 158) != 3 || mem.Pixel(159, 159) != 3 {
		t.Error("bottom-right clip lost visible pixels")
	}
}

func TestBlitSubStride(t *testing.T) {
	r, mem := newRenderer()
	mem.SetDrawColors(0x4321)

	// 4x2 2bpp atlas, rows 0b00_01_10_11 and 0b11_10_01_00.
	atlas := []byte{0x1B, 0xE4}
	r.BlitSub(atlas, 0, 0, 2, 2, 2, 0, 4, api.Blit2BPP)

	tests := []struct {
		x, y int
		want byte
	}{
		{0, 0, 2}, {1, 0, 3}, {0, 1, 1}, {1, 1, 0},
	}
	for _, test := range tests {
		if got := mem.Pixel(test.x, test.y); got != test.want {
			t.Errorf("pixel %d,%d: got %d, want %d", test.x, test.y, got, test.want)
		}
	}
}

func TestText(t *testing.T) {
	ra, memA := newRenderer()
	memA.SetDrawColors(0x0012)
	ra.Text([]byte("A"), 4, 4)

	rb, memB := newRenderer()
	memB.SetDrawColors(0x0012)
	rb.Blit(fontROM[(int('A')-firstGlyph)*GlyphSize:], 4, 4, GlyphSize, GlyphSize, 0)

	framebufferEqual(t, memA, memB)
}

func TestTextNewline(t *testing.T) {
	ra, memA := newRenderer()
	memA.SetDrawColors(0x0012)
	ra.Text([]byte("A\nB"), 4, 4)

	rb, memB := newRenderer()
	memB.SetDrawColors(0x0012)
	rb.Text([]byte("A"), 4, 4)
	rb.Text([]byte("B"), 4, 4+GlyphSize)

	framebufferEqual(t, memA, memB)
}

func TestTextAdvance(t *testing.T) {
	ra, memA := newRenderer()
	memA.SetDrawColors(0x0012)
	ra.Text([]byte("AB"), 0, 0)

	rb, memB := newRenderer()
	memB.SetDrawColors(0x0012)
	rb.Text([]byte("A"), 0, 0)
	rb.Text([]byte("B"), GlyphSize, 0)

	framebufferEqual(t, memA, memB)
}
