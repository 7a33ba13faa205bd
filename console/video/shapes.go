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

// Line draws a segment between two points with draw color 1.
func (r *Renderer) Line(x1, y1, x2, y2 int) {
	dc := r.mem.DrawColor(1)
	if dc == 0 {
		return
	}
	color := (dc - 1) & 0x3

	// Normalize so the line always walks downwards.
	if y1 > y2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	dy := y2 - y1

	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}

	for {
		r.drawPointClipped(color, x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x1 += sx
		}
		if e2 < dy {
			err += dx
			y1++
		}
	}
}

// HLine draws length pixels rightwards from x,y with draw color 1.
// Produces the same pixel set as Line(x, y, x+length-1, y).
func (r *Renderer) HLine(x, y int, length uint32) {
	dc := r.mem.DrawColor(1)
	if dc == 0 || length == 0 || y < 0 || y >= screenSize {
		return
	}

	startX := max(0, x)
	endX := min(screenSize, x+int(length))
	if startX >= endX {
		return
	}
	r.drawSpan((dc-1)&0x3, startX, endX, y)
}

// VLine draws length pixels downwards from x,y with draw color 1.
// Produces the same pixel set as Line(x, y, x, y+length-1).
func (r *Renderer) VLine(x, y int, length uint32) {
	dc := r.mem.DrawColor(1)
	if dc == 0 || length == 0 || x < 0 || x >= screenSize {
		return
	}

	startY := max(0, y)
	endY := min(screenSize, y+int(length))
	color := (dc - 1) & 0x3
	for yy := startY; yy < endY; yy++ {
		r.drawPoint(color, x, yy)
	}
}

// Rect draws a width*height rectangle with its top-left corner at x,y.
// Draw color 1 fills the interior, draw color 2 strokes the border. A zero
// nibble suppresses the respective part.
func (r *Renderer) Rect(x, y int, width, height uint32) {
	w, h := int(width), int(height)
	if w <= 0 || h <= 0 {
		return
	}

	startX := max(0, x)
	startY := max(0, y)
	endX := min(screenSize, x+w)
	endY := min(screenSize, y+h)
	if startX >= endX || startY >= endY {
		return
	}

	if fill := r.mem.DrawColor(1); fill != 0 {
		color := (fill - 1) & 0x3
		for yy := startY; yy < endY; yy++ {
			r.drawSpan(color, startX, endX, yy)
		}
	}

	stroke := r.mem.DrawColor(2)
	if stroke == 0 {
		return
	}
	color := (stroke - 1) & 0x3

	if x >= 0 { // left edge on screen
		for yy := startY; yy < endY; yy++ {
			r.drawPoint(color, x, yy)
		}
	}
	if x+w <= screenSize { // right edge on screen
		for yy := startY; yy < endY; yy++ {
			r.drawPoint(color, x+w-1, yy)
		}
	}
	if y >= 0 {
		r.drawSpan(color, startX, endX, y)
	}
	if y+h <= screenSize {
		r.drawSpan(color, startX, endX, y+h-1)
	}
}

// Oval draws an ellipse centered at x,y inside a width*height bounding
// box. Draw color 1 fills, draw color 2 outlines.
func (r *Renderer) Oval(x, y int, width, height uint32) {
	w, h := int(width), int(height)
	if w <= 0 || h <= 0 {
		return
	}

	fill := r.mem.DrawColor(1)
	stroke := r.mem.DrawColor(2)
	if fill == 0 && stroke == 0 {
		return
	}

	x0 := x - w/2
	y0 := y - h/2

	// Inside test in doubled coordinates so even sized boxes keep the
	// ellipse symmetric around the pixel grid.
	a, b := w-1, h-1
	inside := func(px, py int) bool {
		if px < 0 || px >= w || py < 0 || py >= h {
			return false
		}
		dx := 2*px - a
		dy := 2*py - b
		return dx*dx*b*b+dy*dy*a*a <= a*a*b*b
	}

	if fill != 0 {
		color := (fill - 1) & 0x3
		for py := 0; py < h; py++ {
			for px := 0; px < w; px++ {
				if inside(px, py) {
					r.drawPointClipped(color, x0+px, y0+py)
				}
			}
		}
	}

	if stroke != 0 {
		color := (stroke - 1) & 0x3
		for py := 0; py < h; py++ {
			for px := 0; px < w; px++ {
				if !inside(px, py) {
					continue
				}
				if !inside(px-1, py) || !inside(px+1, py) || !inside(px, py-1) || !inside(px, py+1) {
					r.drawPointClipped(color, x0+px, y0+py)
				}
			}
		}
	}
}
