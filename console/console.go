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

package console

import (
	"encoding/binary"
	"log"
	"time"

	"github.com/andreas-jonsson/virtual4/console/api"
	"github.com/andreas-jonsson/virtual4/console/audio"
	"github.com/andreas-jonsson/virtual4/console/disk"
	"github.com/andreas-jonsson/virtual4/console/memory"
	"github.com/andreas-jonsson/virtual4/console/video"
	"github.com/andreas-jonsson/virtual4/platform"
)

const ticksPerSecond = 60

type Config struct {
	// SavePath is the persistent storage file on the platform filesystem.
	SavePath string
}

// Console owns the mapped registers and implements the full host call
// surface on top of them. One cartridge runs at a time; all host calls
// happen on the frame loop goroutine.
type Console struct {
	mem      *memory.Region
	renderer *video.Renderer
	apu      *audio.APU
	store    *disk.Store
	platform platform.Platform

	backBuffer []byte
	audioBuf   []int16
	audioBytes []byte
}

func New(p platform.Platform, cfg Config) *Console {
	savePath := cfg.SavePath
	if savePath == "" {
		savePath = "virtual4.disk"
	}

	mem := memory.NewRegion()
	c := &Console{
		mem:        mem,
		renderer:   video.New(mem),
		apu:        audio.New(),
		store:      disk.NewStore(p.FileSystem(), savePath),
		platform:   p,
		backBuffer: make([]byte, memory.ScreenSize*memory.ScreenSize*4),
	}

	if p.HasAudio() {
		frames := p.AudioSpec().Freq / ticksPerSecond
		c.audioBuf = make([]int16, frames*2)
		c.audioBytes = make([]byte, frames*4)
	}
	return c
}

func (c *Console) Memory() *memory.Region {
	return c.mem
}

// Reset restores the power-on state of all registers.
func (c *Console) Reset() {
	c.mem.Reset()
}

// SetNetPlay publishes the multiplayer session state to the cartridge.
// The register is host owned; cartridges only read it.
func (c *Console) SetNetPlay(active bool, player int) {
	c.mem.SetNetPlay(active, player)
}

// Run drives cart at 60 frames per second until the platform asks to shut
// down.
func (c *Console) Run(cart api.Cartridge) {
	c.Reset()
	cart.Start(c)

	ticker := time.NewTicker(time.Second / ticksPerSecond)
	defer ticker.Stop()

	for !c.platform.ShutdownRequested() {
		<-ticker.C
		c.Step(cart)
	}
}

// Step runs a single frame: input registers are refreshed, the
// framebuffer is cleared unless the cartridge preserves it, the cartridge
// updates, and the result is presented.
func (c *Console) Step(cart api.Cartridge) {
	input := c.platform.Input()
	for i, pad := range input.Gamepads {
		c.mem.SetGamepad(i, pad)
	}
	c.mem.SetMouse(input.MouseX, input.MouseY, input.MouseButtons)

	if c.mem.SystemFlags()&memory.SystemPreserveFramebuffer == 0 {
		c.mem.ClearFramebuffer()
	}

	cart.Update(c)

	c.composite()
	c.platform.RenderGraphics(c.backBuffer)
	c.queueAudio()
}

// composite resolves the 2bpp framebuffer through the palette into the
// RGBA back buffer.
func (c *Console) composite() {
	var colors [4][3]byte
	for i := range colors {
		rgb := c.mem.PaletteColor(i)
		colors[i] = [3]byte{byte(rgb >> 16), byte(rgb >> 8), byte(rgb)}
	}

	fb := c.mem.Framebuffer()
	offset := 0
	for _, packed := range fb {
		for shift := uint(0); shift < 8; shift += 2 {
			rgb := &colors[(packed>>shift)&0x3]
			c.backBuffer[offset] = rgb[0]
			c.backBuffer[offset+1] = rgb[1]
			c.backBuffer[offset+2] = rgb[2]
			c.backBuffer[offset+3] = 0xFF
			offset += 4
		}
	}
}

func (c *Console) queueAudio() {
	if c.audioBuf == nil {
		return
	}
	c.apu.Render(c.audioBuf)
	for i, s := range c.audioBuf {
		binary.LittleEndian.PutUint16(c.audioBytes[i*2:], uint16(s))
	}
	c.platform.QueueAudio(c.audioBytes)
}

// Host call surface.

func (c *Console) Blit(sprite []byte, x, y int, width, height, flags uint32) {
	c.renderer.Blit(sprite, x, y, width, height, flags)
}

func (c *Console) BlitSub(sprite []byte, x, y int, width, height, srcX, srcY, stride, flags uint32) {
	c.renderer.BlitSub(sprite, x, y, width, height, srcX, srcY, stride, flags)
}

func (c *Console) Line(x1, y1, x2, y2 int) {
	c.renderer.Line(x1, y1, x2, y2)
}

func (c *Console) HLine(x, y int, length uint32) {
	c.renderer.HLine(x, y, length)
}

func (c *Console) VLine(x, y int, length uint32) {
	c.renderer.VLine(x, y, length)
}

func (c *Console) Oval(x, y int, width, height uint32) {
	c.renderer.Oval(x, y, width, height)
}

func (c *Console) Rect(x, y int, width, height uint32) {
	c.renderer.Rect(x, y, width, height)
}

func (c *Console) Text(text []byte, x, y int) {
	c.renderer.Text(text, x, y)
}

func (c *Console) Tone(frequency, duration, volume, flags uint32) {
	c.apu.Tone(frequency, duration, volume, flags)
}

func (c *Console) DiskR(dest []byte) uint32 {
	return c.store.Read(dest)
}

func (c *Console) DiskW(src []byte) uint32 {
	return c.store.Write(src)
}

// Trace prints a debug message outside the cartridge sandbox. Best
// effort.
func (c *Console) Trace(msg []byte) {
	log.Printf("trace: %s", msg)
}
