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

package disk

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
)

func TestReadWriteRoundtrip(t *testing.T) {
	s := NewStore(nil, "")

	src := []byte("high score: 9000")
	if n := s.Write(src); n != uint32(len(src)) {
		t.Fatalf("write returned %d, want %d", n, len(src))
	}

	dest := make([]byte, len(src))
	if n := s.Read(dest); n != uint32(len(dest)) {
		t.Fatalf("read returned %d, want %d", n, len(dest))
	}
	if !bytes.Equal(dest, src) {
		t.Errorf("read back %q, want %q", dest, src)
	}
}

func TestTransferClampedToCapacity(t *testing.T) {
	s := NewStore(nil, "")

	big := make([]byte, Capacity+512)
	for i := range big {
		big[i] = byte(i)
	}
	if n := s.Write(big); n != Capacity {
		t.Fatalf("oversized write returned %d, want %d", n, Capacity)
	}

	dest := make([]byte, Capacity+512)
	if n := s.Read(dest); n != Capacity {
		t.Fatalf("oversized read returned %d, want %d", n, Capacity)
	}
	if !bytes.Equal(dest[:Capacity], big[:Capacity]) {
		t.Error("stored prefix does not match written data")
	}
	for _, b := range dest[Capacity:] {
		if b != 0 {
			t.Fatal("read touched bytes past the capacity")
		}
	}
}

func TestShortWriteKeepsTail(t *testing.T) {
	s := NewStore(nil, "")

	full := make([]byte, Capacity)
	for i := range full {
		full[i] = 0xAA
	}
	s.Write(full)
	s.Write([]byte{1, 2, 3})

	dest := make([]byte, Capacity)
	s.Read(dest)
	if dest[0] != 1 || dest[1] != 2 || dest[2] != 3 {
		t.Error("short write did not land at the start")
	}
	for _, b := range dest[3:] {
		if b != 0xAA {
			t.Fatal("short write disturbed the tail")
		}
	}
}

func TestZeroLengthTransfers(t *testing.T) {
	s := NewStore(nil, "")
	if n := s.Write(nil); n != 0 {
		t.Errorf("nil write returned %d", n)
	}
	if n := s.Read(nil); n != 0 {
		t.Errorf("nil read returned %d", n)
	}
}

func TestPersistence(t *testing.T) {
	fs := afero.NewMemMapFs()

	s := NewStore(fs, "game.disk")
	s.Write([]byte("persist me"))

	s2 := NewStore(fs, "game.disk")
	dest := make([]byte, 10)
	s2.Read(dest)
	if string(dest) != "persist me" {
		t.Errorf("got %q after reload", dest)
	}
}

func TestMissingSaveFileReadsZeros(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), "nothing-here.disk")
	dest := []byte{0xFF, 0xFF}
	if n := s.Read(dest); n != 2 {
		t.Fatalf("read returned %d", n)
	}
	if dest[0] != 0 || dest[1] != 0 {
		t.Error("fresh store should read back zeros")
	}
}

func TestReadOnlyFsDegradesToMemory(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	s := NewStore(fs, "game.disk")
	if n := s.Write([]byte{42}); n != 1 {
		t.Fatalf("write returned %d", n)
	}

	dest := make([]byte, 1)
	s.Read(dest)
	if dest[0] != 42 {
		t.Error("store lost data when the backing file is unwritable")
	}
}
