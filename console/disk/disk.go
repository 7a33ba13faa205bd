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
	"log"
	"sync"

	"github.com/spf13/afero"
)

// Capacity is the total size of persistent storage in bytes.
const Capacity = 1024

// Store is the flat persistent save area. Reads and writes always address
// the store from its start; writes are idempotent overwrites of the
// prefix. Short transfer counts are normal results, never errors. Backing
// file problems degrade to a memory-only store with a log line so a
// cartridge never observes a failure.
type Store struct {
	mu     sync.Mutex
	fs     afero.Fs
	path   string
	data   [Capacity]byte
	loaded bool
}

// NewStore creates a store persisted at path on fs. A nil fs keeps the
// store in memory only.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

func (s *Store) load() {
	if s.loaded {
		return
	}
	s.loaded = true
	if s.fs == nil {
		return
	}
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		// Missing save file is the common first-run case.
		return
	}
	copy(s.data[:], data)
}

func (s *Store) flush() {
	if s.fs == nil {
		return
	}
	if err := afero.WriteFile(s.fs, s.path, s.data[:], 0644); err != nil {
		log.Printf("disk: cannot persist save data: %v", err)
	}
}

// Read copies up to Capacity bytes from the start of the store into dest
// and returns the number of bytes transferred.
func (s *Store) Read(dest []byte) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.load()
	n := len(dest)
	if n > Capacity {
		n = Capacity
	}
	copy(dest[:n], s.data[:n])
	return uint32(n)
}

// Write copies up to Capacity bytes from src to the start of the store
// and returns the number of bytes transferred.
func (s *Store) Write(src []byte) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.load()
	n := len(src)
	if n > Capacity {
		n = Capacity
	}
	copy(s.data[:n], src[:n])
	s.flush()
	return uint32(n)
}
