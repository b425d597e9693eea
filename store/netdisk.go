package store

import (
	"fmt"
	"sync"

	"github.com/comparative-genomics/cactusgraph/name"
)

// NetDisk is the persistence interface the cactus object graph consumes for
// Name issuance and opaque sequence-string storage (spec §6 "Persistence
// store (consumed)"). It is never reimplemented against a real backing
// store here; MemDisk below is the in-memory reference used by tests and
// cmd/cactusref.
type NetDisk interface {
	// GetUniqueID returns a fresh, process-lifetime-unique Name.
	GetUniqueID() name.Name
	// AddString stores data and returns the offset it can later be
	// retrieved from.
	AddString(data []byte) (offset int64)
	// GetString retrieves length bytes starting at start within the string
	// stored at offset, optionally reverse-complementing if strand is
	// false.
	GetString(offset int64, start, length int32, strand bool) ([]byte, error)
}

// MemDisk is an in-memory NetDisk backed by a Name source and a slice of
// byte-string records, sufficient for tests and the example binary — no
// production on-disk backend is in scope (spec.md Non-goals).
type MemDisk struct {
	mu      sync.Mutex
	source  name.Source
	strings [][]byte
}

// NewMemDisk returns a ready-to-use MemDisk issuing Names from src.
func NewMemDisk(src name.Source) *MemDisk {
	return &MemDisk{source: src}
}

// GetUniqueID implements NetDisk.
func (m *MemDisk) GetUniqueID() name.Name {
	return m.source.Next()
}

// AddString implements NetDisk, appending data and returning its index as
// the offset.
func (m *MemDisk) AddString(data []byte) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.strings = append(m.strings, cp)
	return int64(len(m.strings) - 1)
}

// GetString implements NetDisk.
func (m *MemDisk) GetString(offset int64, start, length int32, strand bool) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if offset < 0 || int(offset) >= len(m.strings) {
		return nil, fmt.Errorf("store: offset %d out of range", offset)
	}
	data := m.strings[offset]
	if start < 0 || int(start+length) > len(data) {
		return nil, fmt.Errorf("store: requested range [%d,%d) out of bounds for string of length %d", start, start+length, len(data))
	}
	out := make([]byte, length)
	copy(out, data[start:start+length])
	if !strand {
		reverseComplement(out)
	}
	return out, nil
}

func reverseComplement(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = complement(b[j]), complement(b[i])
	}
	if len(b)%2 == 1 {
		mid := len(b) / 2
		b[mid] = complement(b[mid])
	}
}

func complement(c byte) byte {
	switch c {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	default:
		return c
	}
}
