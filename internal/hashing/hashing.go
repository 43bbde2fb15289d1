// Package hashing provides duplicate detection for chess positions.
package hashing

import (
	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/fen"
)

// DuplicateChecker is implemented by DuplicateDetector and ThreadSafeDuplicateDetector.
type DuplicateChecker interface {
	CheckAndAdd(board chess.Board, rec fen.Record) bool
	DuplicateCount() int
	UniqueCount() int
	IsFull() bool
}

// DuplicateDetector tracks seen positions for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist key
	hashTable map[uint64][]PositionSignature
	// useExactMatch also requires equal move clocks
	useExactMatch bool
	// maxCapacity bounds the number of stored signatures, 0 means unlimited
	maxCapacity int
	count       int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist key of the position
	Hash uint64
	// WeakHash is a fast checksum for a second opinion on key collisions
	WeakHash uint32
	Halfmove int
	Fullmove int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]PositionSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of a board and its FEN bookkeeping.
func Signature(board chess.Board, rec fen.Record) PositionSignature {
	return PositionSignature{
		Hash:     GenerateZobristHash(board, rec),
		WeakHash: WeakHash(board),
		Halfmove: rec.Halfmove,
		Fullmove: rec.Fullmove,
	}
}

// CheckAndAdd checks if a position is a duplicate and adds it to the hash table.
// Returns true if the position is a duplicate. Once the detector is full, new
// positions are still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(board chess.Board, rec fen.Record) bool {
	sig := Signature(board, rec)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.count++
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && (a.Halfmove != b.Halfmove || a.Fullmove != b.Fullmove) {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of stored positions.
func (d *DuplicateDetector) UniqueCount() int {
	return d.count
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.count >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.count = 0
	d.duplicateCount = 0
}
