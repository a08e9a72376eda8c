// Package model's binary voice-file reader. Peripheral to the spec's core
// (MLPG/vocoder); implemented only to the documented interface (spec.md
// §6 "Voice file (binary, little-endian)").
//
// Grounded on original_source/src/model/model.rs, which used the Rust
// byteorder crate for the same little-endian reads; encoding/binary is the
// idiomatic Go equivalent (DESIGN.md).
package model

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// PDFBlock is one stream model's raw leaf-level record: per-tree pdf counts
// (NumPDF) and the packed (mean, variance, [msd-weight]) block (PDF).
type PDFBlock struct {
	VectorLength int
	NumWindows   int
	IsMSD        bool
	NumTrees     int
	NumPDF       []uint64
	PDF          []float64
}

// ReadPDFBlock reads one stream's leaf-level record from r, per spec.md §6:
// numTrees 64-bit unsigned tree sizes followed by a packed f64 block of
// length numTrees*numTrees*(vectorLength*numWindows*2 + (isMSD?1:0)).
func ReadPDFBlock(r io.Reader, numTrees, vectorLength, numWindows int, isMSD bool) (*PDFBlock, error) {
	numPDF := make([]uint64, numTrees)
	for i := range numPDF {
		if err := binary.Read(r, binary.LittleEndian, &numPDF[i]); err != nil {
			return nil, fmt.Errorf("model: reading tree size %d: %w", i, err)
		}
	}

	msd := 0
	if isMSD {
		msd = 1
	}
	blockLen := numTrees * numTrees * (vectorLength*numWindows*2 + msd)
	pdf := make([]float64, blockLen)
	for i := range pdf {
		var bits uint64
		if err := binary.Read(r, binary.LittleEndian, &bits); err != nil {
			return nil, fmt.Errorf("model: reading pdf value %d: %w", i, err)
		}
		v := math.Float64frombits(bits)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("model: non-finite pdf value at index %d", i)
		}
		pdf[i] = v
	}

	return &PDFBlock{
		VectorLength: vectorLength,
		NumWindows:   numWindows,
		IsMSD:        isMSD,
		NumTrees:     numTrees,
		NumPDF:       numPDF,
		PDF:          pdf,
	}, nil
}

// Leaf returns the window-major (mean, ivar-ready variance) parameters and
// MSD weight for the leaf at position offset in the packed block, counted
// in leaves (not bytes) from the start of the block.
func (b *PDFBlock) Leaf(offset int) ([]float64, float64) {
	perLeaf := b.VectorLength*b.NumWindows*2 + boolToInt(b.IsMSD)
	start := offset * perLeaf
	end := start + b.VectorLength*b.NumWindows*2
	params := b.PDF[start:end]
	weight := 1.0
	if b.IsMSD {
		weight = b.PDF[end]
	}
	return params, weight
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
