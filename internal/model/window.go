// Package model holds the voice-model data types: regression windows,
// per-frame stream parameters, decision trees and questions, and the
// immutable voice set those trees are searched against.
//
// Grounded on original_source/src/model/voice/window.rs and
// src/model/voice/*.
package model

// Window is an immutable regression-window coefficient vector. Each
// stream model reads and holds its own bank of windows from the voice
// file; windows are not shared between streams. Window index 0 is always
// the identity (static) window.
type Window struct {
	Coefficients []float64
}

// NewWindow copies coefficients into a Window.
func NewWindow(coefficients []float64) Window {
	cp := make([]float64, len(coefficients))
	copy(cp, coefficients)
	return Window{Coefficients: cp}
}

// Width returns the number of coefficients.
func (w Window) Width() int {
	return len(w.Coefficients)
}

// LeftWidth is the number of coefficients to the left of center.
func (w Window) LeftWidth() int {
	return w.Width() / 2
}

// RightWidth is the number of coefficients to the right of center.
func (w Window) RightWidth() int {
	return w.Width() - w.LeftWidth() - 1
}

// Windows is the ordered bank of regression windows for one stream.
type Windows struct {
	windows []Window
}

// NewWindows builds a Windows bank from individual windows.
func NewWindows(windows []Window) Windows {
	return Windows{windows: windows}
}

// Len returns the number of windows.
func (ws Windows) Len() int {
	return len(ws.windows)
}

// At returns the window at index i.
func (ws Windows) At(i int) Window {
	return ws.windows[i]
}

// All returns the underlying window slice for range iteration.
func (ws Windows) All() []Window {
	return ws.windows
}

// MaxWidth returns floor(max window width / 2), the half-bandwidth used to
// size the banded MLPG matrix (spec.md §4.D).
func (ws Windows) MaxWidth() int {
	max := 0
	for _, w := range ws.windows {
		if w.Width() > max {
			max = w.Width()
		}
	}
	return max / 2
}
