package model

import "testing"

func TestWindowWidths(t *testing.T) {
	w := NewWindow([]float64{-0.5, 0, 0.5})
	if w.Width() != 3 {
		t.Fatalf("Width = %d, want 3", w.Width())
	}
	if w.LeftWidth() != 1 {
		t.Fatalf("LeftWidth = %d, want 1", w.LeftWidth())
	}
	if w.RightWidth() != 1 {
		t.Fatalf("RightWidth = %d, want 1", w.RightWidth())
	}
}

func TestWindowCopiesCoefficients(t *testing.T) {
	src := []float64{1, 2, 3}
	w := NewWindow(src)
	src[0] = 99
	if w.Coefficients[0] != 1 {
		t.Fatalf("NewWindow did not copy: got %v", w.Coefficients[0])
	}
}

func TestWindowsMaxWidth(t *testing.T) {
	ws := NewWindows([]Window{
		NewWindow([]float64{1}),
		NewWindow([]float64{-0.5, 0, 0.5}),
		NewWindow([]float64{1, -2, 0, 2, -1}),
	})
	if ws.Len() != 3 {
		t.Fatalf("Len = %d, want 3", ws.Len())
	}
	if got := ws.MaxWidth(); got != 2 {
		t.Fatalf("MaxWidth = %d, want 2", got)
	}
	if len(ws.All()) != 3 {
		t.Fatalf("All() length = %d, want 3", len(ws.All()))
	}
	if ws.At(0).Width() != 1 {
		t.Fatalf("At(0).Width() = %d, want 1", ws.At(0).Width())
	}
}
