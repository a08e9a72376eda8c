package model

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

// writeTestVoice serializes a minimal single-stream, single-state voice in
// the layout ReadVoice expects, so the reader can be exercised without a
// real reference voice fixture.
func writeTestVoice(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer

	buf.WriteString("SAMPLING_FREQUENCY 16000\n")
	buf.WriteString("FRAME_PERIOD 80\n")
	buf.WriteString("NUM_STATES 1\n")
	buf.WriteString("GV 0\n")
	buf.WriteString("VECTOR_LENGTH[mgc] 2\n")
	buf.WriteString("NUM_WINDOWS[mgc] 1\n")
	buf.WriteString("IS_MSD[mgc] 0\n")
	buf.WriteString("\n") // end header

	buf.WriteString("QS_silence xx-sil+xx\n")
	buf.WriteString("\n") // end questions

	buf.WriteString("1.0\n") // window 0 (static, single coefficient)

	buf.WriteString("0 QS_silence leaf0 leaf0\n") // tree: one decision node, both branches to leaf 0
	buf.WriteString("\n")                 // end tree

	numTrees := 1
	vectorLength := 2
	numWindows := 1
	binary.Write(&buf, binary.LittleEndian, uint64(1)) // NumPDF[0]

	blockLen := numTrees * numTrees * (vectorLength*numWindows*2 + 0)
	for i := 0; i < blockLen; i++ {
		binary.Write(&buf, binary.LittleEndian, math.Float64bits(float64(i)+0.5))
	}

	return buf.Bytes()
}

func TestReadVoiceRoundTrip(t *testing.T) {
	data := writeTestVoice(t)
	v, err := ReadVoice(bytes.NewReader(data), []string{"mgc"})
	if err != nil {
		t.Fatalf("ReadVoice: %v", err)
	}

	if v.Metadata.SamplingFrequency != 16000 {
		t.Errorf("sampling frequency = %d, want 16000", v.Metadata.SamplingFrequency)
	}
	if v.Metadata.FramePeriod != 80 {
		t.Errorf("frame period = %d, want 80", v.Metadata.FramePeriod)
	}
	if v.Metadata.NumStates != 1 {
		t.Errorf("num states = %d, want 1", v.Metadata.NumStates)
	}
	if len(v.StreamModels) != 1 {
		t.Fatalf("expected 1 stream model, got %d", len(v.StreamModels))
	}

	sm := v.StreamModels[0]
	if sm.Metadata.VectorLength != 2 {
		t.Errorf("vector length = %d, want 2", sm.Metadata.VectorLength)
	}
	if sm.Windows.Len() != 1 {
		t.Fatalf("expected 1 window, got %d", sm.Windows.Len())
	}
	if sm.Windows.At(0).Width() != 1 {
		t.Errorf("window width = %d, want 1", sm.Windows.At(0).Width())
	}
	if len(sm.Trees) != 1 || len(sm.Trees[0].Nodes) != 1 {
		t.Fatalf("expected 1 tree with 1 node")
	}

	leaf, ok := sm.Trees[0].Search("xx-sil+xx")
	if !ok {
		t.Fatalf("tree search failed")
	}
	params, _ := sm.PDF.Leaf(leaf)
	if len(params) != 4 {
		t.Fatalf("expected 4 params (2 dims * 1 window * 2), got %d", len(params))
	}
	if params[0] != 0.5 {
		t.Errorf("params[0] = %v, want 0.5", params[0])
	}
}

func TestReadVoiceMissingHeaderKey(t *testing.T) {
	r := strings.NewReader("SAMPLING_FREQUENCY 16000\n\n")
	_, err := ReadVoice(r, []string{"mgc"})
	if err == nil {
		t.Fatalf("expected error for missing FRAME_PERIOD key")
	}
}
