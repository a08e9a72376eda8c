// Command jbonsai reads full-context labels from a file, synthesizes a
// waveform from one or more voice files, and optionally writes it as a
// 16-bit PCM WAV file.
//
// Grounded on linuxmatters-jivetalking's cmd/jivetalking/main.go
// (kong-parsed CLI struct, styled summary print) and spec.md §6
// "CLI/driver... out of core scope".
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/htsengine/jbonsai"
	"github.com/htsengine/jbonsai/internal/cli"
	"github.com/htsengine/jbonsai/internal/wavio"
)

// CLI defines jbonsai's command-line interface.
type CLI struct {
	Voices []string `arg:"" name:"voices" help:"Voice files to load (interpolated equally if more than one)." type:"existingfile" required:""`
	Labels string   `short:"l" help:"Path to a file of full-context label lines." required:""`
	Out    string   `short:"o" help:"Path to write 16-bit PCM WAV output (omit to discard the waveform)."`

	Alpha          float64 `help:"Frequency warping factor." default:"0.42"`
	Stage          int     `help:"Vocoder stage: 0 for MLSA, >0 for MGLSA with that many cascade stages." default:"0"`
	MsdThreshold   float64 `help:"Multi-space-distribution voicing threshold." default:"0.5"`
	AllHalfTone    float64 `help:"Global log-F0 shift, in semitones." default:"0"`
	GVWeight       float64 `help:"Global Variance trade-off weight, applied uniformly to every stream (0 disables GV)." default:"0"`
	GVMaxIteration int     `help:"GV Newton-step iteration cap (0 selects the engine default)." default:"0"`
	Seed           int64   `help:"Unvoiced-noise RNG seed." default:"1"`
}

func main() {
	var c CLI
	kong.Parse(&c, kong.Name("jbonsai"), kong.Description("HMM-based statistical-parametric speech synthesis"))

	labels, err := readLabels(c.Labels)
	if err != nil {
		log.Fatal(cli.PrintError(err.Error()))
	}

	cfg := jbonsai.EngineConfig{
		AllHalfTone:    c.AllHalfTone,
		MsdThreshold:   c.MsdThreshold,
		Stage:          c.Stage,
		Alpha:          c.Alpha,
		GVMaxIteration: c.GVMaxIteration,
		ExcitationSeed: uint64(c.Seed),
		GvWeight:       []float64{0, c.GVWeight, c.GVWeight},
	}

	engine, err := jbonsai.Load(c.Voices, cfg)
	if err != nil {
		log.Fatal(cli.PrintError(err.Error()))
	}

	samples, err := engine.SynthesizeFromStrings(labels)
	if err != nil {
		log.Fatal(cli.PrintError(err.Error()))
	}

	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			log.Fatal(cli.PrintError(err.Error()))
		}
		defer f.Close()
		if err := wavio.WriteWAV(f, samples, engine.SampleRate()); err != nil {
			log.Fatal(cli.PrintError(err.Error()))
		}
	}

	fmt.Println(cli.RunSummary(c.Voices, len(labels), engine.SampleRate(), len(samples), c.Out))
}

func readLabels(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
