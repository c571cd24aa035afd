package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	phonology "github.com/accentcoach/phonology-go"
	"github.com/accentcoach/phonology-go/compare"
	"github.com/accentcoach/phonology-go/dialect"
	"github.com/accentcoach/phonology-go/grammar"
	"github.com/accentcoach/phonology-go/internal/config"
	"github.com/accentcoach/phonology-go/internal/logging"
)

func main() {
	cfgPath := flag.String("config", "", "path to config file (YAML)")
	target := flag.String("target", "", "target transcription, e.g. /lobo/ or [loβo]")
	observed := flag.String("observed", "", "observed transcription")
	mode := flag.String("mode", "", "comparison mode: casual, objective or phonetic (overrides config)")
	verbose := flag.Bool("v", false, "verbose output")

	flag.Parse()

	if *target == "" || *observed == "" {
		fmt.Fprintln(os.Stderr, "Usage: phonscore -target /TRANSCRIPTION/ -observed [TRANSCRIPTION]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Scoring.Mode = *mode
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	logging.New(cfg.Log.Level, cfg.Log.Format)

	d, err := loadDialect(cfg.Dialect.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine, err := phonology.NewEngine(d,
		phonology.WithCollapseThreshold(cfg.Scoring.CollapseThreshold),
		phonology.WithDropUnknown(cfg.Scoring.DropUnknown),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Surface transcriptions are collapsed to the phonemic level so the
	// two sides always compare like against like.
	ref := toPhonemic(engine, *target, grammar.Mode(cfg.Scoring.Mode))
	hyp := toPhonemic(engine, *observed, grammar.Mode(cfg.Scoring.Mode))

	slog.Debug("comparing", "dialect", d.Name, "mode", cfg.Scoring.Mode,
		"target", ref.Phones, "observed", hyp.Phones)

	result, err := engine.Compare(ref, hyp, grammar.Mode(cfg.Scoring.Mode), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%.1f\n", result.Score)

	if *verbose {
		fmt.Fprintf(os.Stderr, "Session: %s\n", result.SessionID)
		fmt.Fprintf(os.Stderr, "PER: %.4f  Distance: %.4f\n", result.PER, result.Distance)
		if result.OOV.Unknown > 0 || result.OOV.Collapsed > 0 {
			fmt.Fprintf(os.Stderr, "OOV: %d collapsed, %d unknown of %d\n",
				result.OOV.Collapsed, result.OOV.Unknown, result.OOV.Total)
		}
		for _, op := range result.Ops {
			switch op.Op {
			case compare.OpEq:
				fmt.Fprintf(os.Stderr, "  =  %s\n", op.Ref)
			case compare.OpSub:
				fmt.Fprintf(os.Stderr, "  ~  %s -> %s\n", op.Ref, op.Hyp)
			case compare.OpIns:
				fmt.Fprintf(os.Stderr, "  +  %s\n", op.Hyp)
			case compare.OpDel:
				fmt.Fprintf(os.Stderr, "  -  %s\n", op.Ref)
			}
		}
		for _, s := range engine.SyllableBreakdown(result) {
			fmt.Fprintf(os.Stderr, "  syllable %d %v: %d/%d errors\n",
				s.Index+1, s.Phones, s.Errors, s.Total)
		}
	}
}

func loadDialect(path string) (*dialect.Dialect, error) {
	if path == "" {
		return dialect.Default()
	}
	return dialect.LoadFile(path)
}

// toPhonemic parses a transcription, collapsing bracketed surface forms
// through the dialect grammar first.
func toPhonemic(e *phonology.Engine, s string, mode grammar.Mode) phonology.Representation {
	if strings.HasPrefix(strings.TrimSpace(s), "[") {
		return e.Collapse(s, mode)
	}
	return e.ParseTranscription(s, phonology.LevelPhonemic)
}
