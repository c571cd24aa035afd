// Package dialect loads declarative dialect descriptions and builds the
// inventory and grammar for one dialect. Descriptions are YAML files; a
// dialect is loaded once at startup and read-only afterward.
package dialect

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/accentcoach/phonology-go/grammar"
	"github.com/accentcoach/phonology-go/inventory"
	"github.com/accentcoach/phonology-go/phone"
)

// Dialect is a loaded, immutable dialect: its inventory plus its grammar.
type Dialect struct {
	Name      string
	Inventory *inventory.Inventory
	Grammar   *grammar.Grammar
}

// description mirrors the YAML schema.
type description struct {
	Name      string `yaml:"name"`
	Inventory struct {
		Consonants []string          `yaml:"consonants"`
		Vowels     []string          `yaml:"vowels"`
		Diphthongs []string          `yaml:"diphthongs"`
		Allophones map[string]string `yaml:"allophones"`
		Aliases    map[string]string `yaml:"aliases"`
	} `yaml:"inventory"`
	Rules []ruleDesc `yaml:"rules"`
}

type ruleDesc struct {
	Name     string   `yaml:"name"`
	Inputs   []string `yaml:"inputs"`
	Outputs  []string `yaml:"outputs"`
	Left     string   `yaml:"left"`
	Right    string   `yaml:"right"`
	Order    int      `yaml:"order"`
	Optional bool     `yaml:"optional"`
	Register string   `yaml:"register"`
}

// Load reads a YAML dialect description and builds the dialect.
// Construction errors (unknown allophone base, bad rule shape, bad context
// pattern) fail here, eagerly.
func Load(r io.Reader) (*Dialect, error) {
	var desc description
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil {
		return nil, fmt.Errorf("decode dialect: %w", err)
	}
	return build(&desc)
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dialect, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}
	return d, nil
}

func build(desc *description) (*Dialect, error) {
	inv := inventory.New()
	for _, sets := range [][]string{desc.Inventory.Consonants, desc.Inventory.Vowels, desc.Inventory.Diphthongs} {
		for _, s := range sets {
			inv.AddPhoneme(phone.Phone(s))
		}
	}
	for allo, base := range desc.Inventory.Allophones {
		if err := inv.AddAllophone(phone.Phone(allo), phone.Phone(base)); err != nil {
			return nil, fmt.Errorf("dialect %q: %w", desc.Name, err)
		}
	}
	for from, to := range desc.Inventory.Aliases {
		inv.AddAlias(phone.Phone(from), phone.Phone(to))
	}

	rules := make([]*grammar.Rule, 0, len(desc.Rules))
	for _, rd := range desc.Rules {
		r, err := grammar.NewRule(grammar.Spec{
			Name:         rd.Name,
			Inputs:       rd.Inputs,
			Outputs:      rd.Outputs,
			LeftContext:  rd.Left,
			RightContext: rd.Right,
			Order:        rd.Order,
			Optional:     rd.Optional,
			Register:     grammar.Register(rd.Register),
		})
		if err != nil {
			return nil, fmt.Errorf("dialect %q: %w", desc.Name, err)
		}
		rules = append(rules, r)
	}

	return &Dialect{
		Name:      desc.Name,
		Inventory: inv,
		Grammar:   grammar.New(rules, inv),
	}, nil
}

//go:embed spanish.yaml
var spanishYAML []byte

// Default returns the built-in general Spanish dialect. The description is
// embedded, so the engine works without any asset files.
func Default() (*Dialect, error) {
	return Load(bytes.NewReader(spanishYAML))
}
