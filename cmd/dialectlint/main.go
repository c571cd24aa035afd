package main

import (
	"fmt"
	"os"

	"github.com/accentcoach/phonology-go/dialect"
	"github.com/accentcoach/phonology-go/phone"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: dialectlint <dialect.yaml> [...]")
		fmt.Fprintln(os.Stderr, "  Validates dialect description files and reports their contents.")
		os.Exit(1)
	}

	failures := 0
	for _, path := range os.Args[1:] {
		d, err := dialect.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failures++
			continue
		}

		unknown := lintInventory(path, d)
		fmt.Printf("%s: ok (%s, %d phonemes, %d rules, %d feature gaps)\n",
			path, d.Name, d.Inventory.Size(), len(d.Grammar.Rules()), unknown)
	}

	if failures > 0 {
		os.Exit(1)
	}
}

// lintInventory warns about inventory members the feature tables cannot
// describe. Such members still resolve, but every distance against them
// is maximal.
func lintInventory(path string, d *dialect.Dialect) int {
	unknown := 0
	for _, p := range d.Inventory.Members() {
		if phone.ClassOf(p) == phone.ClassUnknown {
			fmt.Fprintf(os.Stderr, "%s: warning: %q has no articulatory features\n", path, p)
			unknown++
		}
	}
	return unknown
}
