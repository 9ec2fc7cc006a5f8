// Shared helpers for quartz CLI commands.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/quartz/internal/catalog"
	"github.com/mesh-intelligence/quartz/pkg/xtal"
)

// attachCatalog resolves the data directory and attaches the crystal
// catalog. The caller must defer cat.Detach().
func attachCatalog() (*catalog.Catalog, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cat := catalog.New()
	if err := cat.Attach(dataDir); err != nil {
		return nil, fmt.Errorf("attach catalog: %w", err)
	}

	return cat, nil
}

// parseFreqArg parses a command-line frequency argument, wrapping parse
// failures with the offending argument for the user.
func parseFreqArg(arg string) (float64, error) {
	hz, err := xtal.ParseFrequency(arg)
	if err != nil {
		return 0, fmt.Errorf("argument %q: %w", arg, err)
	}
	return hz, nil
}
