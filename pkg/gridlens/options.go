// Package gridlens infers structure in loosely organized spreadsheet
// workbooks and derives normalized tables and metrics from them.
package gridlens

import (
	"github.com/gridlens/gridlens-go/pkg/gridlens/metrics"
	"github.com/gridlens/gridlens-go/pkg/gridlens/parser"
)

// Mode represents the analysis depth.
type Mode string

const (
	// ModeLight detects structure only (no tables, no metrics).
	ModeLight Mode = "light"
	// ModeStandard detects structure and produces normalized tables with
	// per-column aggregates and domain metrics.
	ModeStandard Mode = "standard"
	// ModeVerbose additionally embeds each sheet's raw grid in the report
	// for raw browsing.
	ModeVerbose Mode = "verbose"
)

// Options configures analysis behavior.
type Options struct {
	// Mode specifies the analysis depth (light, standard, verbose).
	Mode Mode
	// Detection holds the structure-detection thresholds. The zero value
	// uses the documented defaults.
	Detection parser.DetectionParams
	// Rules declares the named domain metrics. Nil uses metrics.DefaultRules.
	Rules []metrics.Rule
	// HeaderOverrides pins the header row for specific sheets (by trimmed
	// sheet name), bypassing detection. This is the manual escape hatch when
	// a heuristic misfires.
	HeaderOverrides map[string]int
	// Strict makes Analyze fail with ErrStructureUnresolved when a sheet
	// yields neither a header row nor title-delimited sub-tables, instead of
	// degrading to synthetic column labels.
	Strict bool
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// rules returns the configured domain-metric rules, defaulting when unset.
func (o Options) rules() []metrics.Rule {
	if o.Rules != nil {
		return o.Rules
	}
	return metrics.DefaultRules()
}
