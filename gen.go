// Package defaultgen generates a default-instance factory: given a
// factory interface and a registry of annotated types, it synthesizes
// a construction expression for a default-populated value of each type
// and emits a dispatch table mapping runtime type tokens to those
// expressions as generated Go source.
package defaultgen

import (
	"context"
	"fmt"
	"os"

	"defaultgen/dispatch"
	"defaultgen/emit"
	"defaultgen/ir"
	"defaultgen/provider"
	"defaultgen/sink"
	"defaultgen/synth"
)

// Result describes one generation run.
type Result struct {
	// Skipped is true when no factory interface was discovered.
	// That is a no-op, not an error: runtime absence of a dispatch
	// branch fails loudly, build-time absence of a factory does not.
	Skipped bool

	// Path is the written file's sink-relative path.
	Path string

	// Unit is the generated unit, nil when skipped.
	Unit *dispatch.Unit

	// Warnings are all diagnostics collected during the run.
	Warnings []ir.Warning
}

// Generate runs a full generation pass and writes the generated file
// into the factory's package directory (or cfg.OutDir when set).
func Generate(ctx context.Context, cfg *Config) (*Result, error) {
	return generate(ctx, cfg, nil)
}

// GenerateTo is Generate with an explicit output sink. Used for dry
// runs and tests.
func GenerateTo(ctx context.Context, cfg *Config, out sink.OutputSink) (*Result, error) {
	if out == nil {
		return nil, fmt.Errorf("defaultgen: nil sink")
	}
	return generate(ctx, cfg, out)
}

// generate is the single synchronous pass: one discovery step, one
// synthesis pass per registry entry, one emission step.
func generate(ctx context.Context, cfg *Config, out sink.OutputSink) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	discovered, err := provider.Load(ctx, provider.Options{Patterns: cfg.Packages, Dir: cfg.Dir})
	if err != nil {
		return nil, err
	}
	return build(ctx, discovered, cfg, out)
}

// build assembles, emits and writes the unit for a discovery result.
// Discovery warnings reach stderr even when synthesis fails, so a
// failing run keeps its diagnostics.
func build(ctx context.Context, discovered *provider.Result, cfg *Config, out sink.OutputSink) (*Result, error) {
	if discovered.Factory == nil {
		fmt.Fprintln(os.Stderr, "defaultgen: no factory interface found; nothing to generate")
		reportWarnings(discovered.Warnings)
		return &Result{Skipped: true, Warnings: discovered.Warnings}, nil
	}

	unit, err := dispatch.Generate(discovered.Factory, discovered.Registry, synth.New(nil))
	if err != nil {
		reportWarnings(discovered.Warnings)
		return nil, err
	}
	unit.Warnings = append(discovered.Warnings, unit.Warnings...)

	if out == nil {
		dir := cfg.OutDir
		if dir == "" {
			dir = discovered.Factory.Package.Dir
		}
		out = sink.NewFilesystemSink(dir)
	}

	path, emitWarnings, err := emit.Write(ctx, unit, out)
	if err != nil {
		return nil, err
	}
	unit.Warnings = append(unit.Warnings, emitWarnings...)

	reportWarnings(unit.Warnings)
	return &Result{Path: path, Unit: unit, Warnings: unit.Warnings}, nil
}

func reportWarnings(warnings []ir.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", w.Code, w.Message)
	}
}
