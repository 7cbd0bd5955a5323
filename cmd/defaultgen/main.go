package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"

	"defaultgen"
	"defaultgen/sink"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate the default-instance factory."`
	Check   CheckCmd   `cmd:"" help:"Run generation without writing files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Packages []string `arg:"" optional:"" help:"Package patterns to scan (default \".\")."`
	Config   string   `help:"Path to a defaultgen.yaml config file." short:"c" type:"existingfile"`
	Out      string   `help:"Output directory (default: the factory's package directory)." short:"o"`
	Dump     bool     `help:"Dump the generated dispatch unit to stderr."`
}

func (c *GenCmd) Run() error {
	cfg, err := buildConfig(c.Config, c.Packages, c.Out)
	if err != nil {
		return err
	}
	res, err := defaultgen.Generate(context.Background(), cfg)
	if err != nil {
		return err
	}
	if c.Dump && res.Unit != nil {
		spew.Fdump(os.Stderr, res.Unit)
	}
	if res.Skipped {
		return nil
	}
	fmt.Printf("wrote %s\n", res.Path)
	return nil
}

type CheckCmd struct {
	Packages []string `arg:"" optional:"" help:"Package patterns to scan (default \".\")."`
	Config   string   `help:"Path to a defaultgen.yaml config file." short:"c" type:"existingfile"`
}

func (c *CheckCmd) Run() error {
	cfg, err := buildConfig(c.Config, c.Packages, "")
	if err != nil {
		return err
	}
	mem := sink.NewMemorySink()
	res, err := defaultgen.GenerateTo(context.Background(), cfg, mem)
	if err != nil {
		return err
	}
	if res.Skipped {
		return nil
	}
	fmt.Printf("ok: %s (%d bytes, %d branches)\n", res.Path, len(mem.Get(res.Path)), len(res.Unit.Branches))
	return nil
}

// buildConfig layers CLI flags over an optional config file.
func buildConfig(path string, packages []string, out string) (*defaultgen.Config, error) {
	cfg := &defaultgen.Config{}
	if path != "" {
		loaded, err := defaultgen.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if len(packages) > 0 {
		cfg.Packages = packages
	}
	if len(cfg.Packages) == 0 {
		cfg.Packages = []string{"."}
	}
	if out != "" {
		cfg.OutDir = out
	}
	return cfg, nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("defaultgen"),
		kong.Description("Generates a factory returning default-populated instances of registered types."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
