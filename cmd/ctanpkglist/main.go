package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Jeff-Tian/LaTeX-Workshop/fs"
	lwhttp "github.com/Jeff-Tian/LaTeX-Workshop/http"
	lwslog "github.com/Jeff-Tian/LaTeX-Workshop/slog"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Catalog endpoint. Set before calling Run().
	CatalogURL string

	// Directory the completion tables are written to.
	OutputDir string

	// Path to the curated extras file.
	ExtrasPath string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CatalogURL: lwhttp.DefaultCatalogURL,
		OutputDir:  defaultOutputDir,
		ExtrasPath: fs.ExtrasFileName,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ctanpkglist"),
		kong.Description("Generate usepackage and documentclass completion data from CTAN and a local TeX installation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong. "help" would otherwise be taken
	// for the installation directory.
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	deps.Catalog = lwhttp.NewCatalogService(lwhttp.WithURL(m.CatalogURL))
	deps.Extras = fs.NewExtrasFile(m.ExtrasPath)
	deps.Store = fs.NewTableStore(m.OutputDir)

	if os.Getenv("CTANPKGLIST_DEBUG") != "" {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Catalog = lwslog.NewLoggingCatalogService(deps.Catalog, logger)
		deps.Store = lwslog.NewLoggingTableStore(deps.Store, logger)
	}

	cmd := &GenerateCmd{
		TexmfDir: cli.TexmfDir,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	TexmfDir string `arg:"" optional:"" default:"/usr/local/texlive/2019/texmf-dist" help:"Root of the TeX installation holding the ls-R file database"`
}

// defaultOutputDir matches where the editor extension expects its
// completion data.
const defaultOutputDir = "data"
