package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"
	"pkt.systems/onboard"
	"pkt.systems/onboard/internal/logging"
	"pkt.systems/onboard/pdf"
	"pkt.systems/version"
)

const (
	defaultOutDir = "public/onboarding"
	defaultWidth  = 80
	corePrefix    = "core:"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

var defaultFonts = map[string]string{
	"en": "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"ru": "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"zh": "/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
}

func init() {
	version.SetDefaultModule("pkt.systems/onboard")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var (
		outDir      string
		fontFlags   map[string]string
		contentPath string
		parallel    bool
		strict      bool
		verbose     bool
		showVersion bool
		previewLang string
		widthFlag   int
	)

	flags := pflag.NewFlagSet("onboard-pdf", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&outDir, "out-dir", "o", defaultOutDir, "Directory the PDFs are written to")
	flags.StringToStringVar(&fontFlags, "font", nil, "Font per language as lang=path.ttf or lang=core:Helvetica (repeatable)")
	flags.StringVar(&contentPath, "content", "", "YAML content table replacing the built-in one")
	flags.BoolVar(&parallel, "parallel", false, "Render the languages concurrently")
	flags.BoolVar(&strict, "strict", false, "Fail when text overflows its box instead of warning")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.StringVar(&previewLang, "preview", "", "Print the guide for a language as plain text and exit")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Preview width (0 uses terminal width if available)")
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: onboard-pdf [flags]\n")
		fmt.Fprintln(stderr, "\nRenders the supplier onboarding guides, one PDF per language.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		return exitUsage
	}
	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return exitOK
	}

	catalog, err := loadCatalog(contentPath)
	if err != nil {
		fmt.Fprintf(stderr, "onboard-pdf: %v\n", err)
		return exitFail
	}

	if previewLang != "" {
		set, err := catalog.Get(previewLang)
		if err != nil {
			fmt.Fprintf(stderr, "onboard-pdf: %v\n", err)
			return exitUsage
		}
		if err := onboard.WritePlainText(stdout, set, catalog.ContactLine(set), resolveWidth(widthFlag)); err != nil {
			fmt.Fprintf(stderr, "onboard-pdf: preview: %v\n", err)
			return exitFail
		}
		return exitOK
	}

	fonts, err := resolveFonts(fontFlags)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --font: %v\n", err)
		return exitUsage
	}

	logger, err := logging.New(logging.Options{Verbose: verbose})
	if err != nil {
		fmt.Fprintf(stderr, "onboard-pdf: logger: %v\n", err)
		return exitFail
	}
	defer func() { _ = logger.Sync() }()

	results, err := pdf.Generate(ctx, pdf.GenerateRequest{
		Catalog:  catalog,
		Fonts:    fonts,
		OutDir:   normalizePath(outDir),
		Config:   pdf.Config{Strict: strict},
		Parallel: parallel,
		Logger:   logger,
	})
	if err != nil {
		logger.Debug("generation failed", zap.Error(err))
		fmt.Fprintf(stderr, "onboard-pdf: %v\n", err)
		return exitFail
	}
	for _, r := range results {
		fmt.Fprintf(stdout, "%s: %d bytes\n", r.Name, r.Size)
	}
	return exitOK
}

func loadCatalog(path string) (*onboard.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return onboard.DefaultCatalog()
	}
	return onboard.LoadCatalogFile(normalizePath(path))
}

// resolveFonts overlays the --font values on the default font paths.
func resolveFonts(overrides map[string]string) (map[string]pdf.FontSpec, error) {
	merged := make(map[string]string, len(defaultFonts))
	for lang, path := range defaultFonts {
		merged[lang] = path
	}
	langs := make([]string, 0, len(overrides))
	for lang := range overrides {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		if _, ok := defaultFonts[lang]; !ok {
			return nil, fmt.Errorf("unknown language %q", lang)
		}
		value := strings.TrimSpace(overrides[lang])
		if value == "" {
			return nil, fmt.Errorf("%s: empty font", lang)
		}
		merged[lang] = value
	}
	specs := make(map[string]pdf.FontSpec, len(merged))
	for lang, value := range merged {
		specs[lang] = parseFontValue(value)
	}
	return specs, nil
}

func parseFontValue(value string) pdf.FontSpec {
	if family, ok := strings.CutPrefix(value, corePrefix); ok {
		return pdf.FontSpec{Family: family}
	}
	return pdf.FontSpec{Path: normalizePath(value)}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
