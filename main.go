package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"github.com/Aman-s12345/go-routedoc/internal/config"
	"github.com/Aman-s12345/go-routedoc/internal/doclet"
	"github.com/Aman-s12345/go-routedoc/internal/errors"
	"github.com/Aman-s12345/go-routedoc/internal/generator"
	"github.com/Aman-s12345/go-routedoc/internal/host"
	"github.com/Aman-s12345/go-routedoc/internal/logging"
	"github.com/Aman-s12345/go-routedoc/internal/paramtable"
	"github.com/Aman-s12345/go-routedoc/internal/source"
)

var errStale = errors.New(errors.KindConflict, "output is out of date")

// docletsDocument is the output of the doclets mode.
type docletsDocument struct {
	Doclets []*doclet.Doclet `json:"doclets" yaml:"doclets"`
}

func main() {
	def := config.Default()

	// cmd line flags
	var (
		configPath   = flag.String("config", "", "Path to configuration file (.json, .yaml or .hcl)")
		inputPath    = flag.String("input", def.InputPath, "Path to the doclet records (.yaml or .json)")
		outputPath   = flag.String("output", def.OutputPath, "Output file path")
		outputFormat = flag.String("format", def.OutputFormat, "Output format (json|yaml)")
		mode         = flag.String("mode", def.Mode, "What to write (doclets|openapi)")
		tableFormat  = flag.String("table", def.TableFormat, "Parameter table format (html|markdown|text)")
		serverURL    = flag.String("server", def.ServerURL, "Server URL")
		title        = flag.String("title", def.Title, "API title")
		version      = flag.String("version", def.Version, "API version")
		description  = flag.String("description", def.Description, "API description")
		workers      = flag.Int("workers", def.Workers, "Doclets processed at once (0 means one per CPU)")
		allowUnknown = flag.Bool("allow-unknown-tags", def.AllowUnknownTags, "Skip tags no plugin handles instead of failing")
		logLevel     = flag.String("log-level", def.LogLevel, "Log level (debug|info|warn|error)")
		logFormat    = flag.String("log-format", def.LogFormat, "Log format (text|json)")
		logTimes     = flag.Bool("log-timestamps", def.LogTimestamps, "Include timestamps in log lines")
		check        = flag.Bool("check", false, "Compare with the existing output file instead of writing it")
		help         = flag.Bool("h", false, "Show help")
	)
	flag.Parse()

	if *help {
		flag.PrintDefaults()
		return
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Flags given explicitly win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputPath = *inputPath
		case "output":
			cfg.OutputPath = *outputPath
		case "format":
			cfg.OutputFormat = *outputFormat
		case "mode":
			cfg.Mode = *mode
		case "table":
			cfg.TableFormat = *tableFormat
		case "server":
			cfg.ServerURL = *serverURL
		case "title":
			cfg.Title = *title
		case "version":
			cfg.Version = *version
		case "description":
			cfg.Description = *description
		case "workers":
			cfg.Workers = *workers
		case "allow-unknown-tags":
			cfg.AllowUnknownTags = *allowUnknown
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		case "log-timestamps":
			cfg.LogTimestamps = *logTimes
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logging.New(cfg.Logging())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	data, err := render(ctx, cfg, logger)
	if err != nil {
		stop()
		log.Fatalf("Failed to generate documentation: %v%s", err, formatAttrs(err))
	}

	if *check {
		if err := checkOutput(os.Stdout, cfg.OutputPath, data); err != nil {
			stop()
			if errors.Is(err, errStale) {
				fmt.Printf("%s is out of date\n", cfg.OutputPath)
				os.Exit(1)
			}
			log.Fatalf("Failed to check output: %v", err)
		}
		fmt.Printf("%s is up to date\n", cfg.OutputPath)
		return
	}

	if err := writeOutput(data, cfg.OutputPath); err != nil {
		stop()
		log.Fatalf("Failed to write output: %v", err)
	}
	// Verify the file was created
	if info, err := os.Stat(cfg.OutputPath); err == nil {
		fmt.Printf("Output file size: %d bytes\n", info.Size())
	} else {
		fmt.Printf("ERROR: Output file was not created: %v\n", err)
	}
}

// render loads the records, finalizes their doclets and encodes the result
// selected by cfg.Mode.
func render(ctx context.Context, cfg config.Config, logger *slog.Logger) ([]byte, error) {
	bundle, err := source.Load(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Loaded %d doclets from %s\n", len(bundle.Doclets), cfg.InputPath)

	builder, err := paramtable.New(cfg.TableFormat)
	if err != nil {
		return nil, err
	}
	registry, err := host.NewDefaultRegistry(builder, logger)
	if err != nil {
		return nil, err
	}
	processor := host.NewProcessor(registry, host.ProcessorConfig{
		Workers:          cfg.Workers,
		AllowUnknownTags: cfg.AllowUnknownTags,
	}, logger)

	doclets, err := processor.Process(ctx, bundle.Doclets)
	if err != nil {
		return nil, err
	}

	var out interface{}
	switch cfg.Mode {
	case config.ModeDoclets:
		out = docletsDocument{Doclets: doclets}
	case config.ModeOpenAPI:
		spec := generator.New(generator.Config{
			Title:       cfg.Title,
			Version:     cfg.Version,
			Description: cfg.Description,
			ServerURL:   cfg.ServerURL,
		}, logger).Generate(doclets)
		fmt.Printf("Generated %d paths\n", len(spec.Paths))
		out = spec
	default:
		return nil, errors.Errorf(errors.KindValidation, "unsupported mode: %s", cfg.Mode)
	}
	return encode(out, cfg.OutputFormat)
}

func encode(v interface{}, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case config.FormatJSON:
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return nil, errors.Wrap(err, errors.KindInternal, "failed to encode JSON")
		}
	case config.FormatYAML:
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return nil, errors.Wrap(err, errors.KindInternal, "failed to encode YAML")
		}
		if err := encoder.Close(); err != nil {
			return nil, errors.Wrap(err, errors.KindInternal, "failed to encode YAML")
		}
	default:
		return nil, errors.Errorf(errors.KindValidation, "unsupported format: %s (supported: json, yaml)", format)
	}
	return buf.Bytes(), nil
}

func writeOutput(data []byte, outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to create output directory")
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to write output file")
	}
	return nil
}

// checkOutput compares data with the file at outputPath and prints a unified
// diff to w when they differ. A missing file counts as empty.
func checkOutput(w io.Writer, outputPath string, data []byte) error {
	existing, err := os.ReadFile(outputPath)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, errors.KindInternal, "failed to read output file")
	}
	if bytes.Equal(existing, data) {
		return nil
	}

	diff, err := unifiedDiff(outputPath, existing, data)
	if err != nil {
		return err
	}
	fmt.Fprint(w, diff)
	return errStale
}

func unifiedDiff(name string, before, after []byte) (string, error) {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: name,
		ToFile:   name + " (generated)",
		Context:  3,
	})
	if err != nil {
		return "", errors.Wrap(err, errors.KindInternal, "failed to diff output")
	}
	return text, nil
}

func formatAttrs(err error) string {
	attrs := errors.GetAttributes(err)
	if len(attrs) == 0 {
		return ""
	}
	return fmt.Sprintf(" %v", attrs)
}
