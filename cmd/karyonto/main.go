// Package main provides the karyonto binary entry point. Karyonto
// generates an OWL ontology of human chromosome structure (bands,
// centromeres, telomeres) from ISCN band nomenclature and serializes it
// to a standard exchange format.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cytogenlab/karyonto/band"
	"github.com/cytogenlab/karyonto/config"
	"github.com/cytogenlab/karyonto/event"
	"github.com/cytogenlab/karyonto/export"
	"github.com/cytogenlab/karyonto/ontology"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "karyonto"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		format     string
		output     string
		bandsDir   string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "karyonto",
		Short: "Human karyotype ontology generator",
		Long: `Karyonto builds a description-logic ontology of human chromosome
structure: per-chromosome band hierarchies with sub-band and disjointness
axioms, centromeres, telomeres, and the vocabulary for cytogenetic
rearrangement events (deletions, duplications, translocations, and the
other ISCN event kinds).

The band data ships built in at the 400-band ISCN resolution and can be
replaced by YAML band specification files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, format, output, bandsDir, logLevel)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (turtle, functional)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&bandsDir, "bands-dir", "", "Directory of YAML band spec files overriding built-in data")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "formats",
		Short: "List supported output formats",
		Run: func(cmd *cobra.Command, args []string) {
			for _, info := range export.FormatRegistry {
				fmt.Printf("%-12s %-24s %s\n", info.Name, info.MIMEType, info.Description)
			}
		},
	})

	return cmd
}

func run(configPath, format, output, bandsDir, logLevel string) error {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags override file config.
	if format != "" {
		cfg.Output.Format = format
	}
	if output != "" {
		cfg.Output.Path = output
	}
	if bandsDir != "" {
		cfg.Bands.Dir = bandsDir
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	version := cfg.Ontology.Version
	if version == "" {
		version = Version + "+" + uuid.NewString()
	}

	o := ontology.New(cfg.Ontology.IRI, version)
	builder := band.NewBuilder(o)

	if cfg.Bands.Dir != "" {
		specs, err := band.LoadSpecDir(cfg.Bands.Dir)
		if err != nil {
			return err
		}
		slog.Info("Building from band spec files",
			"dir", cfg.Bands.Dir,
			"chromosomes", len(specs))
		if err := builder.BuildFromSpecs(specs); err != nil {
			return err
		}
	} else {
		slog.Info("Building from built-in ISCN band data",
			"chromosomes", len(band.HumanChromosomes))
		if err := builder.BuildHuman(); err != nil {
			return err
		}
	}

	// Declare the event vocabulary so downstream karyotype descriptions
	// can reference it without rebuilding.
	event.New(builder)

	out, err := export.Serialize(o, export.Format(cfg.Output.Format))
	if err != nil {
		return err
	}

	slog.Info("Ontology built",
		"classes", len(o.Classes()),
		"properties", len(o.Properties()),
		"version", version)

	if cfg.Output.Path == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(cfg.Output.Path, []byte(out), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	slog.Info("Wrote ontology", "path", cfg.Output.Path, "format", cfg.Output.Format)
	return nil
}

func loadConfig(configPath string, logger *slog.Logger) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromFile(configPath)
	}
	return config.NewLoader(logger).Load()
}
