package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/geoforge/geoprofile/internal/config"
	"github.com/geoforge/geoprofile/internal/export"
	"github.com/geoforge/geoprofile/internal/profile"
	"github.com/geoforge/geoprofile/internal/refdata"
	"github.com/spf13/cobra"
)

var (
	genCount  int
	genOutput string
	genFormat string
	genLocale string
	genSeed   int64
	genMap    bool
	genPools  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate profiles and export them",
	Long: `
Generate N fictional profiles and write them to the requested formats.

Examples:
  geoprofile generate
  geoprofile generate -n 100 -f all -o customers
  geoprofile generate -n 50 -f json --map
  geoprofile generate -n 20 -s 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Flags override config file values.
		if cmd.Flags().Changed("num") {
			cfg.Count = genCount
		}
		if cmd.Flags().Changed("output") {
			cfg.Output = genOutput
		}
		if cmd.Flags().Changed("format") {
			cfg.Format = genFormat
		}
		if cmd.Flags().Changed("locale") {
			cfg.Locale = genLocale
		}
		if cmd.Flags().Changed("map") {
			cfg.Map = genMap
		}
		if cmd.Flags().Changed("pools") {
			cfg.PoolsFile = genPools
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		tables := refdata.Default()
		if cfg.PoolsFile != "" {
			pf, err := refdata.LoadPoolFile(cfg.PoolsFile)
			if err != nil {
				return err
			}
			if err := tables.ApplyPools(pf); err != nil {
				return fmt.Errorf("invalid pool overrides: %w", err)
			}
		}

		opts := profile.Options{MinAge: cfg.MinAge, MaxAge: cfg.MaxAge}
		if cmd.Flags().Changed("seed") {
			seed := genSeed
			opts.Seed = &seed
		}

		gen, err := profile.NewGenerator(tables, opts)
		if err != nil {
			return err
		}

		color.Cyan("🌍 Generating %d profiles...", cfg.Count)
		profiles := gen.Generate(cfg.Count)

		return export.Run(profiles, buildTargets(cfg))
	},
}

// buildTargets maps the requested format (plus the map flag) onto
// exporters and output paths.
func buildTargets(cfg *config.Config) []export.Target {
	var targets []export.Target
	want := func(format string) bool {
		return cfg.Format == format || cfg.Format == "all"
	}

	if want("csv") {
		targets = append(targets, export.Target{Exporter: export.CSV{}, Path: cfg.Output + ".csv"})
	}
	if want("excel") {
		targets = append(targets, export.Target{Exporter: export.Excel{}, Path: cfg.Output + ".xlsx"})
	}
	if want("json") {
		targets = append(targets, export.Target{Exporter: export.JSON{}, Path: cfg.Output + ".json"})
	}
	if want("sqlite") {
		targets = append(targets, export.Target{Exporter: export.SQLite{}, Path: cfg.Output + ".db"})
	}
	if cfg.Map {
		targets = append(targets, export.Target{Exporter: export.HTMLMap{}, Path: cfg.Output + "_map.html"})
	}
	return targets
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVarP(&genCount, "num", "n", 10, "Number of profiles to generate")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "profiles", "Output file name without extension")
	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "csv", "Output format (csv, excel, json, sqlite, all)")
	generateCmd.Flags().StringVarP(&genLocale, "locale", "l", config.SupportedLocale, "Locale for generated data")
	generateCmd.Flags().Int64VarP(&genSeed, "seed", "s", 0, "Random seed for reproducibility")
	generateCmd.Flags().BoolVarP(&genMap, "map", "m", false, "Create an interactive map visualization")
	generateCmd.Flags().StringVar(&genPools, "pools", "", "YAML file overriding reference pools")
}
