package main

import (
	"math/rand"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/golang/geo/r2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tessera/config"
	"github.com/katalvlaran/tessera/heightmap"
	"github.com/katalvlaran/tessera/partition"
	"github.com/katalvlaran/tessera/sample"
)

func generateCmd() *cobra.Command {
	var (
		configPath string
		format     string
		flags      = config.Default()
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample sites, build the cell diagram and raise a heightmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return errors.New("loading config failed").
						WithTag("path", configPath).
						Wrap(err)
				}
			}
			overrideFromFlags(cmd, &cfg, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}

			setupLogs(cfg.LogLevel, cfg.LogIndent)

			res, err := generate(cfg)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), format, res)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML config file")
	f.StringVarP(&format, "format", "o", "text", "output format: text or json")
	f.Float64Var(&flags.Width, "width", flags.Width, "width of the sampled area")
	f.Float64Var(&flags.Height, "height", flags.Height, "height of the sampled area")
	f.Float64VarP(&flags.Radius, "radius", "r", flags.Radius, "minimum spacing between sites")
	f.IntVar(&flags.Relax, "relax", flags.Relax, "Lloyd relaxation iterations")
	f.Int64VarP(&flags.Seed, "seed", "s", flags.Seed, "random seed (0 = fixed default)")
	f.IntVar(&flags.Seeds, "seeds", flags.Seeds, "number of plate seeds")
	f.Float64Var(&flags.SeaLevel, "sea-level", flags.SeaLevel, "height at or above which a cell is land")
	f.IntVarP(&flags.Workers, "workers", "w", flags.Workers, "concurrent seed fills")
	f.BoolVar(&flags.Revisits, "revisits", flags.Revisits, "let fills revisit cells")
	f.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level")
	f.BoolVar(&flags.LogIndent, "log-indent", flags.LogIndent, "indent logs")

	return cmd
}

// overrideFromFlags copies every flag the user set explicitly into cfg.
func overrideFromFlags(cmd *cobra.Command, cfg *config.Config, flags config.Config) {
	set := cmd.Flags().Changed
	if set("width") {
		cfg.Width = flags.Width
	}
	if set("height") {
		cfg.Height = flags.Height
	}
	if set("radius") {
		cfg.Radius = flags.Radius
	}
	if set("relax") {
		cfg.Relax = flags.Relax
	}
	if set("seed") {
		cfg.Seed = flags.Seed
	}
	if set("seeds") {
		cfg.Seeds = flags.Seeds
	}
	if set("sea-level") {
		cfg.SeaLevel = flags.SeaLevel
	}
	if set("workers") {
		cfg.Workers = flags.Workers
	}
	if set("revisits") {
		cfg.Revisits = flags.Revisits
	}
	if set("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
	if set("log-indent") {
		cfg.LogIndent = flags.LogIndent
	}
}

type result struct {
	RunID    string            `json:"run_id"`
	Sites    int               `json:"sites"`
	Seeds    []int             `json:"seeds"`
	SeaLevel float64           `json:"sea_level"`
	Summary  heightmap.Summary `json:"summary"`
	Islands  [][]int           `json:"islands"`
	Heights  []float64         `json:"heights"`
}

// generate runs the pipeline: sample, relax, build the heightmap, propagate.
func generate(cfg config.Config) (result, error) {
	runID := uuid.NewString()
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))
	bounds := r2.RectFromPoints(r2.Point{}, r2.Point{X: cfg.Width, Y: cfg.Height})

	sites, err := sample.Poisson(rng, bounds, cfg.Radius)
	if err != nil {
		return result{}, errors.New("sampling sites failed").
			WithTag("run_id", runID).
			WithTag("radius", cfg.Radius).
			Wrap(err)
	}
	logs.WithTag("run_id", runID).
		WithTag("sites", len(sites)).
		WithTag("seed", seed).
		Info("sites sampled")

	p, err := partition.Relax(sites, bounds, cfg.Relax)
	if err != nil {
		return result{}, errors.New("building cell diagram failed").
			WithTag("run_id", runID).
			WithTag("sites", len(sites)).
			Wrap(err)
	}

	opts := []heightmap.Option{
		heightmap.WithRand(rng),
		heightmap.WithSeedCount(cfg.Seeds),
		heightmap.WithWorkers(cfg.Workers),
	}
	if cfg.Revisits {
		opts = append(opts, heightmap.WithRevisits())
	}
	h, err := heightmap.New(p, opts...)
	if err != nil {
		return result{}, errors.New("constructing heightmap failed").
			WithTag("run_id", runID).
			WithTag("cells", p.Len()).
			WithTag("seeds", cfg.Seeds).
			Wrap(err)
	}
	h.Generate()

	res := result{
		RunID:    runID,
		Sites:    h.Len(),
		Seeds:    h.SeedIndices(),
		SeaLevel: cfg.SeaLevel,
		Summary:  h.Summary(),
		Islands:  h.Islands(cfg.SeaLevel),
		Heights:  h.Heights,
	}
	logs.WithTag("run_id", runID).
		WithTag("cells", res.Sites).
		WithTag("islands", len(res.Islands)).
		WithTag("max_height", res.Summary.Max).
		Info("heightmap generated")

	return res, nil
}
