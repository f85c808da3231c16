// Command hyperpart reads an area-constrained hypergraph partitioning
// instance, optimizes it with simulated annealing (and, if requested, the
// Sanchis gain-table engine), and writes the resulting partition.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperpart/internal/config"
	"github.com/katalvlaran/hyperpart/internal/hgio"
	"github.com/katalvlaran/hyperpart/internal/matrixview"
	"github.com/katalvlaran/hyperpart/internal/sa"
	"github.com/katalvlaran/hyperpart/internal/sanchis"
	"github.com/katalvlaran/hyperpart/internal/startpart"
	"github.com/katalvlaran/hyperpart/internal/verify"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		deadline     time.Duration
		seed         int64
		useSeed      bool
		useSanchis   bool
		passRounds   int
		usePassFlag  bool
		verboseLevel bool
	)

	cmd := &cobra.Command{
		Use:   "hyperpart <input_path> <output_path>",
		Short: "Partition an area-constrained hypergraph to minimize Σ(span-1)²",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verboseLevel)
			cfg := config.Load(log)

			if usePassFlag {
				cfg.PassRounds = passRounds
			}
			if useSanchis {
				cfg.AllowKWay = true
			}

			return run(cmd.Context(), runOptions{
				inputPath:  args[0],
				outputPath: args[1],
				deadline:   deadline,
				rand:       newRand(seed, useSeed),
				log:        log,
				cfg:        cfg,
				useSanchis: useSanchis,
			})
		},
	}

	cmd.Flags().DurationVar(&deadline, "deadline", sa.DefaultOptions().Deadline, "wall-clock budget for the SA engine")
	cmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed (default: time-seeded)")
	cmd.Flags().BoolVar(&useSanchis, "sanchis", false, "run the Sanchis gain-table engine after SA")
	cmd.Flags().IntVar(&passRounds, "pass-rounds", config.DefaultPassRounds, "max Sanchis outer rounds (overrides PA2_PASS_ROUNDS)")
	cmd.Flags().BoolVar(&verboseLevel, "verbose", false, "enable debug-level logging")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		useSeed = cmd.Flags().Changed("seed")
		usePassFlag = cmd.Flags().Changed("pass-rounds")
		return nil
	}

	return cmd
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

func newRand(seed int64, useSeed bool) *rand.Rand {
	if useSeed {
		return rand.New(rand.NewSource(seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

type runOptions struct {
	inputPath, outputPath string
	deadline              time.Duration
	rand                  *rand.Rand
	log                   zerolog.Logger
	cfg                   config.Config
	useSanchis            bool
}

func run(ctx context.Context, opts runOptions) error {
	in, err := hgio.Read(opts.inputPath)
	if err != nil {
		return fmt.Errorf("hyperpart: %w", err)
	}

	if opts.cfg.DebugInputs {
		hist := matrixview.Build(in).NetDegreeHistogram()
		opts.log.Info().
			Uint("a_max", in.AMax).
			Int("cells", in.NumCells()).
			Int("nets", in.NumNets()).
			Int("max_degree", in.MaxDegree()).
			Interface("net_degree_histogram", hist).
			Msg("parsed input")
	}

	start, err := startpart.Find(in, opts.rand, opts.log)
	if err != nil {
		return fmt.Errorf("hyperpart: %w", err)
	}

	saOpts := sa.DefaultOptions()
	saOpts.Deadline = opts.deadline
	saOpts.Rand = opts.rand
	saOpts.Logger = opts.log

	partition, stats, err := sa.Run(ctx, in, start, saOpts)
	if err != nil {
		return fmt.Errorf("hyperpart: %w", err)
	}
	finalCost := stats.FinalCost

	if opts.useSanchis && (partition.NumBlocks() == 2 || opts.cfg.AllowKWay) {
		partition, finalCost = sanchis.RunRounds(in, partition, opts.cfg.PassRounds, sanchis.DefaultNBad, opts.log)
	}

	if opts.cfg.VerifyBlocks {
		if err := verify.Check(in, partition); err != nil {
			return fmt.Errorf("hyperpart: %w", err)
		}
		if err := verify.CheckCost(in, partition, finalCost); err != nil {
			return fmt.Errorf("hyperpart: %w", err)
		}
	}

	if err := hgio.Write(opts.outputPath, finalCost, partition, in.NumCells()); err != nil {
		return fmt.Errorf("hyperpart: %w", err)
	}

	opts.log.Info().Int("cost", finalCost).Int("blocks", partition.NumBlocks()).Msg("done")
	return nil
}
