package main

import (
	"connect383/agent"
	"connect383/engine"
	"connect383/experiments"
	"connect383/game"
	"connect383/meta"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type playOptions struct {
	rows   int
	cols   int
	blocks []string
	p1Spec string
	p2Spec string
}

// newRootCmd builds the command tree. Each call gets its own flag values.
func newRootCmd() *cobra.Command {
	var (
		logLevel string
		pretty   bool
		play     playOptions
	)

	rootCmd := &cobra.Command{
		Use:           "connect383",
		Short:         "Play and study Connect 383 with minimax search agents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel, pretty)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Human-readable console logs instead of JSON")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play a single game between two agents and print the final board",
		Long: `Agents are given as specs: minimax, alphabeta, heuristic[:depth],
random[:seed] or human. Exact searchers (minimax, alphabeta) are only
practical on small boards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, play)
		},
	}
	defaultSpec := fmt.Sprintf("heuristic:%d", meta.DefaultDepth)
	playCmd.Flags().IntVar(&play.rows, "rows", meta.DefaultRows, "Board height")
	playCmd.Flags().IntVar(&play.cols, "cols", meta.DefaultCols, "Board width")
	playCmd.Flags().StringArrayVar(&play.blocks, "block", nil, "Blocked cell as row,col (repeatable)")
	playCmd.Flags().StringVar(&play.p1Spec, "p1", defaultSpec, "Agent playing X, who moves first")
	playCmd.Flags().StringVar(&play.p2Spec, "p2", defaultSpec, "Agent playing O")

	experimentCmd := &cobra.Command{
		Use:   "experiment [config.yaml]",
		Short: "Run the match-ups of an experiment file and store the results as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runExperiment,
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(experimentCmd)
	return rootCmd
}

func setupLogging(level string, pretty bool) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(parsed)
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return nil
}

func parseCell(s string) (game.Cell, error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return game.Cell{}, fmt.Errorf("block %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return game.Cell{}, fmt.Errorf("block %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return game.Cell{}, fmt.Errorf("block %q: col: %w", s, err)
	}
	return game.Cell{Row: row, Col: col}, nil
}

func runPlay(cmd *cobra.Command, opts playOptions) error {
	cells := make([]game.Cell, 0, len(opts.blocks))
	for _, b := range opts.blocks {
		cell, err := parseCell(b)
		if err != nil {
			return err
		}
		cells = append(cells, cell)
	}

	counter := &game.StateCounter{}
	board, err := game.NewBoard(opts.rows, opts.cols, game.WithBlocks(cells...), game.WithStateCounter(counter))
	if err != nil {
		return err
	}
	first, err := agent.ParseSpec(opts.p1Spec)
	if err != nil {
		return err
	}
	second, err := agent.ParseSpec(opts.p2Spec)
	if err != nil {
		return err
	}

	e, err := engine.LocalEngine([]agent.Agent{first, second}, board, engine.WithStateCounter(counter))
	if err != nil {
		return err
	}
	log.Info().Msgf("starting %dx%d game between %s and %s", opts.rows, opts.cols, opts.p1Spec, opts.p2Spec)
	result, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	final := result.State.(*game.Board)
	x, o := final.Scores()
	out := cmd.OutOrStdout()
	fmt.Fprint(out, final.String())
	fmt.Fprintf(out, "X: %d  O: %d  utility: %.0f\n", x, o, result.Utility)
	switch result.Winner {
	case game.Player1:
		fmt.Fprintf(out, "X (%s) wins\n", opts.p1Spec)
	case game.Player2:
		fmt.Fprintf(out, "O (%s) wins\n", opts.p2Spec)
	default:
		fmt.Fprintln(out, "Draw")
	}
	log.Info().Msgf("game took %s over %d moves and %d states", gameMetric.Duration, gameMetric.TotalMoves, gameMetric.States)
	return nil
}

func runExperiment(cmd *cobra.Command, args []string) error {
	cfg, err := experiments.LoadConfig(args[0])
	if err != nil {
		return err
	}
	dir, err := experiments.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", dir)
	return nil
}
