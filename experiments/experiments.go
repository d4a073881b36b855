package experiments

import (
	"connect383/agent"
	"connect383/engine"
	"connect383/experiments/metrics"
	"connect383/game"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// job identifies one game of a match-up.
type job struct {
	id      int
	matchUp int
	first   metrics.AgentConfig
	second  metrics.AgentConfig
}

type outcome struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// Run plays every match-up cfg.Games times and writes the records under
// cfg.Output. Games run concurrently, each on its own board with its own
// agents. It returns the directory the records were written to.
func Run(ctx context.Context, cfg Config) (string, error) {
	jobs := []job{}
	for mi, matchUp := range cfg.MatchUps {
		first := metrics.AgentConfig{ID: matchUp[0], Spec: cfg.agentSpec(matchUp[0])}
		second := metrics.AgentConfig{ID: matchUp[1], Spec: cfg.agentSpec(matchUp[1])}
		for i := 0; i < cfg.Games; i++ {
			jobs = append(jobs, job{id: len(jobs) + 1, matchUp: mi + 1, first: first, second: second})
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", cfg.Name, len(jobs))

	outcomes := make([]outcome, len(jobs))
	g, gCtx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}
	for i, j := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			log.Info().Msgf("starting matchup %d of %d game %d between agent%d=%s and agent%d=%s...",
				j.matchUp, len(cfg.MatchUps), j.id, j.first.ID, j.first.Spec, j.second.ID, j.second.Spec)

			result, o, err := runGame(cfg, j)
			if err != nil {
				return fmt.Errorf("game %d: %w", j.id, err)
			}
			outcomes[i] = o

			log.Info().Msgf("completed game %d with winner %d and utility %.0f", j.id, result.Winner, result.Utility)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	gameRecords := make([]metrics.GameRecord, 0, len(outcomes))
	moveRecords := []metrics.MoveRecord{}
	for _, o := range outcomes {
		gameRecords = append(gameRecords, o.game)
		moveRecords = append(moveRecords, o.moves...)
	}
	for _, s := range Summarize(cfg.Agents, gameRecords, moveRecords) {
		log.Info().Msgf("agent %d (%s): %d wins, %d losses, %d draws, %.0f nodes/s",
			s.Agent.ID, s.Agent.Spec, s.Wins, s.Losses, s.Draws, s.NodesPerSecond())
	}

	return store(cfg, gameRecords, moveRecords)
}

// runGame plays a single game between two agents.
func runGame(cfg Config, j job) (engine.Result, outcome, error) {
	counter := &game.StateCounter{}
	board, err := cfg.NewBoard(counter)
	if err != nil {
		return engine.Result{}, outcome{}, err
	}
	first, err := agent.ParseSpec(j.first.Spec)
	if err != nil {
		return engine.Result{}, outcome{}, err
	}
	second, err := agent.ParseSpec(j.second.Spec)
	if err != nil {
		return engine.Result{}, outcome{}, err
	}

	e, err := engine.LocalEngine([]agent.Agent{first, second}, board, engine.WithStateCounter(counter))
	if err != nil {
		return engine.Result{}, outcome{}, err
	}
	result, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return engine.Result{}, outcome{}, err
	}

	o := outcome{
		game: metrics.GameRecord{
			ID:         j.id,
			Agent1:     j.first.ID,
			Agent2:     j.second.ID,
			GameMetric: gameMetric,
		},
		moves: make([]metrics.MoveRecord, 0, len(moveMetrics)),
	}
	for _, mm := range moveMetrics {
		o.moves = append(o.moves, metrics.MoveRecord{
			Game:       j.id,
			MoveMetric: mm,
		})
	}
	return result, o, nil
}

func store(cfg Config, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(cfg.Output, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(cfg.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
