package experiments

import (
	"connect383/agent"
	"connect383/experiments/metrics"
	"connect383/game"
	"connect383/meta"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

type BoardConfig struct {
	Rows   int     `yaml:"rows"`
	Cols   int     `yaml:"cols"`
	Blocks [][]int `yaml:"blocks"` // [row, col] pairs
}

// Config describes an experiment: every match-up is played Games times on
// the same starting board.
type Config struct {
	Name        string                `yaml:"name"`
	Games       int                   `yaml:"games"`
	Concurrency int                   `yaml:"concurrency"`
	Board       BoardConfig           `yaml:"board"`
	Agents      []metrics.AgentConfig `yaml:"agents"`
	MatchUps    [][]int               `yaml:"matchups"` // [first, second] agent IDs
	Output      string                `yaml:"output"`
}

// LoadConfig reads and validates an experiment file, filling in defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading experiment config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	cfg := Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing experiment config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Concurrency == 0 {
		c.Concurrency = meta.DefaultConcurrency
	}
	if c.Board.Rows == 0 && c.Board.Cols == 0 {
		c.Board.Rows, c.Board.Cols = meta.DefaultRows, meta.DefaultCols
	}
	if c.Output == "" {
		c.Output = meta.DefaultOutput
	}
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative, got %d", ErrInvalidConfig, c.Concurrency)
	}
	if _, err := c.NewBoard(nil); err != nil {
		return fmt.Errorf("%w: board: %w", ErrInvalidConfig, err)
	}

	known := make(map[int]bool, len(c.Agents))
	for _, a := range c.Agents {
		if known[a.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, a.ID)
		}
		if agent.IsInteractive(a.Spec) {
			return fmt.Errorf("%w: agent %d: human players cannot take part in experiments", ErrInvalidConfig, a.ID)
		}
		if _, err := agent.ParseSpec(a.Spec); err != nil {
			return fmt.Errorf("%w: agent %d: %w", ErrInvalidConfig, a.ID, err)
		}
		known[a.ID] = true
	}

	if len(c.MatchUps) == 0 {
		return fmt.Errorf("%w: at least one match-up is required", ErrInvalidConfig)
	}
	for i, matchUp := range c.MatchUps {
		if len(matchUp) != 2 {
			return fmt.Errorf("%w: match-up %d needs two agent ids, got %d", ErrInvalidConfig, i+1, len(matchUp))
		}
		for _, id := range matchUp {
			if !known[id] {
				return fmt.Errorf("%w: match-up %d references unknown agent %d", ErrInvalidConfig, i+1, id)
			}
		}
	}
	return nil
}

// NewBoard builds the experiment's starting board.
func (c Config) NewBoard(counter *game.StateCounter) (*game.Board, error) {
	blocks := make([]game.Cell, 0, len(c.Board.Blocks))
	for _, pair := range c.Board.Blocks {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: block %v is not a [row, col] pair", game.ErrInvalidBlock, pair)
		}
		blocks = append(blocks, game.Cell{Row: pair[0], Col: pair[1]})
	}
	return game.NewBoard(c.Board.Rows, c.Board.Cols, game.WithBlocks(blocks...), game.WithStateCounter(counter))
}

func (c Config) agentSpec(id int) string {
	for _, a := range c.Agents {
		if a.ID == id {
			return a.Spec
		}
	}
	return ""
}
