package agent

import (
	"connect383/meta"
	"connect383/searcher"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var ErrInvalidSpec = errors.New("invalid agent spec")

// ParseSpec builds an agent from a short description:
//
//	minimax | alphabeta | heuristic[:depth] | random[:seed] | human
//
// Search agents collect metrics. The human agent reads from standard input.
func ParseSpec(spec string) (Agent, error) {
	name, arg, hasArg := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), ":")

	switch name {
	case "random":
		seed := meta.DefaultSeed
		if hasArg {
			parsed, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w %q: seed: %w", ErrInvalidSpec, spec, err)
			}
			seed = parsed
		}
		return NewRandomAgent(seed), nil
	case "human":
		if hasArg {
			return nil, fmt.Errorf("%w %q: human takes no argument", ErrInvalidSpec, spec)
		}
		return NewHumanAgent(os.Stdin, os.Stdout), nil
	}

	kind, err := searcher.ParseKind(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSpec, spec, err)
	}
	depth := meta.DefaultDepth
	if hasArg {
		if kind != searcher.KindHeuristic {
			return nil, fmt.Errorf("%w %q: only heuristic takes a depth", ErrInvalidSpec, spec)
		}
		if depth, err = strconv.Atoi(arg); err != nil {
			return nil, fmt.Errorf("%w %q: depth: %w", ErrInvalidSpec, spec, err)
		}
	}
	s, err := searcher.New(kind, depth, searcher.WithMetrics())
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSpec, spec, err)
	}
	return NewSearchAgent(s), nil
}

// IsInteractive reports whether the spec names an agent that needs a person
// at the terminal.
func IsInteractive(spec string) bool {
	name, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), ":")
	return name == "human"
}
