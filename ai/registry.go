package ai

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownAgent = errors.New("unknown agent")

// DefaultLineup binds players A, B, C and D in turn order.
var DefaultLineup = []string{"right", "tuesday", "cycle", "stair"}

var constructors = map[string]func(Clock) Behavior{
	"right":   func(Clock) Behavior { return RightAgent{} },
	"tuesday": func(now Clock) Behavior { return NewTuesdayAgent(now) },
	"cycle":   func(Clock) Behavior { return NewCycleAgent() },
	"stair":   func(Clock) Behavior { return NewStairAgent() },
}

// New builds a fresh agent by name. now is only used by calendar agents and
// may be nil.
func New(name string, now Clock) (Behavior, error) {
	ctor, ok := constructors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownAgent, name, strings.Join(Names(), ", "))
	}
	return ctor(now), nil
}

// NewLineup builds one independent agent per name.
func NewLineup(names []string, now Clock) ([]Behavior, error) {
	agents := make([]Behavior, 0, len(names))
	for _, name := range names {
		agent, err := New(name, now)
		if err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}
	return agents, nil
}

// Names lists the registered agent names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name is registered.
func Known(name string) bool {
	_, ok := constructors[strings.ToLower(strings.TrimSpace(name))]
	return ok
}
