package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/primlock/generator"
)

// Scenario is the YAML description of a set of sequences to drive.
type Scenario struct {
	Service   string     `yaml:"service"`
	Sequences []Sequence `yaml:"sequences"`
}

// Sequence declares one producer instance. Kind selects the producer
// definition; the remaining fields parameterize it.
type Sequence struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Start  int    `yaml:"start"`
	End    int    `yaml:"end"`
	Stride int    `yaml:"stride"`
	Limit  int    `yaml:"limit"`
	Values []int  `yaml:"values"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(s.Sequences) == 0 {
		return nil, fmt.Errorf("%s: scenario declares no sequences", path)
	}
	for i, seq := range s.Sequences {
		if seq.Name == "" {
			return nil, fmt.Errorf("%s: sequence %d has no name", path, i)
		}
		if _, err := seq.Generator(); err != nil {
			return nil, fmt.Errorf("%s: sequence %q: %w", path, seq.Name, err)
		}
	}
	return &s, nil
}

// Generator instantiates the producer the sequence declares. Each call
// returns a fresh, independent instance.
func (s *Sequence) Generator() (generator.Generator[int], error) {
	switch s.Kind {
	case "count":
		if s.Stride != 0 {
			return generator.CountBy(s.Start, s.End, s.Stride), nil
		}
		return generator.Count(s.Start, s.End), nil
	case "fib":
		return generator.Fib(s.Limit), nil
	case "slice":
		return generator.FromSlice(s.Values), nil
	default:
		return generator.Empty[int](), fmt.Errorf("unknown sequence kind %q", s.Kind)
	}
}
