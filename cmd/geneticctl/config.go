package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"genetic/pkg/genetic"
)

func loadRunRequestFromConfig(path string) (genetic.RunRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return genetic.RunRequest{}, err
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return genetic.RunRequest{}, err
	}

	req := genetic.DefaultRunRequest()
	if v, ok := asString(raw["problem"]); ok {
		req.Problem = v
	}
	if v, ok := asInt(raw["population"]); ok {
		req.PopulationSize = v
	}
	if v, ok := asInt(raw["chromosome_length"]); ok {
		req.ChromosomeLength = v
	}
	if v, ok := asInt(raw["generations"]); ok {
		req.Generations = v
	}
	if v, ok := asFloat64(raw["crossover_rate"]); ok {
		req.CrossoverRate = v
	}
	if v, ok := asFloat64(raw["mutation_rate"]); ok {
		req.MutationRate = v
	}
	if v, ok := asInt64(raw["seed"]); ok {
		req.Seed = v
	}
	if v, ok := asInt(raw["runs"]); ok {
		req.Runs = v
	}
	return req, nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case float64:
		return int(x), true
	default:
		return 0, false
	}
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case float64:
		return int64(x), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}

func overrideFromFlags(req *genetic.RunRequest, set map[string]bool, flagValue map[string]any) error {
	for name := range set {
		v, ok := flagValue[name]
		if !ok {
			continue
		}
		switch name {
		case "problem":
			req.Problem = v.(string)
		case "pop":
			req.PopulationSize = v.(int)
		case "length":
			req.ChromosomeLength = v.(int)
		case "gens":
			req.Generations = v.(int)
		case "crossover-rate":
			req.CrossoverRate = v.(float64)
		case "mutation-rate":
			req.MutationRate = v.(float64)
		case "seed":
			req.Seed = v.(int64)
		case "runs":
			req.Runs = v.(int)
		default:
			return fmt.Errorf("unsupported override flag: %s", name)
		}
	}
	return nil
}
