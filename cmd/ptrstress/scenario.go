package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// Scenario describes one clone/drop storm over a single shared slot.
// Scenario files are HuJSON, so they may carry comments and trailing
// commas.
type Scenario struct {
	// Goroutines is the number of concurrent cloners.
	Goroutines int `json:"goroutines"`
	// Clones is the clone/drop cycles each goroutine performs.
	Clones int `json:"clones"`
	// Payload is the value stored behind the shared handle.
	Payload string `json:"payload"`
}

func defaultScenario() Scenario {
	return Scenario{
		Goroutines: 2,
		Clones:     1000,
		Payload:    "x",
	}
}

func loadScenario(path string) (Scenario, error) {
	sc := defaultScenario()

	raw, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("read scenario: %w", err)
	}
	std, err := hujson.Standardize(raw)
	if err != nil {
		return sc, fmt.Errorf("parse scenario: %w", err)
	}
	if err := json.Unmarshal(std, &sc); err != nil {
		return sc, fmt.Errorf("decode scenario: %w", err)
	}

	if sc.Goroutines < 1 {
		return sc, fmt.Errorf("scenario: goroutines must be >= 1, got %d", sc.Goroutines)
	}
	if sc.Clones < 0 {
		return sc, fmt.Errorf("scenario: clones must be >= 0, got %d", sc.Clones)
	}
	return sc, nil
}
