package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dd0wney/cluso-lens/pkg/ingest"
	"github.com/dd0wney/cluso-lens/pkg/model"
)

// dataset is the on-disk shape of a graph file.
type dataset struct {
	Records   []ingest.Record         `json:"records"`
	Relations []ingest.RelationRecord `json:"relations"`
}

// loadGraph reads a dataset file, or builds the demo catalog when no
// path is given.
func loadGraph(path string) (*model.Graph, error) {
	if path == "" {
		return demoGraph()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return ingest.Build(ds.Records, ds.Relations)
}

// demoGraph builds a small music catalog to explore without a dataset.
func demoGraph() (*model.Graph, error) {
	now := time.Now()
	records := []ingest.Record{
		{ID: "scene", Title: "Night Scene", Tier: "hyper", CreatedAt: now},
		{ID: "synth", Title: "Synthwave", Tier: "mega", Tags: []string{"electronic"}, CreatedAt: now},
		{ID: "vapor", Title: "Vaporwave", Tier: "mega", Tags: []string{"electronic"}, CreatedAt: now},
		{ID: "kavinsky", Title: "Kavinsky", Tier: "artist", Data: map[string]string{"genre": "synthwave"}, CreatedAt: now},
		{ID: "carpenter", Title: "The Midnight", Tier: "artist", Data: map[string]string{"genre": "synthwave"}, CreatedAt: now},
		{ID: "nightcall", Title: "Nightcall", Tier: "track", Data: map[string]string{"genre": "synthwave"}, Numbers: map[string]float64{"bpm": 88}, CreatedAt: now},
		{ID: "daysofthunder", Title: "Days of Thunder", Tier: "track", Numbers: map[string]float64{"bpm": 110}, CreatedAt: now},
		{ID: "odd", Title: "Odd Look", Tier: "track", Numbers: map[string]float64{"bpm": 104}, CreatedAt: now},
		{ID: "nightcall_s1", Title: "Nightcall Pad", Tier: "sample", CreatedAt: now},
		{ID: "outrun", Title: "OutRun", Tier: "release", CreatedAt: now},
		{ID: "endless", Title: "Endless Summer", Tier: "release", CreatedAt: now},
		{ID: "ghost1", Title: "Unreleased Demo", Tier: "shadow", CreatedAt: now},
		{ID: "misc", Title: "Crate Digs", Tier: "regular", CreatedAt: now},
	}
	relations := []ingest.RelationRecord{
		{Source: "scene", Target: "synth", Kind: "parent", Weight: 2},
		{Source: "scene", Target: "vapor", Kind: "parent", Weight: 2},
		{Source: "synth", Target: "kavinsky", Kind: "parent", Weight: 1},
		{Source: "synth", Target: "carpenter", Kind: "parent", Weight: 1},
		{Source: "kavinsky", Target: "nightcall", Kind: "collaboration", Weight: 2},
		{Source: "kavinsky", Target: "odd", Kind: "collaboration", Weight: 1},
		{Source: "carpenter", Target: "daysofthunder", Kind: "collaboration", Weight: 2},
		{Source: "nightcall", Target: "nightcall_s1", Kind: "derivation", Weight: 1},
		{Source: "nightcall_s1", Target: "daysofthunder", Kind: "derivation", Weight: 1},
		{Source: "outrun", Target: "nightcall", Kind: "parent", Weight: 1},
		{Source: "endless", Target: "daysofthunder", Kind: "parent", Weight: 1},
		{Source: "nightcall", Target: "odd", Kind: "temporal", Weight: 1},
		{Source: "misc", Target: "ghost1", Kind: "semantic", Weight: 1},
		{Source: "misc", Target: "vapor", Kind: "semantic", Weight: 1},
	}
	return ingest.Build(records, relations)
}
