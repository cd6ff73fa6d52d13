package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Data.CorpusFiles) == 0 {
		t.Error("default config has no corpus files")
	}
	if cfg.Scoring.TFIDFWeight+cfg.Scoring.FuzzyWeight != 1.0 {
		t.Error("city branch weights should sum to 1")
	}
	if cfg.Scoring.MoroccoTFIDFWeight+cfg.Scoring.MoroccoFuzzyWeight != 1.0 {
		t.Error("Morocco branch weights should sum to 1")
	}
	if cfg.Scoring.MoroccoFloor >= cfg.Scoring.CandidateFloor {
		t.Error("Morocco floor should be below the generic candidate floor")
	}
	if cfg.Scoring.ShortQueryThreshold <= cfg.Scoring.CityMatchThreshold {
		t.Error("short queries should use a stricter threshold")
	}
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Config
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(*cfg, back); diff != "" {
		t.Errorf("config round trip mismatch (-want +got):\n%s", diff)
	}
}
