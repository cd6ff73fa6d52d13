package cli

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"tourli/internal/corpus"
	"tourli/internal/engine"
	"tourli/internal/model"
	"tourli/internal/weather"
)

var (
	corpusFiles []string
	citiesCSV   string
)

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&corpusFiles, "corpus", nil, "Q&A corpus JSON files (overrides config)")
	rootCmd.PersistentFlags().StringVar(&citiesCSV, "cities", "", "world cities CSV file (overrides config)")
}

// loadConfig layers the config file and environment over the defaults.
// Flags are applied by the caller on top.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if file := viper.ConfigFileUsed(); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", file, err)
		}
	}

	// TOURLI_WEATHER_API_KEY
	if key := viper.GetString("weather_api_key"); key != "" {
		cfg.Weather.APIKey = key
	}

	if len(corpusFiles) > 0 {
		cfg.Data.CorpusFiles = corpusFiles
	}
	if citiesCSV != "" {
		cfg.Data.CitiesCSV = citiesCSV
	}
	return cfg, nil
}

// buildEngine loads the corpus and gazetteer and assembles the engine
func buildEngine(cfg *model.Config) (*engine.Engine, error) {
	if verbose {
		fmt.Fprintf(os.Stderr, "Loading corpus from %v\n", cfg.Data.CorpusFiles)
	}
	entries, err := corpus.LoadEntries(cfg.Data.CorpusFiles)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Total Q&A entries loaded: %d\n", len(entries))
	}

	cities, err := corpus.LoadCities(cfg.Data.CitiesCSV)
	if err != nil {
		return nil, fmt.Errorf("load cities: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "City records loaded: %d\n", len(cities))
	}

	eng, err := engine.New(cfg, entries, cities, weather.NewClient(cfg.Weather))
	if err != nil {
		return nil, err
	}
	eng.SetVerbose(verbose)
	return eng, nil
}
