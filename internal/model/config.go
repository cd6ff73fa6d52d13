package model

import "time"

// Config holds the full engine configuration.
// Defaults come from DefaultConfig; viper/env/flags override on top.
type Config struct {
	Data        DataConfig        `yaml:"data"`
	Weather     WeatherConfig     `yaml:"weather"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Server      ServerConfig      `yaml:"server"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
}

// DataConfig points at the corpus and gazetteer files
type DataConfig struct {
	// CorpusFiles are JSON files of question/answer records, loaded in order
	CorpusFiles []string `yaml:"corpus_files"`

	// CitiesCSV is the worldcities gazetteer CSV
	CitiesCSV string `yaml:"cities_csv"`
}

// WeatherConfig configures the outbound weather provider
type WeatherConfig struct {
	// APIKey for the provider (TOURLI_WEATHER_API_KEY)
	APIKey string `yaml:"api_key"`

	// BaseURL of the current-weather endpoint
	BaseURL string `yaml:"base_url"`

	// Timeout for a single lookup; failures are treated as "no data", never retried
	Timeout time.Duration `yaml:"timeout"`

	// CacheTTL keeps recent lookups so repeat questions don't re-hit the provider
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// RequestsPerSecond / Burst limit outbound calls
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// ScoringConfig names every weight and threshold of the ranking cascade
// so the tie-break policy lives in one place.
type ScoringConfig struct {
	// City resolution
	CityMatchThreshold  float64 `yaml:"city_match_threshold"`  // below this a resolved city is low confidence
	ShortQueryThreshold float64 `yaml:"short_query_threshold"` // stricter cutoff for short place names
	ShortQueryMaxLen    int     `yaml:"short_query_max_len"`   // normalized length considered "short"
	MoroccoBoost        float64 `yaml:"morocco_boost"`         // resolver bonus for Morocco rows on Moroccan-looking queries
	MajorCityPopulation int     `yaml:"major_city_population"` // population floor for "major" cities
	CityFuzzyCutoff     float64 `yaml:"city_fuzzy_cutoff"`     // per-word fuzzy cutoff for Moroccan city detection

	// Intent classification
	IntentFuzzyCutoff float64 `yaml:"intent_fuzzy_cutoff"`
	TrollFuzzyCutoff  float64 `yaml:"troll_fuzzy_cutoff"`

	// Corpus ranking
	TFIDFWeight        float64 `yaml:"tfidf_weight"`         // city/generic branches
	FuzzyWeight        float64 `yaml:"fuzzy_weight"`         //
	MoroccoTFIDFWeight float64 `yaml:"morocco_tfidf_weight"` // general-Morocco branch
	MoroccoFuzzyWeight float64 `yaml:"morocco_fuzzy_weight"` //
	CandidateFloor     float64 `yaml:"candidate_floor"`      // minimum blended score to keep a candidate
	MoroccoFloor       float64 `yaml:"morocco_floor"`        // lower floor for general-Morocco queries
	KeywordBoostLong   float64 `yaml:"keyword_boost_long"`   // per matching content word >6 chars
	KeywordBoostShort  float64 `yaml:"keyword_boost_short"`  // per shorter matching content word
	KeywordBoostCap    float64 `yaml:"keyword_boost_cap"`
	MaxVocabulary      int     `yaml:"max_vocabulary"` // TF-IDF vocabulary cap

	// ConfidenceThreshold is the caller-facing floor below which the chat
	// surfaces substitute an "outside my knowledge" message
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// ConcurrencyConfig configures batch answering
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			CorpusFiles: []string{
				"data/processed/cleaned_dataset.json",
				"data/processed/edge_cases_cleaned.json",
			},
			CitiesCSV: "data/processed/worldcities_clean.csv",
		},
		Weather: WeatherConfig{
			BaseURL:           "https://api.openweathermap.org/data/2.5/weather",
			Timeout:           8 * time.Second,
			CacheTTL:          10 * time.Minute,
			RequestsPerSecond: 1,
			Burst:             5,
		},
		Scoring: ScoringConfig{
			CityMatchThreshold:  0.80,
			ShortQueryThreshold: 0.90,
			ShortQueryMaxLen:    5,
			MoroccoBoost:        0.15,
			MajorCityPopulation: 50000,
			CityFuzzyCutoff:     0.75,
			IntentFuzzyCutoff:   0.75,
			TrollFuzzyCutoff:    0.8,
			TFIDFWeight:         0.6,
			FuzzyWeight:         0.4,
			MoroccoTFIDFWeight:  0.85,
			MoroccoFuzzyWeight:  0.15,
			CandidateFloor:      0.15,
			MoroccoFloor:        0.1,
			KeywordBoostLong:    0.25,
			KeywordBoostShort:   0.15,
			KeywordBoostCap:     0.80,
			MaxVocabulary:       8000,
			ConfidenceThreshold: 0.2,
		},
		Server: ServerConfig{
			Addr:         ":5000",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
	}
}
