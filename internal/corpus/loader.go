// Package corpus loads the external Q&A and gazetteer collaborators
// from disk into the in-memory forms the engine owns.
package corpus

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"tourli/internal/model"
)

// LoadEntries reads each JSON corpus file (an array of records) and
// concatenates them in order. Missing fields default to empty strings;
// an empty combined corpus is an error because the engine must refuse
// to serve on partial state.
func LoadEntries(paths []string) ([]model.CorpusEntry, error) {
	var entries []model.CorpusEntry
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read corpus %s: %w", path, err)
		}

		var batch []model.CorpusEntry
		if err := json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("parse corpus %s: %w", path, err)
		}
		entries = append(entries, batch...)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no Q&A entries found")
	}
	return entries, nil
}

// LoadCities reads a worldcities-style CSV. Column order follows the
// header row; population parses to 0 on failure rather than dropping
// the record.
func LoadCities(path string) ([]model.CityRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cities CSV %s: %w", path, err)
	}

	records, err := parseCSV(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse cities CSV %s: %w", path, err)
	}
	return records, nil
}

func parseCSV(data string) ([]model.CityRecord, error) {
	reader := csv.NewReader(strings.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []model.CityRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows, keep the rest of the file
		}
		name := field(row, "city")
		if name == "" {
			continue
		}
		records = append(records, model.CityRecord{
			Name:       name,
			ASCIIName:  field(row, "city_ascii"),
			Country:    field(row, "country"),
			Lat:        parseFloat(field(row, "lat")),
			Lng:        parseFloat(field(row, "lng")),
			AdminName:  field(row, "admin_name"),
			Capital:    field(row, "capital"),
			Population: parsePopulation(field(row, "population")),
			ISO2:       field(row, "iso2"),
			ISO3:       field(row, "iso3"),
		})
	}
	return records, nil
}

// parsePopulation accepts integers or float-formatted counts ("12345.0")
func parsePopulation(s string) int {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
