package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tourli/internal/worker"
)

var (
	batchWorkers int
	batchJSON    string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Answer a file of questions concurrently",
	Long: `Batch reads questions from a file (one per line, # comments and blank
lines skipped) and answers them concurrently.

Example:
  tourli batch questions.txt
  tourli batch questions.txt --workers 8 --json answers.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		eng, err := buildEngine(cfg)
		if err != nil {
			return err
		}

		workers := batchWorkers
		if workers <= 0 {
			workers = cfg.Concurrency.BatchWorkers
		}

		processor := worker.NewBatchProcessor(eng, workers)
		results, err := processor.ProcessFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if batchJSON != "" {
			type row struct {
				Question string  `json:"question"`
				Answer   string  `json:"answer"`
				Score    float64 `json:"score"`
			}
			rows := make([]row, 0, len(results))
			for _, r := range results {
				if r.Error != nil {
					continue
				}
				rows = append(rows, row{Question: r.Question, Answer: r.Answer.Text, Score: r.Answer.Score})
			}
			data, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal results: %w", err)
			}
			if err := os.WriteFile(batchJSON, data, 0644); err != nil {
				return fmt.Errorf("write results: %w", err)
			}
			fmt.Printf("Wrote %d answers to %s\n", len(rows), batchJSON)
			return nil
		}

		for _, r := range results {
			if r.Error != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", r.Error)
				continue
			}
			fmt.Printf("Q: %s\nA: %s (Score: %.2f)\n\n", r.Question, r.Answer.Text, r.Answer.Score)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "concurrent workers (default from config)")
	batchCmd.Flags().StringVar(&batchJSON, "json", "", "write answers to a JSON file")
	rootCmd.AddCommand(batchCmd)
}
