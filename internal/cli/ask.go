package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askTopK int

// askCmd represents the one-shot question command
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question and print the answer",
	Long: `Ask answers one question and exits. With --top-k above 1 the ranked
alternatives are printed with their confidence scores.

Example:
  tourli ask "best beaches in Agadir"
  tourli ask --top-k 3 "what to do in Marrakech"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		eng, err := buildEngine(cfg)
		if err != nil {
			return err
		}

		question := strings.Join(args, " ")
		answers := eng.Answer(cmd.Context(), question, askTopK)
		if len(answers) == 0 {
			return fmt.Errorf("no answer produced")
		}

		if askTopK <= 1 {
			fmt.Println(answers[0].Text)
			return nil
		}
		for i, a := range answers {
			fmt.Printf("%d. [%.2f] %s\n", i+1, a.Score, a.Text)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().IntVar(&askTopK, "top-k", 1, "number of ranked answers to print")
	rootCmd.AddCommand(askCmd)
}
