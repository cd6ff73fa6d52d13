package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// chatCmd represents the interactive chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start a terminal chat loop. Type questions about Morocco; answers below
the confidence threshold are replaced by an out-of-knowledge message.
Type 'quit' or 'exit' to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		eng, err := buildEngine(cfg)
		if err != nil {
			return err
		}

		fmt.Println("=== Morocco Tourism Chatbot ===")
		fmt.Println("Type your questions about Morocco, or 'quit' to exit.")
		fmt.Println()

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("You: ")
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				continue
			}
			if low := strings.ToLower(input); low == "quit" || low == "exit" {
				fmt.Println("Chatbot: Goodbye! Enjoy your trip to Morocco!")
				break
			}

			answers := eng.Answer(cmd.Context(), input, 1)
			if len(answers) == 0 || answers[0].Score < cfg.Scoring.ConfidenceThreshold {
				fmt.Println("Chatbot: I apologize, that seems to be outside my knowledge base. I can only answer questions about Morocco tourism.")
			} else {
				fmt.Printf("Chatbot: %s\n", answers[0].Text)
			}
			fmt.Println()
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
