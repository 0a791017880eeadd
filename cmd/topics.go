package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/grammiz/internal/topics"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List available grammar topics",
	Run: func(cmd *cobra.Command, args []string) {
		all := topics.Default().ListAll()

		fmt.Printf("%-20s  %-24s  %s\n", "ID", "Title", "Description")
		fmt.Println(strings.Repeat("─", 80))
		for _, t := range all {
			fmt.Printf("%-20s  %-24s  %s\n", t.ID, t.Title, t.Description)
		}
	},
}
