package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server and store connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().Health(cmd.Context()); err != nil {
			return fmt.Errorf("unhealthy: %w", err)
		}
		fmt.Println("ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
