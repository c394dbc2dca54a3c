package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the guide CLI
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "guide",
		Short:         "Overmind guide snippets",
		Long:          `Inspect, serve and write the example files of the Overmind getting started guide.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "📚 Overmind guide v"+version)
			fmt.Fprintln(cmd.OutOrStdout(), "Run 'guide --help' for available commands")
		},
	}

	rootCmd.PersistentFlags().String("config", "guide.yaml", "Path to the guide configuration file")

	rootCmd.AddCommand(ListCmd())
	rootCmd.AddCommand(ShowCmd())
	rootCmd.AddCommand(WriteCmd())
	rootCmd.AddCommand(ServeCmd(version))
	rootCmd.AddCommand(OpenAPICmd(version))
	rootCmd.AddCommand(ConfigCmd())

	return rootCmd
}
