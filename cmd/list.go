package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barisgit/overmind-guide/internal/snippets"
)

func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available snippet frameworks",
		Long:  "Display the frameworks that have guide examples for each language mode",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "📦 Available Guide Snippets:")
	for _, ts := range []bool{false, true} {
		lang := snippets.LanguageOf(ts)
		frameworks := snippets.Default.Frameworks(ts)
		fmt.Fprintf(out, "  • %s: %s\n", lang, strings.Join(frameworks, ", "))
	}

	return nil
}
