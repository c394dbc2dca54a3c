package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barisgit/overmind-guide/internal/snippets"
)

func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [framework]",
		Short: "Print the example files for a framework",
		Long:  "Print every example file of the getting started guide for a framework and language mode",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Bool("ts", false, "Show the TypeScript examples")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	sel, err := resolveSelection(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	lang := snippets.LanguageOf(sel.TypeScript)

	files := snippets.Select(sel.TypeScript, sel.Framework)
	if files == nil {
		fmt.Fprintf(out, "⚠️  No %s snippets for framework %s\n", lang, sel.Framework)
		return nil
	}

	for _, file := range files {
		fmt.Fprintf(out, "// %s\n%s\n", file.FileName, file.Code)
	}

	return nil
}
