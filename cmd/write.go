package cmd

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/barisgit/overmind-guide/internal/scaffold"
	"github.com/barisgit/overmind-guide/internal/snippets"
)

func WriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write [framework]",
		Short: "Write the example files into a project",
		Long:  "Create the getting started example files for a framework under the output directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWrite,
	}

	cmd.Flags().Bool("ts", false, "Write the TypeScript examples")
	cmd.Flags().String("out", "", "Output directory (default from guide.yaml)")
	cmd.Flags().Bool("force", false, "Overwrite existing files")
	cmd.Flags().Bool("debug", false, "Enable debug logging")
	cmd.Flags().BoolP("yes", "y", false, "Do not prompt, use config and flags only")

	return cmd
}

func runWrite(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	force, _ := cmd.Flags().GetBool("force")
	outDir, _ := cmd.Flags().GetString("out")
	yes, _ := cmd.Flags().GetBool("yes")

	sel, err := resolveSelection(cmd, args)
	if err != nil {
		return err
	}

	// Ask when nothing was chosen explicitly
	if len(args) == 0 && !yes && !configExists(cmd) {
		if err := selectInteractive(sel, cmd.Flags().Changed("ts")); err != nil {
			return err
		}
	}

	if outDir == "" {
		outDir = sel.Config.OutputDir
	}
	if !force {
		force = sel.Config.Overwrite
	}

	lang := snippets.LanguageOf(sel.TypeScript)
	files, ok := snippets.Default.Lookup(sel.TypeScript, sel.Framework)
	if !ok {
		return fmt.Errorf("no %s snippets for framework %s (available: %s)",
			lang, sel.Framework, strings.Join(snippets.Default.Frameworks(sel.TypeScript), ", "))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📦 Writing %s %s example to %s...\n", lang, sel.Framework, outDir)

	written, err := scaffold.Write(outDir, files, scaffold.Options{Overwrite: force, Debug: debug})
	if err != nil {
		return err
	}

	for _, path := range written {
		fmt.Fprintf(out, "  • %s\n", path)
	}
	fmt.Fprintf(out, "✅ Wrote %d file(s)\n", len(written))

	return nil
}

func selectInteractive(sel *selection, languageSet bool) error {
	if !languageSet {
		var language string
		languagePrompt := &survey.Select{
			Message: "Choose language:",
			Options: []string{string(snippets.TypeScript), string(snippets.JavaScript)},
			Default: string(snippets.LanguageOf(sel.TypeScript)),
		}
		if err := survey.AskOne(languagePrompt, &language); err != nil {
			return err
		}
		sel.TypeScript = language == string(snippets.TypeScript)
	}

	frameworks := snippets.Default.Frameworks(sel.TypeScript)
	frameworkPrompt := &survey.Select{
		Message: "Choose framework:",
		Options: frameworks,
	}
	for _, fw := range frameworks {
		if fw == sel.Framework {
			frameworkPrompt.Default = fw
		}
	}

	return survey.AskOne(frameworkPrompt, &sel.Framework)
}
