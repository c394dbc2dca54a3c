package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/barisgit/overmind-guide/config"
)

func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage guide configuration",
		Long:  "Validate, view, and create the guide.yaml configuration",
	}

	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configInitCmd())

	return cmd
}

func configShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show configuration information",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}

	cmd.Flags().Bool("verbose", false, "Show the full configuration as YAML")

	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Long:  "Create a new guide.yaml configuration file with default values",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite existing configuration file")
	cmd.Flags().String("language", config.LanguageTypeScript, "Language mode (javascript or typescript)")
	cmd.Flags().String("framework", "react", "UI framework")
	cmd.Flags().String("out", "src", "Output directory for written snippets")

	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path := configPath(cmd)
	verbose, _ := cmd.Flags().GetBool("verbose")
	out := cmd.OutOrStdout()

	info, err := config.GetConfigInfo(path)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Fprintf(out, "%s\n", info.String())

	if verbose {
		cfg, err := config.LoadConfigWithDefaults(path, true)
		if err != nil {
			return fmt.Errorf("failed to load full configuration: %w", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal configuration: %w", err)
		}

		fmt.Fprintf(out, "\n📝 Detailed Configuration:\n```yaml\n%s```\n", string(data))
	}

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	language, _ := cmd.Flags().GetString("language")
	framework, _ := cmd.Flags().GetString("framework")
	outDir, _ := cmd.Flags().GetString("out")

	path := configPath(cmd)

	if !lo.Contains(config.ValidLanguages, language) {
		return fmt.Errorf("unsupported language '%s', valid options are: %s", language, strings.Join(config.ValidLanguages, ", "))
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists: %s\nUse --force to overwrite", path)
		}
	}

	cfg := config.DefaultConfig()
	cfg.Language = language
	cfg.Framework = framework
	cfg.OutputDir = outDir

	if err := config.WriteConfig(path, cfg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✅ Created configuration file: %s\n", path)
	fmt.Fprintf(out, "   Language: %s\n", language)
	fmt.Fprintf(out, "   Framework: %s\n", framework)

	return nil
}
