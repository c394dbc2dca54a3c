package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/barisgit/overmind-guide/config"
)

// selection is the language mode and framework a command operates on
type selection struct {
	TypeScript bool
	Framework  string
	Config     *config.GuideConfig
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.DefaultLoadOptions().Path
	}
	return path
}

func configExists(cmd *cobra.Command) bool {
	_, err := os.Stat(configPath(cmd))
	return err == nil
}

// resolveSelection merges guide.yaml with the positional framework and the
// --ts flag. Explicit arguments win over the config file.
func resolveSelection(cmd *cobra.Command, args []string) (*selection, error) {
	cfg, err := config.LoadConfigWithDefaults(configPath(cmd), true)
	if err != nil {
		return nil, err
	}

	sel := &selection{
		TypeScript: cfg.IsTypeScript(),
		Framework:  cfg.Framework,
		Config:     cfg,
	}

	if len(args) > 0 {
		sel.Framework = args[0]
	}
	if cmd.Flags().Changed("ts") {
		sel.TypeScript, _ = cmd.Flags().GetBool("ts")
	}

	return sel, nil
}
