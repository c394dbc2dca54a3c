package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/barisgit/overmind-guide/openapi"
)

func OpenAPICmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Generate the OpenAPI description of the snippet API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			asYAML, _ := cmd.Flags().GetBool("yaml")

			api := openapi.NewSnippetAPI(http.NewServeMux(), version)
			if err := openapi.GenerateSpecToFile(api, output, asYAML); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ OpenAPI spec written to %s (%d routes)\n", output, openapi.GetRouteCount(api))
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "build/openapi.json", "Output file")
	cmd.Flags().Bool("yaml", false, "Write YAML instead of JSON")

	return cmd
}
