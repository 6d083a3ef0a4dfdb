package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/webembed/internal/cli/styles"
	"github.com/bnema/webembed/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration in effect after defaults, the config file and
WEBEMBED_* environment variables are merged.`,
	RunE: runConfig,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()

	if app.LoadErr != nil {
		fmt.Fprintln(out, renderer.RenderError(app.LoadErr))
	}
	fmt.Fprintln(out, renderer.RenderConfigInfo(app.Manager.ConfigFile()))

	data, err := yaml.Marshal(app.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Fprintln(out, renderer.RenderBody(string(data)))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
