package root

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vdobler/sketch"
	"github.com/vdobler/sketch/internal/document"
	"gopkg.in/yaml.v3"
)

// handleOutput prints result in the configured format.
func handleOutput(cmd *cobra.Command, result map[string]any) error {
	var output []byte

	f, err := document.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}
	switch f {
	case document.YAML:
		output, err = yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
	case document.TOML:
		output, err = toml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal to TOML: %w", err)
		}
	default:
		output, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

// writeFunction saves fn to path, or prints it in the configured format if
// path is empty.
func writeFunction(cmd *cobra.Command, fn *sketch.Function, path string) error {
	if path != "" {
		if err := document.Save(path, fn); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
		sketch.Logger().Info("function saved", "name", fn.Name, "path", path)
		return nil
	}

	f, err := document.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}
	return document.Encode(cmd.OutOrStdout(), fn, f)
}
