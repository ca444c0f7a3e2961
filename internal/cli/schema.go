package cli

import (
	"encoding/json"
	"fmt"

	"github.com/Borislavv/go-image-cache/config"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

const schemaID = "https://github.com/Borislavv/go-image-cache/config.schema.json"

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := configSchema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func configSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&config.Cache{})
	schema.ID = schemaID
	schema.Title = "imgcache configuration"
	schema.Description = "Configuration of the bounded, time-expiring image cache"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
