package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/alleslabs/aldus-api/internal/dataset"
	pkgconfig "github.com/alleslabs/aldus-api/pkg/config"
	"github.com/alleslabs/aldus-api/pkg/models"
)

const configSchemaName = "config"

var schemaCmd = &cobra.Command{
	Use:   "schema <dataset|config>",
	Short: "Print the JSON Schema of a dataset file or of the configuration",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return schemaNames(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := schemaFor(args[0])
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode schema: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func schemaNames() []string {
	names := []string{configSchemaName}
	for _, k := range dataset.AllKinds() {
		names = append(names, k.String())
	}
	slices.Sort(names)
	return names
}

// schemaFor describes the file a dataset kind is read from, which is always a list.
func schemaFor(name string) (*jsonschema.Schema, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}

	if name == configSchemaName {
		r.RequiredFromJSONSchemaTags = true
		return r.Reflect(&pkgconfig.Config{}), nil
	}

	kind, err := dataset.ParseKind(name)
	if err != nil {
		return nil, fmt.Errorf("%w (expected one of: %s)", err, strings.Join(schemaNames(), ", "))
	}

	switch kind {
	case dataset.Accounts:
		return r.Reflect([]models.Account{}), nil
	case dataset.Codes:
		return r.Reflect([]models.Code{}), nil
	case dataset.Contracts:
		return r.Reflect([]models.Contract{}), nil
	case dataset.Modules:
		return r.Reflect([]models.Module{}), nil
	case dataset.Assets:
		return r.Reflect([]models.RawAsset{}), nil
	case dataset.Entities:
		return r.Reflect([]models.RawEntity{}), nil
	case dataset.Chains:
		// registry entries are passed through untouched
		return &jsonschema.Schema{
			Version: jsonschema.Version,
			Type:    "array",
			Items:   &jsonschema.Schema{Type: "object"},
		}, nil
	}

	return nil, &dataset.UnknownDatasetError{Name: name}
}
