package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/llcheck/internal/envfile"
	"github.com/thoreinstein/llcheck/internal/errors"
)

var schemaJSON bool

func init() {
	schemaCmd.Flags().BoolVar(&schemaJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the fields an environment file must define",
	Long: `Show the required top-level fields and their types, the fields every
server entry must carry, and the fields that must hold absolute paths.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

// schemaField is one row of the JSON schema output.
type schemaField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// schemaOutput is the JSON form of the schema.
type schemaOutput struct {
	Required      []schemaField `json:"required"`
	Server        []schemaField `json:"server"`
	AbsolutePaths []string      `json:"absolute_paths"`
}

func runSchema(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if schemaJSON {
		s := schemaOutput{
			Required:      toSchemaFields(envfile.RequiredFields()),
			Server:        toSchemaFields(envfile.ServerFields()),
			AbsolutePaths: []string{},
		}
		for _, p := range envfile.AbsolutePathFields() {
			s.AbsolutePaths = append(s.AbsolutePaths, p.Name)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(s), "encoding schema")
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Required fields:")
	for _, f := range envfile.RequiredFields() {
		fmt.Fprintf(w, "  %s\t%s\n", f.Name, f.Type)
	}
	fmt.Fprintln(w, "\nServer entry fields:")
	for _, f := range envfile.ServerFields() {
		fmt.Fprintf(w, "  %s\t%s\n", f.Name, f.Type)
	}
	fmt.Fprintln(w, "\nAbsolute paths:")
	for _, p := range envfile.AbsolutePathFields() {
		fmt.Fprintf(w, "  %s\t%s\n", p.Name, p.Label)
	}
	return errors.Wrap(w.Flush(), "writing schema")
}

func toSchemaFields(fields []envfile.Field) []schemaField {
	out := make([]schemaField, 0, len(fields))
	for _, f := range fields {
		out = append(out, schemaField{Name: f.Name, Type: f.Type.String()})
	}
	return out
}
