package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vrcomputing/readmegen/internal/config"
	generr "github.com/vrcomputing/readmegen/internal/errors"
	"github.com/vrcomputing/readmegen/internal/manifest"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output issues in JSON format")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the extension manifest",
	Long: `Check the manifest against the JSON Schema of the fields the ReadMe uses,
and check that version is a semantic version and engines.vscode a version range.
Validation is advisory; generation only requires the fields it reads.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

// validateReport is the --json output shape.
type validateReport struct {
	Manifest string                     `json:"manifest"`
	Valid    bool                       `json:"valid"`
	Issues   []manifest.ValidationIssue `json:"issues"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := config.Load(settings)
	if err != nil {
		return err
	}
	path := s.Manifest
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.Root, path)
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if validateJSON {
		report := validateReport{Manifest: path, Valid: result.Valid, Issues: result.Issues}
		if report.Issues == nil {
			report.Issues = []manifest.ValidationIssue{}
		}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else if result.Valid {
		fmt.Fprintf(out, "%s is valid.\n", path)
	} else {
		fmt.Fprintf(out, "%s has %d issue(s):\n", path, len(result.Issues))
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  PATH\tKEYWORD\tMESSAGE")
		for _, issue := range result.Issues {
			p := issue.Path
			if p == "" {
				p = "/"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", p, issue.Keyword, issue.Message)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if !result.Valid {
		return generr.Errorf(generr.KindValidation, "%s failed validation with %d issue(s)", path, len(result.Issues))
	}
	return nil
}
