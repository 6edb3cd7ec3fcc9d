package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/vrcomputing/readmegen/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved settings",
	Long: `Print the settings a generation pass would use, after applying defaults,
.readmegen.yaml in the root, READMEGEN_* environment variables and flags.
The root itself comes only from --root or READMEGEN_ROOT; a root key in
.readmegen.yaml is rejected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.Load(settings)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshaling settings: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}
