package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	sdkadapter "go.trai.ch/memo/internal/adapters/sdk"
)

func (c *CLI) newSdkCmd() *cobra.Command {
	var version string
	var roots []string

	cmd := &cobra.Command{
		Use:   "sdk <name>",
		Short: "Resolve an SDK by name against the configured search roots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(roots) == 0 {
				roots = filepath.SplitList(os.Getenv(sdkadapter.PathEnvVar))
			}

			result, err := c.app.ResolveSdk(cmd.Context(), args[0], version, roots)
			if err != nil {
				return err
			}

			cmd.Println(result.Path)
			if result.Version != "" {
				cmd.Println("version:", result.Version)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&version, "version", "v", "", "SDK version to resolve (highest when omitted)")
	cmd.Flags().StringArrayVarP(&roots, "root", "r", nil, "SDK search root (repeatable)")

	return cmd
}
