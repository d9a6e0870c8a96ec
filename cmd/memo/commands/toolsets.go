package commands

import (
	"sort"

	"github.com/spf13/cobra"
	"go.trai.ch/memo/internal/adapters/toolset"
)

func (c *CLI) newToolsetsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "toolsets",
		Short: "Print the toolset table read from a definition file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := c.app.Toolsets(file)
			if err != nil {
				return err
			}

			if table.Default != "" {
				cmd.Println("default:", table.Default)
			}

			versions := make([]string, 0, len(table.Toolsets))
			for v := range table.Toolsets {
				versions = append(versions, v)
			}
			sort.Strings(versions)

			for _, v := range versions {
				ts := table.Toolsets[v]
				cmd.Println(v, "=>", ts.ToolsPath)
				if sub := ts.DefaultSubToolsetVersion(); sub != "" {
					cmd.Println("  default sub-toolset:", sub)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", toolset.DefaultFilename, "Toolset definition file")

	return cmd
}
