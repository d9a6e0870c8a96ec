package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGlobCmd() *cobra.Command {
	var baseDir string
	var showFingerprint bool

	cmd := &cobra.Command{
		Use:   "glob <pattern>",
		Short: "Expand a glob pattern through an evaluation context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, fingerprint, err := c.app.ExpandGlob(baseDir, args[0])
			if err != nil {
				return err
			}

			for _, m := range matches {
				cmd.Println(m)
			}
			if showFingerprint {
				cmd.Println("fingerprint:", fingerprint)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&baseDir, "dir", "d", ".", "Base directory to expand from")
	cmd.Flags().BoolVar(&showFingerprint, "fingerprint", false, "Print the digest of the ordered matches")

	return cmd
}
