package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZebulonRouseFrantzich/mambastrap/internal/download"
	"github.com/ZebulonRouseFrantzich/mambastrap/internal/platform"
)

func newResolveCmd() *cobra.Command {
	var osID, archID, baseURL string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the micromamba download URL for this machine",
		Long: `Print the release URL the installer would download.

--os accepts windows, linux or macos and --arch accepts x86_64 or arm.
Values not given are taken from the running machine.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if osID == "" || archID == "" {
				info, err := platform.NewDetector().Detect(commandContext(cmd))
				if err != nil {
					return fmt.Errorf("detect platform: %w", err)
				}
				if osID == "" {
					osID = info.OS
				}
				if archID == "" {
					archID = info.Arch
				}
			}

			target, err := platform.Resolve(osID, archID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), download.ArtifactURL(baseURL, target))
			return nil
		},
	}

	cmd.Flags().StringVar(&osID, "os", "", "operating system identifier")
	cmd.Flags().StringVar(&archID, "arch", "", "architecture identifier")
	cmd.Flags().StringVar(&baseURL, "base-url", download.DefaultBaseURL, "release URL prefix")

	return cmd
}
