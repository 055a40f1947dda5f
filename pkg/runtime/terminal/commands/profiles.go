package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/liquidity-atlas/pkg/services/forecast"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	registry forecast.Registry
}

func NewProfilesCmd(registry forecast.Registry) *cobra.Command {
	pc := &ProfilesCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the profiles defined in the config file",
		RunE:  pc.run,
	}
	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, args []string) error {
	profiles, err := pc.registry.Profiles(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(profiles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No profiles configured")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(profiles, "\n"))
	return nil
}
