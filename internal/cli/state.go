package cli

import (
	"fmt"

	"github.com/billie-coop/swipetabs/internal/config"
	"github.com/billie-coop/swipetabs/internal/state"
	"github.com/billie-coop/swipetabs/internal/tui/components/tabstrip"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func stateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or reset the saved tab strip state",
	}

	store := func() *state.StripStore {
		return state.NewStripStore(config.NewManager(opts.dir).StatePath())
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the saved page and strip style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := store()
			if err := s.Load(); err != nil {
				return err
			}
			out, err := formatState(s.Get(), format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	show.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store().Reset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "state reset")
			return nil
		},
	}

	cmd.AddCommand(show, reset)
	return cmd
}

func formatState(s tabstrip.SavedState, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(s)
	case "json":
		data, err := tabstrip.EncodeState(s)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}
