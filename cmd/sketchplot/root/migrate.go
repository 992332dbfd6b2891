package root

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/vdobler/sketch"
	"github.com/vdobler/sketch/internal/document"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate <file> [<output>]",
		Short: "Rewrite a function document in the current schema",
		Long: heredoc.Doc(`
			Read a function document, possibly in the older flat schema with
			a scale of top and bottom, and write it back with a scale of min
			and max. Without <output> the file is rewritten in place. The
			format of <output> may differ from the input.
		`),
		Example: heredoc.Doc(`
			$ sketchplot migrate old.json
			$ sketchplot migrate old.json new.toml
		`),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[0]
			if len(args) == 2 {
				out = args[1]
			}
			fn, err := document.Load(in)
			if err != nil {
				return err
			}
			if err := document.Save(out, fn); err != nil {
				return err
			}
			sketch.Logger().Info("migrated", "from", in, "to", out)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	return cmd
}
