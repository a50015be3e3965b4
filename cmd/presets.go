package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/leadgen-cli/internal/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available search presets",
	RunE: func(_ *cobra.Command, _ []string) error {
		reg, err := preset.Load(cfg.Presets.Path)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tQUERY\tFILTERS")
		for _, name := range reg.Names() {
			p, _ := reg.Get(name)
			fmt.Fprintf(tw, "%s\t%s\t%s\n", name, p.Query, presetFilters(p))
		}
		return tw.Flush()
	},
}

func presetFilters(p preset.Preset) string {
	var out string
	if p.MinRating > 0 {
		out += fmt.Sprintf("rating>=%.1f ", p.MinRating)
	}
	if p.RequirePhone {
		out += "phone "
	}
	if p.RequireWebsite {
		out += "website "
	}
	if out == "" {
		return "-"
	}
	return out
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
