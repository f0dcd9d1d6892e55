package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/vitae/docs"
	"github.com/teranos/vitae/filters"
)

var (
	grantsPI       bool
	grantsMultiPI  bool
	grantsSubaward bool
	grantsReverse  bool
	grantsMerge    bool
)

// GrantsCmd represents the grants command
var GrantsCmd = &cobra.Command{
	Use:   "grants NAME...",
	Short: "List grants for a set of team members",
	Long: `grants - List grants involving the given people

Filters the grants collection down to grants whose team contains one of the
given names, with PI or subaward accounting, sorted by end date. With
--merge-proposals, proposal records are overlaid with their awarded grant
records first.

Examples:
  vitae grants "A. Person" --pi
  vitae grants "A. Person" --subaward --merge-proposals`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGrants,
}

func init() {
	GrantsCmd.Flags().BoolVar(&grantsPI, "pi", true, "PI accounting: keep only PI-role grants and total their amounts")
	GrantsCmd.Flags().BoolVar(&grantsMultiPI, "multi-pi", false, "Attach subaward amounts for multi-PI grants")
	GrantsCmd.Flags().BoolVar(&grantsSubaward, "subaward", false, "Subaward accounting for non-PI participants")
	GrantsCmd.Flags().BoolVar(&grantsReverse, "reverse", true, "Most recent first")
	GrantsCmd.Flags().BoolVar(&grantsMerge, "merge-proposals", false, "Overlay awarded grant records on proposal records first")
}

func runGrants(cmd *cobra.Command, args []string) error {
	dir, err := collectionDir(cmd)
	if err != nil {
		return err
	}
	grants, err := loadCollection(dir, "grants")
	if err != nil {
		return err
	}

	if grantsMerge {
		proposals, err := loadCollection(dir, "proposals")
		if err != nil {
			return err
		}
		grants = docs.FlattenChains(docs.MergeCollections(proposals, grants, "proposal_id"))
	}

	opt := filters.GrantOptions{Reverse: grantsReverse}
	switch {
	case grantsMultiPI:
		opt.Mode = filters.GrantModeMultiPI
	case grantsSubaward:
		opt.Mode = filters.GrantModeSubaward
	default:
		opt.Mode = filters.GrantModePI
	}

	result, totals, err := filters.Grants(grants, filters.NewNameSet(args...), opt)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return outputJSON(map[string]any{
			"grants":          result,
			"total_amount":    totals.Amount,
			"subaward_amount": totals.Subaward,
		})
	}

	rows := pterm.TableData{{"ID", "Title", "Amount", "End"}}
	for _, grant := range result {
		rows = append(rows, []string{
			grant.ID(),
			grant.Str("title"),
			pterm.Sprintf("%.2f", grant.FloatOr("amount", 0)),
			intField(grant, "end_year"),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("total: %.2f  subaward: %.2f\n", totals.Amount, totals.Subaward)
	return nil
}
