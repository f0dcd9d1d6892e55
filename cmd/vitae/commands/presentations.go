package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/vitae/filters"
	"github.com/teranos/vitae/rc"
)

var (
	presTypes    []string
	presStatuses []string
	presSince    string
	presBefore   string
)

// PresentationsCmd represents the presentations command
var PresentationsCmd = &cobra.Command{
	Use:   "presentations TARGET",
	Short: "List presentations for a group member",
	Long: `presentations - List presentations authored by the given person

The target may be a person id, canonical name, or alias; it is resolved
against the people collection. Presentations are gated by authorship,
status, type, and date window, then sorted most recent first.

Examples:
  vitae presentations apolo
  vitae presentations "A. Person" --types invited,keynote --since 2020-01-01`,
	Args: cobra.ExactArgs(1),
	RunE: runPresentations,
}

func init() {
	PresentationsCmd.Flags().StringSliceVar(&presTypes, "types", nil, "Type allow-list, or 'all' (default from config)")
	PresentationsCmd.Flags().StringSliceVar(&presStatuses, "statuses", nil, "Status allow-list, or 'all' (default from config)")
	PresentationsCmd.Flags().StringVar(&presSince, "since", "", "Only presentations on or after this date (YYYY-MM-DD)")
	PresentationsCmd.Flags().StringVar(&presBefore, "before", "", "Only presentations on or before this date (YYYY-MM-DD)")
}

func runPresentations(cmd *cobra.Command, args []string) error {
	dir, err := collectionDir(cmd)
	if err != nil {
		return err
	}
	people, err := loadCollection(dir, "people")
	if err != nil {
		return err
	}
	presentations, err := loadCollection(dir, "presentations")
	if err != nil {
		return err
	}
	institutions, err := loadCollection(dir, "institutions")
	if err != nil {
		return err
	}

	config, err := rc.Load()
	if err != nil {
		return err
	}
	opt := filters.PresentationOptions{
		Types:    presTypes,
		Statuses: presStatuses,
	}
	if len(opt.Types) == 0 {
		opt.Types = config.Filters.PresentationTypes
	}
	if len(opt.Statuses) == 0 {
		opt.Statuses = config.Filters.PresentationStatuses
	}
	if opt.Since, err = parseDateFlag(presSince); err != nil {
		return err
	}
	if opt.Before, err = parseDateFlag(presBefore); err != nil {
		return err
	}

	result, err := filters.Presentations(people, presentations, institutions, args[0], opt)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return outputJSON(result)
	}

	rows := pterm.TableData{{"Date", "Type", "Title", "Institution"}}
	for _, pres := range result {
		institution := ""
		if inst, ok := pres.Sub("institution"); ok {
			institution = inst.Str("name")
		}
		rows = append(rows, []string{
			filters.DateKey(pres).Format("2006-01-02"),
			pres.Str("type"),
			pres.Str("title"),
			institution,
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("%d presentations (types: %s, statuses: %s)\n",
		len(result), strings.Join(opt.Types, ","), strings.Join(opt.Statuses, ","))
	return nil
}
