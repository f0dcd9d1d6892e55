package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/vitae/filters"
	"github.com/teranos/vitae/rc"
)

var (
	publistSince   string
	publistBefore  string
	publistBold    bool
	publistReverse bool
)

// PublistCmd represents the publist command
var PublistCmd = &cobra.Command{
	Use:   "publist AUTHOR...",
	Short: "List publications for a set of authors",
	Long: `publist - List publications authored or edited by the given people

Filters the citations collection down to publications whose author or
editor list contains one of the given names, optionally restricted to a
date window, sorted by publication date.

Examples:
  vitae publist "A. Person"
  vitae publist "A. Person" "B. Other" --since 2019-01-01 --bold`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPublist,
}

func init() {
	PublistCmd.Flags().StringVar(&publistSince, "since", "", "Only publications on or after this date (YYYY-MM-DD)")
	PublistCmd.Flags().StringVar(&publistBefore, "before", "", "Only publications on or before this date (YYYY-MM-DD)")
	PublistCmd.Flags().BoolVar(&publistBold, "bold", false, "Wrap matched author names in an emphasis macro")
	PublistCmd.Flags().BoolVar(&publistReverse, "reverse", true, "Most recent first")
}

func runPublist(cmd *cobra.Command, args []string) error {
	dir, err := collectionDir(cmd)
	if err != nil {
		return err
	}
	citations, err := loadCollection(dir, "citations")
	if err != nil {
		return err
	}

	config, err := rc.Load()
	if err != nil {
		return err
	}
	opt := filters.PublicationOptions{
		Reverse:     publistReverse,
		Bold:        publistBold,
		BoldWrapper: config.Filters.BoldWrapper,
		SkipOnError: config.Filters.SkipOnError,
	}
	if opt.Since, err = parseDateFlag(publistSince); err != nil {
		return err
	}
	if opt.Before, err = parseDateFlag(publistBefore); err != nil {
		return err
	}

	pubs, err := filters.Publications(citations, filters.NewNameSet(args...), opt)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return outputJSON(pubs)
	}

	rows := pterm.TableData{{"Year", "Title", "Authors", "Journal"}}
	for _, pub := range pubs {
		rows = append(rows, []string{
			pub.StrOr("year", intField(pub, "year")),
			pub.Str("title"),
			strings.Join(pub.StrList("author"), ", "),
			pub.Str("journal"),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
