package filters

import (
	"github.com/teranos/vitae/dates"
	"github.com/teranos/vitae/docs"
	"github.com/teranos/vitae/errors"
	"github.com/teranos/vitae/logger"
)

// PublicationOptions controls publication filtering.
type PublicationOptions struct {
	Window
	// Reverse orders most-recent-first
	Reverse bool
	// Bold wraps the matched authors' names in an emphasis macro
	Bold bool
	// BoldWrapper is the macro name used when Bold is set (default "textbf")
	BoldWrapper string
	// SkipOnError drops documents with contract violations instead of
	// aborting the batch. Opt-in; the default is fail-fast.
	SkipOnError bool
}

// Publications selects the publications whose author or editor list
// intersects the target set, gates them by the window on their publication
// date, optionally bolds the matched authors, and sorts by date key.
//
// A windowed publication missing its year is a contract violation
// (errors.ErrMissingField). The publication date's month defaults to
// December and its day to the last day of that month.
func Publications(citations docs.Collection, authors NameSet, opt PublicationOptions) (docs.Collection, error) {
	wrapper := opt.BoldWrapper
	if wrapper == "" {
		wrapper = "textbf"
	}

	var pubs docs.Collection
	for _, pub := range citations {
		participants := append(pub.StrList("author"), pub.StrList("editor")...)
		if !authors.intersects(participants) {
			continue
		}

		windowed := opt.Since != nil || opt.Before != nil
		if windowed {
			year, ok := pub.Int("year")
			if !ok {
				err := errors.NewMissingFieldError("year", pub.ID())
				if opt.SkipOnError {
					logger.Warnw("skipping publication without year", "id", pub.ID())
					continue
				}
				return nil, err
			}
			month := pub["month"]
			if month == nil {
				month = 12
			}
			pubDate, err := dates.EndOf(year, month, pub.IntOr("day", 0))
			if err != nil {
				if opt.SkipOnError {
					logger.Warnw("skipping publication with invalid month",
						"id", pub.ID(), "error", err)
					continue
				}
				return nil, errors.Wrapf(err, "publication %q", pub.ID())
			}
			if !opt.Contains(pubDate) {
				continue
			}
		}

		pub = pub.DeepCopy()
		if opt.Bold {
			bolded := make([]any, 0, len(pub.List("author")))
			for _, a := range pub.StrList("author") {
				if authors.Has(a) {
					bolded = append(bolded, `\`+wrapper+`{`+a+`}`)
				} else {
					bolded = append(bolded, a)
				}
			}
			pub["author"] = bolded
		}
		pubs = append(pubs, pub)
	}

	sortByFloatKey(pubs, DocDateKey, opt.Reverse)
	return pubs, nil
}
