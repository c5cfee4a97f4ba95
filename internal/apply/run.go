package apply

import (
	"fmt"
	"strings"

	"genrefill/internal/artist"
	"genrefill/internal/discover"
	"genrefill/internal/errmsg"
)

// Report aggregates one batch run.
type Report struct {
	Successes int
	Outcomes  []string
	Warnings  []string
}

// Run resolves the selection into target files and applies the edits
// to each one sequentially. Per-file failures are recorded as outcome
// lines and never abort the remaining files. With zero discovered
// targets no file is touched and only the discovery warnings are
// returned.
func (a *Applier) Run(selection []string, genre, artistText string, join bool) Report {
	found := discover.Collect(selection)

	rep := Report{Warnings: found.Warnings}
	if len(found.Targets) == 0 {
		return rep
	}

	var names []string
	if strings.TrimSpace(artistText) != "" {
		names = artist.Normalize([]string{artistText})
	}

	for _, target := range found.Targets {
		if err := a.Apply(target, genre, names, join); err != nil {
			rep.Outcomes = append(rep.Outcomes, errmsg.FormatWith(errmsg.OpApplyTags, target, err))
			continue
		}
		rep.Successes++
		rep.Outcomes = append(rep.Outcomes, fmt.Sprintf("updated: %s", target))
	}

	return rep
}
