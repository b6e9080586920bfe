// Package schedule computes which planned communications are due. It is
// side-effect free and depends only on the project data shape, not on the
// store or its I/O.
package schedule

import (
	"sort"
	"time"

	"commsagent/internal/domain/models"
)

// Due pairs a pending plan entry with its owning project.
type Due struct {
	Project      *models.Project
	Comm         *models.PlannedComm
	DaysUntilDue int
}

// DueWithin returns every pending planned communication whose target date
// falls within days of now, inclusive on both ends, ordered most urgent
// first (ascending days-until-due, stable for ties). Entries already sent
// and entries with unparseable target dates are skipped. Empty input yields
// an empty result.
func DueWithin(projects []*models.Project, now time.Time, days int) []Due {
	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var due []Due
	for _, p := range projects {
		for i := range p.CommsPlan.PlannedComms {
			comm := &p.CommsPlan.PlannedComms[i]
			if comm.Status != models.CommPending {
				continue
			}

			target, err := time.Parse(models.DateLayout, comm.TargetDate)
			if err != nil {
				continue
			}

			daysUntil := int(target.Sub(nowDate).Hours() / 24)
			if daysUntil < 0 || daysUntil > days {
				continue
			}

			due = append(due, Due{
				Project:      p,
				Comm:         comm,
				DaysUntilDue: daysUntil,
			})
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DaysUntilDue < due[j].DaysUntilDue
	})

	return due
}
