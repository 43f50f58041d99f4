package notification

import (
	"fmt"
	"time"

	"opsboard/internal/domain/employee"
	"opsboard/internal/domain/project"
	"opsboard/internal/domain/query"
)

// Lookahead is how far into the future expiry dates trigger a warning.
const Lookahead = 48 * time.Hour

const (
	categoryPersonnel = "personnel"
	categoryProjects  = "projects"
)

// Scan walks the employee and project snapshots and derives the full
// notification set for the given reference time. Pure: same inputs,
// same output, ids included. The window check is inclusive on both
// ends; dates already in the past emit nothing for employees.
func Scan(now time.Time, employees []employee.Employee, projects []project.Project) []Notification {
	var out []Notification

	for _, e := range employees {
		if n, ok := expiryWarning(now, e.ContractEnd,
			"contract-"+e.ID,
			"Contract expires soon",
			fmt.Sprintf("The contract of %s expires on %s", e.FullName, displayDate(e.ContractEnd)),
		); ok {
			out = append(out, n)
		}
		if n, ok := expiryWarning(now, e.MedicalCertificate.ExpirationDate,
			"medical-"+e.ID,
			"Medical certificate expires soon",
			fmt.Sprintf("The medical certificate of %s expires on %s", e.FullName, displayDate(e.MedicalCertificate.ExpirationDate)),
		); ok {
			out = append(out, n)
		}
		if n, ok := expiryWarning(now, e.Insurance.ExpirationDate,
			"insurance-"+e.ID,
			"Insurance expires soon",
			fmt.Sprintf("The insurance of %s expires on %s", e.FullName, displayDate(e.Insurance.ExpirationDate)),
		); ok {
			out = append(out, n)
		}
	}

	for _, p := range projects {
		end, ok := query.ParseDate(p.EndDate)
		if !ok {
			continue
		}

		if d := end.Sub(now); d >= 0 && d <= Lookahead {
			out = append(out, Notification{
				ID:        "project-" + p.ID,
				Kind:      KindInfo,
				Title:     "Project deadline approaching",
				Message:   fmt.Sprintf("The project %q is due on %s", p.Nature, displayDate(p.EndDate)),
				Timestamp: now,
				Category:  categoryProjects,
				Priority:  PriorityMedium,
			})
		}

		if end.Before(now) && p.Status != project.StatusDone {
			out = append(out, Notification{
				ID:        "late-project-" + p.ID,
				Kind:      KindError,
				Title:     "Project overdue",
				Message:   fmt.Sprintf("The project %q has been overdue since %s", p.Nature, displayDate(p.EndDate)),
				Timestamp: now,
				Category:  categoryProjects,
				Priority:  PriorityHigh,
			})
		}
	}

	// All entries carry the same timestamp, so the stable sort keeps
	// the scan's insertion order.
	query.SortStable(out, func(a, b Notification) bool {
		return a.Timestamp.After(b.Timestamp)
	})
	return out
}

func expiryWarning(now time.Time, date, id, title, message string) (Notification, bool) {
	t, ok := query.ParseDate(date)
	if !ok {
		return Notification{}, false
	}
	if d := t.Sub(now); d < 0 || d > Lookahead {
		return Notification{}, false
	}
	return Notification{
		ID:        id,
		Kind:      KindWarning,
		Title:     title,
		Message:   message,
		Timestamp: now,
		Category:  categoryPersonnel,
		Priority:  PriorityHigh,
	}, true
}

func displayDate(s string) string {
	if t, ok := query.ParseDate(s); ok {
		return t.Format("02/01/2006")
	}
	return s
}
