package notification

import (
	"testing"
	"time"

	"opsboard/internal/domain/employee"
	"opsboard/internal/domain/project"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func date(t time.Time) string {
	return t.Format(time.RFC3339)
}

func TestScanIdempotent(t *testing.T) {
	employees := []employee.Employee{
		{ID: "e-1", FullName: "Karim Haddad", ContractEnd: date(now.Add(24 * time.Hour))},
	}
	projects := []project.Project{
		{ID: "p-1", Nature: "Rewire bldg A", Status: project.StatusInProgress, EndDate: date(now.Add(12 * time.Hour))},
	}

	first := Scan(now, employees, projects)
	second := Scan(now, employees, projects)
	assert.Equal(t, first, second)
}

func TestScanWindowBoundary(t *testing.T) {
	mkEmployee := func(exp time.Time) []employee.Employee {
		return []employee.Employee{{
			ID:                 "e-1",
			FullName:           "Ana Costa",
			MedicalCertificate: employee.MedicalCertificate{ExpirationDate: date(exp)},
		}}
	}

	// Exactly at the window edge: included.
	got := Scan(now, mkEmployee(now.Add(Lookahead)), nil)
	require.Len(t, got, 1)
	assert.Equal(t, "medical-e-1", got[0].ID)
	assert.Equal(t, KindWarning, got[0].Kind)
	assert.Equal(t, PriorityHigh, got[0].Priority)

	// One second past the edge: excluded.
	got = Scan(now, mkEmployee(now.Add(Lookahead+time.Second)), nil)
	assert.Empty(t, got)

	// Already expired: excluded, no overdue entry for personnel.
	got = Scan(now, mkEmployee(now.Add(-time.Second)), nil)
	assert.Empty(t, got)

	// Expiring right now: still within the window.
	got = Scan(now, mkEmployee(now), nil)
	assert.Len(t, got, 1)
}

func TestScanEmployeeAllThreeDates(t *testing.T) {
	employees := []employee.Employee{{
		ID:                 "e-1",
		FullName:           "Karim Haddad",
		ContractEnd:        date(now.Add(10 * time.Hour)),
		MedicalCertificate: employee.MedicalCertificate{ExpirationDate: date(now.Add(20 * time.Hour))},
		Insurance:          employee.Insurance{ExpirationDate: date(now.Add(30 * time.Hour))},
	}}

	got := Scan(now, employees, nil)
	require.Len(t, got, 3)
	assert.Equal(t, "contract-e-1", got[0].ID)
	assert.Equal(t, "medical-e-1", got[1].ID)
	assert.Equal(t, "insurance-e-1", got[2].ID)
}

func TestScanProjectDeadlineApproaching(t *testing.T) {
	projects := []project.Project{{
		ID:      "p-1",
		Nature:  "Rewire bldg A",
		Status:  project.StatusInProgress,
		EndDate: date(now.Add(24 * time.Hour)),
	}}

	got := Scan(now, nil, projects)
	require.Len(t, got, 1)
	assert.Equal(t, "project-p-1", got[0].ID)
	assert.Equal(t, KindInfo, got[0].Kind)
	assert.Equal(t, PriorityMedium, got[0].Priority)
	assert.Contains(t, got[0].Message, "Rewire bldg A")
}

func TestScanProjectOverdue(t *testing.T) {
	late := project.Project{
		ID:      "p-2",
		Nature:  "Repave car park",
		Status:  project.StatusInProgress,
		EndDate: date(now.Add(-72 * time.Hour)),
	}

	got := Scan(now, nil, []project.Project{late})
	require.Len(t, got, 1)
	assert.Equal(t, "late-project-p-2", got[0].ID)
	assert.Equal(t, KindError, got[0].Kind)
	assert.Equal(t, PriorityHigh, got[0].Priority)

	// The same project marked Done emits nothing.
	late.Status = project.StatusDone
	got = Scan(now, nil, []project.Project{late})
	assert.Empty(t, got)
}

func TestScanMissingDatesEmitNothing(t *testing.T) {
	employees := []employee.Employee{{ID: "e-1", FullName: "No Dates"}}
	projects := []project.Project{{ID: "p-1", Nature: "No deadline", Status: project.StatusInProgress}}

	assert.Empty(t, Scan(now, employees, projects))
}
