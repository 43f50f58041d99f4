package notification

import (
	"context"
	"testing"
	"time"

	"opsboard/internal/domain/employee"
	"opsboard/internal/domain/project"
	"opsboard/internal/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeSource struct {
	employees []employee.Employee
	calls     int
}

func (f *fakeEmployeeSource) List(ctx context.Context, ownerID string, filter employee.Filter, sortKey string) ([]employee.Employee, error) {
	f.calls++
	return f.employees, nil
}

type fakeProjectSource struct {
	projects []project.Project
}

func (f *fakeProjectSource) List(ctx context.Context, ownerID string, filter project.Filter, sortKey string) ([]project.Project, error) {
	return f.projects, nil
}

func newTestService(emps *fakeEmployeeSource, projs *fakeProjectSource) *Service {
	svc := NewService(emps, projs, logger.New("local"))
	svc.now = func() time.Time { return now }
	return svc
}

func TestListCachesUntilInvalidated(t *testing.T) {
	emps := &fakeEmployeeSource{employees: []employee.Employee{
		{ID: "e-1", FullName: "Karim Haddad", ContractEnd: date(now.Add(time.Hour))},
	}}
	svc := newTestService(emps, &fakeProjectSource{})

	got, err := svc.List(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, emps.calls)

	// Second read is served from the snapshot.
	_, err = svc.List(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 1, emps.calls)

	// A mutation elsewhere drops the snapshot; next read re-scans.
	svc.Invalidate("owner-1")
	_, err = svc.List(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 2, emps.calls)
}

func TestReadStateIsTransient(t *testing.T) {
	emps := &fakeEmployeeSource{employees: []employee.Employee{
		{ID: "e-1", FullName: "Ana Costa", ContractEnd: date(now.Add(time.Hour))},
	}}
	svc := newTestService(emps, &fakeProjectSource{})

	require.NoError(t, svc.MarkRead(context.Background(), "owner-1", "contract-e-1"))

	got, err := svc.List(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Read)

	// Regeneration starts from scratch: the read flag is gone.
	svc.InvalidateAll()
	got, err = svc.List(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Read)
}

func TestMarkReadUnknownID(t *testing.T) {
	svc := newTestService(&fakeEmployeeSource{}, &fakeProjectSource{})

	err := svc.MarkRead(context.Background(), "owner-1", "contract-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDismissRemovesFromSnapshot(t *testing.T) {
	emps := &fakeEmployeeSource{employees: []employee.Employee{
		{ID: "e-1", FullName: "Karim Haddad", ContractEnd: date(now.Add(time.Hour))},
		{ID: "e-2", FullName: "Ana Costa", ContractEnd: date(now.Add(2 * time.Hour))},
	}}
	svc := newTestService(emps, &fakeProjectSource{})

	require.NoError(t, svc.Dismiss(context.Background(), "owner-1", "contract-e-1"))

	got, err := svc.List(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "contract-e-2", got[0].ID)
}

func TestMarkAllRead(t *testing.T) {
	emps := &fakeEmployeeSource{employees: []employee.Employee{
		{ID: "e-1", FullName: "Karim Haddad", ContractEnd: date(now.Add(time.Hour))},
		{ID: "e-2", FullName: "Ana Costa", ContractEnd: date(now.Add(2 * time.Hour))},
	}}
	svc := newTestService(emps, &fakeProjectSource{})

	require.NoError(t, svc.MarkAllRead(context.Background(), "owner-1"))

	got, err := svc.List(context.Background(), "owner-1")
	require.NoError(t, err)
	for _, n := range got {
		assert.True(t, n.Read)
	}
}

func TestSchedulerSweepsCaches(t *testing.T) {
	emps := &fakeEmployeeSource{employees: []employee.Employee{
		{ID: "e-1", FullName: "Karim Haddad", ContractEnd: date(now.Add(time.Hour))},
	}}
	svc := newTestService(emps, &fakeProjectSource{})

	_, err := svc.List(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 1, emps.calls)

	sched := NewScheduler(svc, logger.New("local"))
	sched.interval = 10 * time.Millisecond
	sched.Start(context.Background())

	assert.Eventually(t, func() bool {
		_, err := svc.List(context.Background(), "owner-1")
		require.NoError(t, err)
		return emps.calls > 1
	}, time.Second, 5*time.Millisecond)

	sched.Stop()
}
