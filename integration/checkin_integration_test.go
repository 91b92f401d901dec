//go:build integration

package integration_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gymdesk/internal/attendance"
	"gymdesk/internal/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIn_ConcurrentSameDay(t *testing.T) {
	cleanDatabase(t)
	s := newServices(t, time.UTC)
	ctx := context.Background()

	m := createMember(t, s, 1, "M100", "Ana")

	const workers = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		recorded  int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.attendance.CheckIn(ctx, 1, attendance.CheckInInput{MemberCode: "m100"})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				recorded++
			case errors.Is(err, attendance.ErrAlreadyCheckedIn):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, recorded)
	assert.Equal(t, workers-1, conflicts)

	var rows int
	require.NoError(t, testDB.Get(&rows, `SELECT COUNT(*) FROM attendances WHERE member_id = $1`, m.ID))
	assert.Equal(t, 1, rows)
}

func TestCheckIn_ConflictCarriesExisting(t *testing.T) {
	cleanDatabase(t)
	s := newServices(t, time.UTC)
	ctx := context.Background()

	createMember(t, s, 1, "M200", "Luis")

	first, err := s.attendance.CheckIn(ctx, 1, attendance.CheckInInput{MemberCode: "M200"})
	require.NoError(t, err)
	assert.Empty(t, first.ActiveMemberships)

	_, err = s.attendance.CheckIn(ctx, 1, attendance.CheckInInput{MemberCode: "M200"})
	var conflict *attendance.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, first.Attendance.ID, conflict.Existing.ID)
	assert.WithinDuration(t, first.Attendance.CheckedAt, conflict.ExistingCheckedAt, time.Millisecond)

	today, err := s.attendance.ListByDay(ctx, 1, time.Time{})
	require.NoError(t, err)
	assert.Len(t, today, 1)
}

func TestCheckIn_TenantIsolation(t *testing.T) {
	cleanDatabase(t)
	s := newServices(t, time.UTC)
	ctx := context.Background()

	// Один и тот же код в двух залах
	createMember(t, s, 1, "M300", "Eva")
	createMember(t, s, 2, "M300", "Ivan")

	_, err := s.attendance.CheckIn(ctx, 1, attendance.CheckInInput{MemberCode: "M300"})
	require.NoError(t, err)
	_, err = s.attendance.CheckIn(ctx, 2, attendance.CheckInInput{MemberCode: "M300"})
	require.NoError(t, err)

	_, err = s.attendance.CheckIn(ctx, 3, attendance.CheckInInput{MemberCode: "M300"})
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}
