//go:build integration

package integration_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gymdesk/internal/access"
	"gymdesk/internal/attendance"
	"gymdesk/internal/calendar"
	"gymdesk/internal/config"
	"gymdesk/internal/db"
	"gymdesk/internal/discipline"
	"gymdesk/internal/member"
	"gymdesk/internal/membership"
	"gymdesk/internal/pricing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var testDB *sqlx.DB

// TestMain starts a throwaway Postgres unless TEST_DSN points at one already.
func TestMain(m *testing.M) {
	ctx := context.Background()

	dsn := os.Getenv("TEST_DSN")
	var container *postgres.PostgresContainer
	if dsn == "" {
		c, err := postgres.Run(ctx, "postgres:16-alpine",
			postgres.WithDatabase("gymdesk_test"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			postgres.BasicWaitStrategies(),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping integration tests: cannot start postgres: %v\n", err)
			os.Exit(0)
		}
		container = c

		dsn, err = c.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Fprintf(os.Stderr, "connection string: %v\n", err)
			_ = testcontainers.TerminateContainer(container)
			os.Exit(1)
		}
	}

	database, err := db.Connect(dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skipping integration tests: %v\n", err)
		os.Exit(0)
	}
	if err := db.RunMigrations(database, "../migrations"); err != nil {
		fmt.Fprintf(os.Stderr, "migrations: %v\n", err)
		os.Exit(1)
	}
	testDB = database

	code := m.Run()

	database.Close()
	if container != nil {
		_ = testcontainers.TerminateContainer(container)
	}
	os.Exit(code)
}

func cleanDatabase(t *testing.T) {
	t.Helper()
	_, err := testDB.Exec(`TRUNCATE attendances, membership_members, memberships, pricing_plans, disciplines, members RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "failed to clean tables")
}

// services is the production wiring without Redis.
type services struct {
	members     member.Service
	disciplines discipline.Service
	plans       pricing.Service
	memberships membership.Service
	access      access.Service
	attendance  attendance.Service
}

func newServices(t *testing.T, loc *time.Location) services {
	t.Helper()
	cache := access.NewCodeCache(nil, 0)

	s := services{}
	s.members = member.NewService(member.NewRepository(testDB), cache)
	s.disciplines = discipline.NewService(discipline.NewRepository(testDB))
	s.plans = pricing.NewService(pricing.NewRepository(testDB), s.disciplines)
	s.memberships = membership.NewService(
		membership.NewRepository(testDB),
		s.members,
		s.disciplines,
		s.plans,
		membership.Options{RenewalStartPolicy: config.RenewFromNow},
	)
	s.access = access.NewService(s.members, s.memberships, cache)
	s.attendance = attendance.NewService(attendance.NewRepository(testDB), s.access, s.members, calendar.StaticZone{Loc: loc}, nil)
	return s
}

func createMember(t *testing.T, s services, tenantID int, code, firstName string) *member.Member {
	t.Helper()
	m, err := s.members.Create(context.Background(), tenantID, member.CreateMemberRequest{Code: code, FirstName: firstName})
	require.NoError(t, err)
	return m
}

func createDiscipline(t *testing.T, s services, tenantID int, name string) *discipline.Discipline {
	t.Helper()
	d, err := s.disciplines.Create(context.Background(), tenantID, discipline.CreateDisciplineRequest{Name: name})
	require.NoError(t, err)
	return d
}
