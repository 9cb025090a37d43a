package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/county-directory/console/modules/logging/domain/entities/actionlog"
	"github.com/county-directory/console/modules/logging/domain/entities/authenticationlog"
)

type mockAuthLogRepo struct {
	lastParams *authenticationlog.FindParams
	created    []*authenticationlog.AuthenticationLog
	listCalls  int
	countErr   error
}

func (m *mockAuthLogRepo) List(ctx context.Context, params *authenticationlog.FindParams) ([]*authenticationlog.AuthenticationLog, error) {
	m.lastParams = params
	m.listCalls++
	return m.created, nil
}

func (m *mockAuthLogRepo) Count(ctx context.Context, params *authenticationlog.FindParams) (int64, error) {
	m.lastParams = params
	return int64(len(m.created)), m.countErr
}

func (m *mockAuthLogRepo) Create(ctx context.Context, log *authenticationlog.AuthenticationLog) error {
	m.created = append(m.created, log)
	return nil
}

type mockActionLogRepo struct {
	lastParams *actionlog.FindParams
	created    []*actionlog.ActionLog
	listCalls  int
}

func (m *mockActionLogRepo) List(ctx context.Context, params *actionlog.FindParams) ([]*actionlog.ActionLog, error) {
	m.lastParams = params
	m.listCalls++
	return m.created, nil
}

func (m *mockActionLogRepo) Count(ctx context.Context, params *actionlog.FindParams) (int64, error) {
	m.lastParams = params
	return int64(len(m.created)), nil
}

func (m *mockActionLogRepo) Create(ctx context.Context, log *actionlog.ActionLog) error {
	m.created = append(m.created, log)
	return nil
}

func TestLogsService_EmptyJournalSkipsList(t *testing.T) {
	authRepo := &mockAuthLogRepo{}
	actionRepo := &mockActionLogRepo{}
	svc := NewLogsService(authRepo, actionRepo)

	page, err := svc.Authentications(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Empty(t, page.Entries)
	assert.NotNil(t, authRepo.lastParams)
	assert.Zero(t, authRepo.listCalls)

	actions, err := svc.Actions(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, actions.Total)
	assert.NotNil(t, actionRepo.lastParams)
	assert.Zero(t, actionRepo.listCalls)
}

func TestLogsService_RecordStampsTime(t *testing.T) {
	authRepo := &mockAuthLogRepo{}
	actionRepo := &mockActionLogRepo{}
	svc := NewLogsService(authRepo, actionRepo)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	require.NoError(t, svc.RecordAuthentication(context.Background(), &authenticationlog.AuthenticationLog{Kind: authenticationlog.KindLogin, Username: "admin"}))
	earlier := now.Add(-time.Hour)
	require.NoError(t, svc.RecordAction(context.Background(), &actionlog.ActionLog{Event: "county.created", CreatedAt: earlier}))

	assert.Equal(t, now, authRepo.created[0].CreatedAt)
	assert.Equal(t, earlier, actionRepo.created[0].CreatedAt)

	page, err := svc.Authentications(context.Background(), &authenticationlog.FindParams{Username: "admin"})
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, "admin", authRepo.lastParams.Username)
}

func TestLogsService_RejectsNilEntries(t *testing.T) {
	svc := NewLogsService(&mockAuthLogRepo{}, &mockActionLogRepo{})
	assert.ErrorIs(t, svc.RecordAuthentication(context.Background(), nil), ErrEmptyEntry)
	assert.ErrorIs(t, svc.RecordAction(context.Background(), nil), ErrEmptyEntry)
}

func TestLogsService_WrapsCountError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewLogsService(&mockAuthLogRepo{countErr: boom}, &mockActionLogRepo{})

	_, err := svc.Authentications(context.Background(), nil)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "count authentication logs")
}
