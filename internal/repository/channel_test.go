package repository

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/channeld/internal/errs"
	"github.com/deppfellow/channeld/internal/metrics"
	"github.com/deppfellow/channeld/internal/model/channel"
)

func ptr[T any](v T) *T { return &v }

const (
	insertSQL = "INSERT INTO channels (channel_id, channel_name, guild_id, guild_name, added_at, added_by, suppress) VALUES ($1, $2, $3, $4, NOW(), $5, $6)"
	selectSQL = "SELECT channel_name, guild_id, guild_name, suppress FROM channels WHERE channel_id = $1"
	updateSQL = "UPDATE channels SET suppress = COALESCE($1::boolean, suppress) WHERE channel_id = $2"
	deleteSQL = "DELETE FROM channels WHERE channel_id = $1"
)

var duplicateKey = &pgconn.PgError{
	Severity:       "ERROR",
	Code:           "23505",
	Message:        `duplicate key value violates unique constraint "channels_pkey"`,
	ConstraintName: "channels_pkey",
}

func newRepo(t *testing.T) (*ChannelRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repos, err := NewRepositoriesWithDB(mock)
	require.NoError(t, err)

	return repos.Channel, mock
}

func createPayload() *channel.CreateChannelPayload {
	return &channel.CreateChannelPayload{
		ChannelID:   ptr(int64(1)),
		ChannelName: "general",
		GuildID:     ptr(int64(10)),
		GuildName:   "Guild",
		AddedBy:     ptr(int64(99)),
	}
}

func TestLoadQueries(t *testing.T) {
	q, err := LoadQueries()
	require.NoError(t, err)

	assert.Equal(t, insertSQL, q.SQL(stmtCreateChannel))
	assert.Equal(t, selectSQL, q.SQL(stmtGetChannel))
	assert.Equal(t, updateSQL, q.SQL(stmtUpdateChannel))
	assert.Equal(t, deleteSQL, q.SQL(stmtDeleteChannel))
}

func TestCreateChannel(t *testing.T) {
	t.Run("suppress defaults to false", func(t *testing.T) {
		repo, mock := newRepo(t)
		p := createPayload()

		mock.ExpectExec(regexp.QuoteMeta(insertSQL)).
			WithArgs(p.ChannelID, "general", p.GuildID, "Guild", p.AddedBy, false).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.CreateChannel(context.Background(), p))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("explicit suppress is stored", func(t *testing.T) {
		repo, mock := newRepo(t)
		p := createPayload()
		p.Suppress = ptr(true)

		mock.ExpectExec(regexp.QuoteMeta(insertSQL)).
			WithArgs(p.ChannelID, "general", p.GuildID, "Guild", p.AddedBy, true).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.CreateChannel(context.Background(), p))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate key keeps the database error", func(t *testing.T) {
		repo, mock := newRepo(t)
		p := createPayload()

		mock.ExpectExec(regexp.QuoteMeta(insertSQL)).
			WithArgs(p.ChannelID, "general", p.GuildID, "Guild", p.AddedBy, false).
			WillReturnError(duplicateKey)

		err := repo.CreateChannel(context.Background(), p)

		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		assert.Equal(t, "23505", pgErr.Code)
		assert.Contains(t, err.Error(), "channelRepo.CreateChannel")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetChannelByID(t *testing.T) {
	columns := []string{"channel_name", "guild_id", "guild_name", "suppress"}

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(columns).AddRow("general", int64(10), "Guild", false))

		got, err := repo.GetChannelByID(context.Background(), 1)
		require.NoError(t, err)

		assert.Nil(t, got.ChannelID)
		assert.Equal(t, "general", *got.ChannelName)
		assert.Equal(t, int64(10), *got.GuildID)
		assert.Equal(t, "Guild", *got.GuildName)
		require.NotNil(t, got.Suppress)
		assert.False(t, *got.Suppress)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not found", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).
			WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows(columns))

		got, err := repo.GetChannelByID(context.Background(), 42)
		assert.Nil(t, got)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Could not find 42", httpErr.Message)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("transport failure is wrapped", func(t *testing.T) {
		repo, mock := newRepo(t)
		cause := errors.New("conn closed")

		mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).
			WithArgs(int64(1)).
			WillReturnError(cause)

		_, err := repo.GetChannelByID(context.Background(), 1)

		assert.ErrorIs(t, err, cause)
		var httpErr *errs.HTTPError
		assert.False(t, errors.As(err, &httpErr), "only a missing row is classified here")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateChannel(t *testing.T) {
	tests := []struct {
		name     string
		suppress *bool
		tag      string
	}{
		{"explicit true", ptr(true), "UPDATE 1"},
		{"explicit false", ptr(false), "UPDATE 1"},
		{"omitted keeps stored value", nil, "UPDATE 1"},
		{"missing id is a silent no-op", ptr(true), "UPDATE 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)

			rows := int64(1)
			if tt.tag == "UPDATE 0" {
				rows = 0
			}
			mock.ExpectExec(regexp.QuoteMeta(updateSQL)).
				WithArgs(tt.suppress, int64(7)).
				WillReturnResult(pgxmock.NewResult("UPDATE", rows))

			err := repo.UpdateChannel(context.Background(), &channel.UpdateChannelPayload{
				ChannelID: 7,
				Suppress:  tt.suppress,
			})

			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("database error is wrapped", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectExec(regexp.QuoteMeta(updateSQL)).
			WithArgs(ptr(true), int64(7)).
			WillReturnError(&pgconn.PgError{Code: "40P01", Message: "deadlock detected"})

		err := repo.UpdateChannel(context.Background(), &channel.UpdateChannelPayload{ChannelID: 7, Suppress: ptr(true)})

		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		assert.Equal(t, "40P01", pgErr.Code)
	})
}

func TestDeleteChannel(t *testing.T) {
	for _, affected := range []int64{1, 0} {
		repo, mock := newRepo(t)

		mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", affected))

		assert.NoError(t, repo.DeleteChannel(context.Background(), 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	}

	t.Run("cancelled context fails", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).
			WithArgs(int64(3)).
			WillReturnError(context.Canceled)

		err := repo.DeleteChannel(context.Background(), 3)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestStatementResult(t *testing.T) {
	assert.Equal(t, metrics.ResultOK, statementResult(nil))
	assert.Equal(t, metrics.ResultNoRows, statementResult(pgx.ErrNoRows))
	assert.Equal(t, metrics.ResultDBError, statementResult(duplicateKey))
	assert.Equal(t, metrics.ResultError, statementResult(errors.New("dial tcp: i/o timeout")))
}
