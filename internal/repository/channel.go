package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pkgerrors "github.com/pkg/errors"

	"github.com/deppfellow/channeld/internal/errs"
	"github.com/deppfellow/channeld/internal/metrics"
	"github.com/deppfellow/channeld/internal/model/channel"
)

// DBTX is the subset of *pgxpool.Pool used by the repositories. Each call
// acquires a pooled connection for exactly one statement and releases it
// on every exit path.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ChannelRepository runs the channel statements. It holds no state other
// than the injected pool, so one instance serves concurrent requests.
type ChannelRepository struct {
	db      DBTX
	queries *Queries
}

func NewChannelRepository(db DBTX, queries *Queries) *ChannelRepository {
	return &ChannelRepository{db: db, queries: queries}
}

// CreateChannel inserts the full record. added_at is set by the database
// and a missing suppress is stored as false. A second insert with the same
// channel_id fails with the database's unique violation; the existing row
// is never touched.
func (r *ChannelRepository) CreateChannel(ctx context.Context, payload *channel.CreateChannelPayload) error {
	start := time.Now()
	_, err := r.db.Exec(ctx, r.queries.SQL(stmtCreateChannel),
		payload.ChannelID,
		payload.ChannelName,
		payload.GuildID,
		payload.GuildName,
		payload.AddedBy,
		payload.SuppressOrDefault(),
	)
	metrics.ObserveStatement(stmtCreateChannel, statementResult(err), start)
	if err != nil {
		return pkgerrors.Wrap(err, "channelRepo.CreateChannel")
	}

	return nil
}

// GetChannelByID returns the stored record without its id. A missing row
// is reported as NotFound naming the id.
func (r *ChannelRepository) GetChannelByID(ctx context.Context, channelID int64) (*channel.Channel, error) {
	var (
		channelName string
		guildID     int64
		guildName   string
		suppress    bool
	)

	start := time.Now()
	err := r.db.QueryRow(ctx, r.queries.SQL(stmtGetChannel), channelID).
		Scan(&channelName, &guildID, &guildName, &suppress)
	metrics.ObserveStatement(stmtGetChannel, statementResult(err), start)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError(fmt.Sprintf("Could not find %d", channelID))
		}
		return nil, pkgerrors.Wrap(err, "channelRepo.GetChannelByID")
	}

	return &channel.Channel{
		ChannelName: &channelName,
		GuildID:     &guildID,
		GuildName:   &guildName,
		Suppress:    &suppress,
	}, nil
}

// UpdateChannel merges the payload into the stored row in one statement:
// a nil suppress keeps the stored value. Updating a missing id affects no
// rows and is not an error.
func (r *ChannelRepository) UpdateChannel(ctx context.Context, payload *channel.UpdateChannelPayload) error {
	start := time.Now()
	_, err := r.db.Exec(ctx, r.queries.SQL(stmtUpdateChannel), payload.Suppress, payload.ChannelID)
	metrics.ObserveStatement(stmtUpdateChannel, statementResult(err), start)
	if err != nil {
		return pkgerrors.Wrap(err, "channelRepo.UpdateChannel")
	}

	return nil
}

// DeleteChannel removes the row if it exists. Deleting a missing id is
// not an error.
func (r *ChannelRepository) DeleteChannel(ctx context.Context, channelID int64) error {
	start := time.Now()
	_, err := r.db.Exec(ctx, r.queries.SQL(stmtDeleteChannel), channelID)
	metrics.ObserveStatement(stmtDeleteChannel, statementResult(err), start)
	if err != nil {
		return pkgerrors.Wrap(err, "channelRepo.DeleteChannel")
	}

	return nil
}

func statementResult(err error) string {
	var pgErr *pgconn.PgError
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, pgx.ErrNoRows):
		return metrics.ResultNoRows
	case errors.As(err, &pgErr):
		return metrics.ResultDBError
	default:
		return metrics.ResultError
	}
}
