package sqlerr

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgproto3"
	"github.com/jackc/pgx/v5/pgxpool"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/channeld/internal/errs"
)

// rejectingServer accepts connections and answers every startup message
// with a FATAL error, the way PostgreSQL refuses a login or a client over
// max_connections.
func rejectingServer(t *testing.T, reply *pgproto3.ErrorResponse) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				backend := pgproto3.NewBackend(conn, conn)
				for {
					msg, err := backend.ReceiveStartupMessage()
					if err != nil {
						return
					}
					switch msg.(type) {
					case *pgproto3.SSLRequest, *pgproto3.GSSEncRequest:
						if _, err := conn.Write([]byte("N")); err != nil {
							return
						}
						continue
					}
					backend.Send(reply)
					_ = backend.Flush()
					return
				}
			}(conn)
		}
	}()

	return ln.Addr().String()
}

func TestHandleErrorConnectFailuresAreInternal(t *testing.T) {
	tests := []struct {
		name  string
		reply *pgproto3.ErrorResponse
	}{
		{
			name: "too many clients",
			reply: &pgproto3.ErrorResponse{
				Severity:            "FATAL",
				SeverityUnlocalized: "FATAL",
				Code:                "53300",
				Message:             "sorry, too many clients already",
			},
		},
		{
			name: "refused login",
			reply: &pgproto3.ErrorResponse{
				Severity:            "FATAL",
				SeverityUnlocalized: "FATAL",
				Code:                "28P01",
				Message:             `password authentication failed for user "channeld"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := rejectingServer(t, tt.reply)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			pool, err := pgxpool.New(ctx, fmt.Sprintf("postgres://channeld:secret@%s/channeld?sslmode=disable", addr))
			require.NoError(t, err)
			defer pool.Close()

			_, err = pool.Exec(ctx, "SELECT 1")
			require.Error(t, err)

			// the driver does carry the server's descriptor
			var pgErr *pgconn.PgError
			require.ErrorAs(t, err, &pgErr)
			assert.Equal(t, tt.reply.Code, pgErr.Code)

			got := HandleError(pkgerrors.Wrap(err, "channelRepo.CreateChannel"))

			var httpErr *errs.HTTPError
			require.ErrorAs(t, got, &httpErr)
			assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
			assert.Equal(t, "Internal Server Error", httpErr.Message)
			assert.Empty(t, httpErr.SQLState)
		})
	}
}
