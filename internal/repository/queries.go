package repository

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/qustavo/dotsql"
)

//go:embed queries/*.sql
var queriesFS embed.FS

// Statement names, as declared with "-- name:" in queries/*.sql. They
// double as the statement label of the storage metrics.
const (
	stmtCreateChannel = "create-channel"
	stmtGetChannel    = "get-channel"
	stmtUpdateChannel = "update-channel"
	stmtDeleteChannel = "delete-channel"
)

var requiredStatements = []string{
	stmtCreateChannel,
	stmtGetChannel,
	stmtUpdateChannel,
	stmtDeleteChannel,
}

// Queries holds the named SQL statements loaded from the embedded files.
// Every statement is resolved once at load time, so a missing or renamed
// query fails at startup instead of on the first request.
type Queries struct {
	raw map[string]string
}

// LoadQueries parses all embedded .sql files.
func LoadQueries() (*Queries, error) {
	var combinedSQL strings.Builder

	err := fs.WalkDir(queriesFS, "queries", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".sql" {
			return nil
		}

		content, err := queriesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		combinedSQL.Write(content)
		combinedSQL.WriteString("\n")
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load query files: %w", err)
	}

	dot, err := dotsql.LoadFromString(combinedSQL.String())
	if err != nil {
		return nil, fmt.Errorf("failed to parse queries: %w", err)
	}

	q := &Queries{raw: make(map[string]string, len(requiredStatements))}
	for _, name := range requiredStatements {
		query, err := dot.Raw(name)
		if err != nil {
			return nil, fmt.Errorf("query not found: %s", name)
		}
		q.raw[name] = strings.TrimSpace(query)
	}

	return q, nil
}

// SQL returns the statement text for name.
func (q *Queries) SQL(name string) string {
	return q.raw[name]
}
