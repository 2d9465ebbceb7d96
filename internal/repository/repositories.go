package repository

import (
	"github.com/deppfellow/channeld/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Channel *ChannelRepository
}

// NewRepositories builds every repository on the server's pool.
func NewRepositories(s *server.Server) (*Repositories, error) {
	return NewRepositoriesWithDB(s.DB.Pool)
}

// NewRepositoriesWithDB builds every repository on db. Tests use it with a
// mock pool.
func NewRepositoriesWithDB(db DBTX) (*Repositories, error) {
	queries, err := LoadQueries()
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Channel: NewChannelRepository(db, queries),
	}, nil
}
