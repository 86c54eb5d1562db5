package store

import "github.com/MKhiriev/go-travel-board/internal/logger"

// Repositories bundles the repositories over one connection pool. Each
// service only uses the one that matches its own table.
type Repositories struct {
	Users  UserRepository
	Routes RouteRepository
	Posts  PostRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Users:  NewUserRepository(db, logger),
		Routes: NewRouteRepository(db, logger),
		Posts:  NewPostRepository(db, logger),
	}
}
