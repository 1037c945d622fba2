package store

import "github.com/MKhiriev/volcano-api/internal/logger"

// Storages groups the repositories the services depend on.
type Storages struct {
	UserRepository    UserRepository
	VolcanoRepository VolcanoRepository
}

// NewStorages builds every repository on top of one database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		VolcanoRepository: NewVolcanoRepository(db, log),
	}
}
