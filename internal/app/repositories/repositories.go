package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx, so every
// repository can run either directly on the pool or inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository            UserRepository
	TokenRepository           TokenRepository
	ProgramRepository         ProgramRepository
	DocumentRepository        DocumentRepository
	ProgramDocumentRepository ProgramDocumentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:            NewUserRepository(db),
		TokenRepository:           NewTokenRepository(db),
		ProgramRepository:         NewProgramRepository(db),
		DocumentRepository:        NewDocumentRepository(db),
		ProgramDocumentRepository: NewProgramDocumentRepository(db),
	}
}
