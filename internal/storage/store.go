// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/memberportal/internal/models"
)

var (
	ErrNotFound     = errors.New("member not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrMemberExists = errors.New("member id already in use")
)

// Store defines the interface for the member directory.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateMember persists a new member.
	// Returns ErrEmailTaken or ErrMemberExists on a uniqueness conflict.
	CreateMember(ctx context.Context, member *models.Member) error

	// GetMember retrieves a member by id. Returns ErrNotFound if there is none.
	GetMember(ctx context.Context, memberID string) (*models.Member, error)

	// GetMemberByEmail retrieves a member by email. Returns ErrNotFound if there is none.
	GetMemberByEmail(ctx context.Context, email string) (*models.Member, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
