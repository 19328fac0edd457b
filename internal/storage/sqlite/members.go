package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mmynk/memberportal/internal/models"
	"github.com/mmynk/memberportal/internal/storage"
)

const memberColumns = "member_id, full_name, date_of_birth, email, mobile, created_at"

// CreateMember inserts a new member into the database.
func (s *SQLiteStore) CreateMember(ctx context.Context, member *models.Member) error {
	if member.CreatedAt == 0 {
		member.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO members ("+memberColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		member.MemberID,
		member.FullName,
		member.DateOfBirth,
		member.Email,
		member.Mobile,
		member.CreatedAt,
	)
	if err != nil {
		var se *moderncsqlite.Error
		if errors.As(err, &se) {
			switch se.Code() {
			case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
				return fmt.Errorf("%w: %s", storage.ErrMemberExists, member.MemberID)
			case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
				return fmt.Errorf("%w: %s", storage.ErrEmailTaken, member.Email)
			}
		}
		return fmt.Errorf("failed to create member: %w", err)
	}

	return nil
}

// GetMember retrieves a member by id.
func (s *SQLiteStore) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE member_id = ?",
		memberID,
	)
	return scanMember(row, memberID)
}

// GetMemberByEmail retrieves a member by email address, ignoring case.
func (s *SQLiteStore) GetMemberByEmail(ctx context.Context, email string) (*models.Member, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE email = ?",
		email,
	)
	return scanMember(row, email)
}

func scanMember(row *sql.Row, key string) (*models.Member, error) {
	m := &models.Member{}
	err := row.Scan(
		&m.MemberID,
		&m.FullName,
		&m.DateOfBirth,
		&m.Email,
		&m.Mobile,
		&m.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return m, nil
}
