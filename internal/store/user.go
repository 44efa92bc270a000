package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/stemify/apiserver/types"
)

// UserRepository handles persistence for student accounts.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (types.User, error) {
	const query = `
		SELECT id, student_id, name, number, parent_name, parent_number, email, password_hash, school, created_at
		FROM users
		WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByEmail looks up an account by its stored (lowercased) email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (types.User, error) {
	const query = `
		SELECT id, student_id, name, number, parent_name, parent_number, email, password_hash, school, created_at
		FROM users
		WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// Create inserts a new account in a single statement. Duplicate email or
// student id surfaces as ErrDuplicateEmail / ErrDuplicateStudentID via the
// table's uniqueness constraints, so concurrent signups cannot race past an
// existence check.
func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	user.CreatedAt = time.Now()

	const query = `
		INSERT INTO users (student_id, name, number, parent_name, parent_number, email, password_hash, school, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		user.StudentID,
		user.Name,
		user.Number,
		user.ParentName,
		user.ParentNumber,
		user.Email,
		user.PasswordHash,
		user.School,
		user.CreatedAt,
	).Scan(&user.ID); err != nil {
		return types.User{}, mapInsertError(err)
	}
	return user, nil
}

// ListNewestFirst returns every account ordered by creation time,
// most recent first.
func (r *UserRepository) ListNewestFirst(ctx context.Context) ([]types.User, error) {
	const query = `
		SELECT id, student_id, name, number, parent_name, parent_number, email, password_hash, school, created_at
		FROM users
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []types.User
	for rows.Next() {
		var user types.User
		if err := rows.Scan(
			&user.ID,
			&user.StudentID,
			&user.Name,
			&user.Number,
			&user.ParentName,
			&user.ParentNumber,
			&user.Email,
			&user.PasswordHash,
			&user.School,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) scanOne(row *sql.Row) (types.User, error) {
	var user types.User
	err := row.Scan(
		&user.ID,
		&user.StudentID,
		&user.Name,
		&user.Number,
		&user.ParentName,
		&user.ParentNumber,
		&user.Email,
		&user.PasswordHash,
		&user.School,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}
