package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avicente/blogstack-be/internal/models"
	"github.com/avicente/blogstack-be/internal/resource"
)

// UserStore persists user records. The username and email columns carry
// unique indexes; a violating insert fails with an error naming the column,
// which the service layer translates into a conflict.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = "id, username, email, password_hash, full_name, bio, profile_picture_url, created_at, updated_at, is_active"

func scanUser(scanner interface{ Scan(...interface{}) error }) (models.User, error) {
	var user models.User
	var fullName, bio, profilePictureURL sql.NullString
	var createdAt, updatedAt string

	err := scanner.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&fullName, &bio, &profilePictureURL,
		&createdAt, &updatedAt, &user.IsActive,
	)
	if err != nil {
		return user, err
	}

	user.FullName = fullName.String
	user.Bio = bio.String
	user.ProfilePictureURL = profilePictureURL.String

	if user.CreatedAt, err = resource.ParseStamp(createdAt); err != nil {
		return user, err
	}
	if user.UpdatedAt, err = resource.ParseStamp(updatedAt); err != nil {
		return user, err
	}
	return user, nil
}

// List retrieves all users in storage order.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetByID retrieves a single user. Absence is reported through the bool.
func (s *UserStore) GetByID(ctx context.Context, id int64) (models.User, bool, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, false, nil
		}
		return models.User{}, false, err
	}
	return user, true, nil
}

// Insert writes a new user and assigns its storage identity. Uniqueness of
// username and email is enforced here by the engine, atomically with the
// write.
func (s *UserStore) Insert(ctx context.Context, user *models.User) error {
	const query = `
		INSERT INTO users (username, email, password_hash, full_name, bio, profile_picture_url, created_at, updated_at, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, query,
		user.Username, user.Email, user.PasswordHash,
		user.FullName, user.Bio, user.ProfilePictureURL,
		resource.Stamp(user.CreatedAt), resource.Stamp(user.UpdatedAt), user.IsActive,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// Update persists the mutable fields of an existing user. Identity,
// credentials, createdAt and the activation flag are never written.
func (s *UserStore) Update(ctx context.Context, user models.User) error {
	const query = `
		UPDATE users
		SET full_name = ?, bio = ?, profile_picture_url = ?, updated_at = ?
		WHERE id = ?`
	_, err := s.db.ExecContext(ctx, query,
		user.FullName, user.Bio, user.ProfilePictureURL,
		resource.Stamp(user.UpdatedAt), user.ID,
	)
	return err
}

// Delete removes a user.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	return err
}
