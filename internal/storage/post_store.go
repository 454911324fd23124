// Package storage implements the SQLite-backed stores behind the resource
// services. Timestamps are persisted in the fixed stamp layout so a stored
// instant reads back exactly as written.
package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avicente/blogstack-be/internal/models"
	"github.com/avicente/blogstack-be/internal/resource"
)

// PostStore persists post records.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = "id, author_id, title, content, excerpt, slug, featured_image_url, created_at, updated_at, is_active"

// scanPost is a helper to scan a post from a row or rows object.
func scanPost(scanner interface{ Scan(...interface{}) error }) (models.Post, error) {
	var post models.Post
	var excerpt, featuredImageURL sql.NullString
	var createdAt, updatedAt string

	err := scanner.Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Content,
		&excerpt, &post.Slug, &featuredImageURL,
		&createdAt, &updatedAt, &post.IsActive,
	)
	if err != nil {
		return post, err
	}

	if excerpt.Valid {
		post.Excerpt = &excerpt.String
	}
	if featuredImageURL.Valid {
		post.FeaturedImageURL = &featuredImageURL.String
	}

	if post.CreatedAt, err = resource.ParseStamp(createdAt); err != nil {
		return post, err
	}
	if post.UpdatedAt, err = resource.ParseStamp(updatedAt); err != nil {
		return post, err
	}
	return post, nil
}

// List retrieves all posts in storage order.
func (s *PostStore) List(ctx context.Context) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+postColumns+" FROM posts")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetByID retrieves a single post. Absence is reported through the bool.
func (s *PostStore) GetByID(ctx context.Context, id int64) (models.Post, bool, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+postColumns+" FROM posts WHERE id = ?", id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, false, nil
		}
		return models.Post{}, false, err
	}
	return post, true, nil
}

// Insert writes a new post and assigns its storage identity.
func (s *PostStore) Insert(ctx context.Context, post *models.Post) error {
	const query = `
		INSERT INTO posts (author_id, title, content, excerpt, slug, featured_image_url, created_at, updated_at, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, query,
		post.AuthorID, post.Title, post.Content, post.Excerpt, post.Slug, post.FeaturedImageURL,
		resource.Stamp(post.CreatedAt), resource.Stamp(post.UpdatedAt), post.IsActive,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	post.ID = id
	return nil
}

// Update persists the mutable fields of an existing post. Identity, author
// linkage, createdAt and the activation flag are never written.
func (s *PostStore) Update(ctx context.Context, post models.Post) error {
	const query = `
		UPDATE posts
		SET title = ?, content = ?, excerpt = ?, slug = ?, featured_image_url = ?, updated_at = ?
		WHERE id = ?`
	_, err := s.db.ExecContext(ctx, query,
		post.Title, post.Content, post.Excerpt, post.Slug, post.FeaturedImageURL,
		resource.Stamp(post.UpdatedAt), post.ID,
	)
	return err
}

// Delete removes a post.
func (s *PostStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	return err
}
