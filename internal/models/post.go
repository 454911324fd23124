package models

import "time"

// Post represents a blog post record.
type Post struct {
	ID               int64
	AuthorID         int64
	Title            string
	Content          string
	Excerpt          *string
	Slug             string
	FeaturedImageURL *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	IsActive         bool
}

// CreatePostRequest carries the fields a client supplies when creating a post.
// AuthorID is a pointer so an absent value can be told apart from zero.
type CreatePostRequest struct {
	AuthorID         *int64  `json:"authorId"`
	Title            string  `json:"title"`
	Content          string  `json:"content"`
	Excerpt          *string `json:"excerpt"`
	Slug             string  `json:"slug"`
	FeaturedImageURL *string `json:"featuredImageUrl"`
}

// UpdatePostRequest carries the subset of post fields eligible for partial
// update. Empty or absent fields leave the stored value unchanged.
type UpdatePostRequest struct {
	Title            *string `json:"title"`
	Content          *string `json:"content"`
	Excerpt          *string `json:"excerpt"`
	Slug             *string `json:"slug"`
	FeaturedImageURL *string `json:"featuredImageUrl"`
}

// PostView is the outbound projection of a Post with timestamps rendered as
// fixed-format UTC strings.
type PostView struct {
	ID               int64   `json:"id"`
	AuthorID         int64   `json:"authorId"`
	Title            string  `json:"title"`
	Content          string  `json:"content"`
	Excerpt          *string `json:"excerpt"`
	Slug             string  `json:"slug"`
	FeaturedImageURL *string `json:"featuredImageUrl"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}
