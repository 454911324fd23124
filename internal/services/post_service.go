// Package services wires each resource kind into the generic resource
// service: required-field rules, record construction, merge policy, view
// mapping and unique-constraint translation.
package services

import (
	"time"

	"github.com/avicente/blogstack-be/internal/models"
	"github.com/avicente/blogstack-be/internal/resource"
)

// PostServiceProvider defines the interface for post record operations.
type PostServiceProvider = resource.Provider[models.CreatePostRequest, models.UpdatePostRequest, models.PostView]

// NewPostService builds the post resource service around a store. A post
// requires an author, a title, content and a slug; nothing on a post is
// unique-constrained.
func NewPostService(store resource.Store[models.Post]) *resource.Service[models.Post, models.CreatePostRequest, models.UpdatePostRequest, models.PostView] {
	return resource.NewService(store, postDefinition)
}

var postDefinition = resource.Definition[models.Post, models.CreatePostRequest, models.UpdatePostRequest, models.PostView]{
	Name: "post",
	Required: []resource.Rule[models.CreatePostRequest]{
		{Field: "authorId", Check: func(req *models.CreatePostRequest) bool { return req.AuthorID != nil }},
		{Field: "title", Check: resource.NonBlank(func(req *models.CreatePostRequest) string { return req.Title })},
		{Field: "content", Check: resource.NonBlank(func(req *models.CreatePostRequest) string { return req.Content })},
		{Field: "slug", Check: resource.NonBlank(func(req *models.CreatePostRequest) string { return req.Slug })},
	},
	New:   newPost,
	Merge: mergePost,
	View:  postView,
}

func newPost(req *models.CreatePostRequest, now time.Time) (models.Post, error) {
	return models.Post{
		AuthorID:         *req.AuthorID,
		Title:            req.Title,
		Content:          req.Content,
		Excerpt:          req.Excerpt,
		Slug:             req.Slug,
		FeaturedImageURL: req.FeaturedImageURL,
		CreatedAt:        now,
		UpdatedAt:        now,
		IsActive:         false,
	}, nil
}

// mergePost never touches identity, author linkage or the activation flag.
func mergePost(post *models.Post, req *models.UpdatePostRequest, now time.Time) {
	resource.MergeString(&post.Title, req.Title)
	resource.MergeString(&post.Content, req.Content)
	resource.MergeStringPtr(&post.Excerpt, req.Excerpt)
	resource.MergeString(&post.Slug, req.Slug)
	resource.MergeStringPtr(&post.FeaturedImageURL, req.FeaturedImageURL)
	post.UpdatedAt = now
}

func postView(post models.Post) models.PostView {
	return models.PostView{
		ID:               post.ID,
		AuthorID:         post.AuthorID,
		Title:            post.Title,
		Content:          post.Content,
		Excerpt:          post.Excerpt,
		Slug:             post.Slug,
		FeaturedImageURL: post.FeaturedImageURL,
		CreatedAt:        resource.Stamp(post.CreatedAt),
		UpdatedAt:        resource.Stamp(post.UpdatedAt),
	}
}
