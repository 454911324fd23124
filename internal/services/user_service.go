package services

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/avicente/blogstack-be/internal/models"
	"github.com/avicente/blogstack-be/internal/resource"
)

// UserServiceProvider defines the interface for user record operations.
type UserServiceProvider = resource.Provider[models.CreateUserRequest, models.UpdateUserRequest, models.UserView]

// NewUserService builds the user resource service around a store. Username,
// email and password are required on creation; username and email are
// additionally unique, enforced by the store and translated here into
// client-facing conflicts.
func NewUserService(store resource.Store[models.User]) *resource.Service[models.User, models.CreateUserRequest, models.UpdateUserRequest, models.UserView] {
	return resource.NewService(store, userDefinition)
}

var userDefinition = resource.Definition[models.User, models.CreateUserRequest, models.UpdateUserRequest, models.UserView]{
	Name: "user",
	Required: []resource.Rule[models.CreateUserRequest]{
		{Field: "username", Check: resource.NonBlank(func(req *models.CreateUserRequest) string { return req.Username })},
		{Field: "email", Check: resource.NonBlank(func(req *models.CreateUserRequest) string { return req.Email })},
		{Field: "password", Check: resource.NonBlank(func(req *models.CreateUserRequest) string { return req.Password })},
	},
	New:   newUser,
	Merge: mergeUser,
	View:  userView,
	Unique: []resource.UniqueRule{
		{Token: "users.username", Field: "username", Message: "Username already in use"},
		{Token: "users.email", Field: "email", Message: "Email already in use"},
	},
}

func newUser(req *models.CreateUserRequest, now time.Time) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	return models.User{
		Username:          req.Username,
		Email:             req.Email,
		PasswordHash:      string(hash),
		FullName:          "",
		Bio:               "",
		ProfilePictureURL: "",
		CreatedAt:         now,
		UpdatedAt:         now,
		IsActive:          false,
	}, nil
}

// mergeUser never touches identity, username, email, the password hash or the
// activation flag.
func mergeUser(user *models.User, req *models.UpdateUserRequest, now time.Time) {
	resource.MergeString(&user.FullName, req.FullName)
	resource.MergeString(&user.Bio, req.Bio)
	resource.MergeString(&user.ProfilePictureURL, req.ProfilePictureURL)
	user.UpdatedAt = now
}

func userView(user models.User) models.UserView {
	return models.UserView{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email,
		FullName:          user.FullName,
		Bio:               user.Bio,
		ProfilePictureURL: user.ProfilePictureURL,
		CreatedAt:         resource.Stamp(user.CreatedAt),
		UpdatedAt:         resource.Stamp(user.UpdatedAt),
		IsActive:          user.IsActive,
	}
}
