package services

import (
	"context"

	"roadtrip/internal/models/db_models"
	resp "roadtrip/internal/models/response_models"
	"roadtrip/internal/repositories"
	"roadtrip/pkg/utils"
)

type UserServiceInterface interface {
	// LoginOrCreateUser is idempotent by email: an existing email gets its
	// name and picture refreshed, a new one gets a record with a fresh id.
	LoginOrCreateUser(ctx context.Context, name, email, profilePictureURL string) (*resp.User, error)
	GetUserByID(ctx context.Context, id string) (*resp.User, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) LoginOrCreateUser(ctx context.Context, name, email, profilePictureURL string) (*resp.User, error) {
	if name == "" || email == "" {
		return nil, utils.ErrInvalidInput
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if user == nil {
		user = &db_models.User{
			Name:              name,
			Email:             email,
			ProfilePictureURL: profilePictureURL,
		}
		if err := s.userRepo.Insert(ctx, user); err != nil {
			return nil, utils.ErrDatabaseError
		}
	} else {
		user.Name = name
		user.ProfilePictureURL = profilePictureURL
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return toUserResponse(user), nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*resp.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *db_models.User) *resp.User {
	return &resp.User{
		ID:                user.ID.String(),
		Name:              user.Name,
		Email:             user.Email,
		ProfilePictureURL: user.ProfilePictureURL,
	}
}
