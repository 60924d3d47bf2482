package services

import (
	"context"
	"errors"

	"chirpynosh_backend/internal/auth"
	"chirpynosh_backend/internal/models"
	"chirpynosh_backend/internal/repositories"
	"chirpynosh_backend/internal/services/dto"
	"chirpynosh_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetMe(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
	codec    *auth.TokenCodec
}

func NewAuthService(userRepo repositories.UserRepository, codec *auth.TokenCodec) AuthService {
	return &authService{userRepo: userRepo, codec: codec}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	role := models.UserRolePublic
	if req.Role != "" {
		role = models.UserRole(req.Role)
	}
	// Admin accounts are never self-registered; they come from the seed.
	if role == models.UserRoleAdmin {
		return nil, apperrors.NewForbiddenError("cannot register an admin account")
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyTaken) {
			return nil, apperrors.NewAlreadyExistsError("email is already registered")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.loginResponse(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.loginResponse(user)
}

func (s *authService) GetMe(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildUserResponse(user), nil
}

func (s *authService) loginResponse(user *models.User) (*dto.LoginResponse, error) {
	token, err := s.codec.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.LoginResponse{
		User:        buildUserResponse(user),
		AccessToken: token,
	}, nil
}

func buildUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
