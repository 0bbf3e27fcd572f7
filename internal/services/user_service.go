package services

import (
	"context"
	"fmt"

	"tripline/internal/models/db_models"
	"tripline/internal/models/request_models"
	"tripline/internal/models/response_models"
	"tripline/internal/repositories"
	"tripline/pkg/utils"
)

type UserServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	GetByID(ctx context.Context, userID uint) (*response_models.UserResponse, error)
	GetList(ctx context.Context) ([]response_models.UserResponse, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	user := &db_models.User{
		FullName:       request.FullName,
		Email:          request.Email,
		Login:          request.Login,
		PasswordHash:   hash,
		PassportNumber: request.PassportNumber,
		PhoneNumber:    request.PhoneNumber,
		Role:           "user",
	}
	created, err := s.userRepo.Add(ctx, user)
	if err != nil {
		return nil, err
	}

	resp := buildUserResponse(created)
	return &resp, nil
}

func (s *UserService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByLogin(ctx, request.Login)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (s *UserService) GetByID(ctx context.Context, userID uint) (*response_models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	resp := buildUserResponse(user)
	return &resp, nil
}

func (s *UserService) GetList(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := s.userRepo.GetList(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	out := make([]response_models.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, buildUserResponse(&users[i]))
	}
	return out, nil
}

func buildUserResponse(user *db_models.User) response_models.UserResponse {
	return response_models.UserResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Login:    user.Login,
		Role:     user.Role,
	}
}
