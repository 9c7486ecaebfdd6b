package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inkwell/internal/common"
	"inkwell/internal/common/security"
	"inkwell/internal/domain/model"
	"inkwell/internal/domain/repository"

	"github.com/google/uuid"
)

// AuthService handles registration, login, logout and profile updates.
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	tokens      *security.TokenIssuer
	sessionTTL  time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	tokens *security.TokenIssuer,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		sessionTTL:  sessionTTL,
	}
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	User  LoginUser `json:"user"`
	Token string    `json:"token"`
}

// UpdateProfileRequest is the allow-listed profile patch. Email, username,
// role, status and the password hash are not patchable.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Birthdate *string `json:"birthdate,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	Biography *string `json:"biography,omitempty"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return nil, common.NewError(common.ErrBadRequest, "All fields are required.")
	}

	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, common.NewError(common.ErrConflict, "User already exists.")
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Username is the lowercased first name plus a random 5-character
	// suffix. Collisions are not checked.
	username := strings.ToLower(req.FirstName) + security.RandomSuffix(5)

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         model.RoleUser,
		Status:       model.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.NewError(common.ErrConflict, "User already exists.")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.NewError(common.ErrBadRequest, "E-mail and password are required.")
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrValidation, "Invalid e-mail address.")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user.Status == model.UserStatusBanned {
		return nil, common.NewError(common.ErrValidation, "User already banned.")
	}
	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, common.NewError(common.ErrValidation, "Invalid password.")
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now().UTC()
	session := &model.Session{
		UserID:    user.ID,
		Token:     token,
		CreatedAt: now,
		ExpiredAt: now.Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &LoginResponse{
		User:  LoginUser{ID: user.ID, Username: user.Username},
		Token: token,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	err := s.sessionRepo.Delete(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewError(common.ErrNotFound, "Session already ended.")
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Stale session: the user record was deleted after issuance.
			return nil, common.NewError(common.ErrNotFound, "User not found.")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Birthdate != nil {
		user.Birthdate = req.Birthdate
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.Biography != nil {
		user.Biography = req.Biography
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrNotFound, "User not found.")
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
