package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	userRepo "carpool/database/repository/user"
	"carpool/models"
	"carpool/utils"

	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// RegisterRequest is the signup payload for a parent account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AuthResult carries the signed token and the account it belongs to.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService manages parent accounts and their auth sessions.
type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	RevokeToken(ctx context.Context, userID string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if _, err := s.Repo.Create(ctx, usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(ctx, usr)
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	usr, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(ctx, usr)
}

// issueToken signs a JWT, binds its hash to the account and caches the hash
// for the middleware fast path.
func (s *DefaultUserService) issueToken(ctx context.Context, usr *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(ctx, usr.ID, tokenHash); err != nil {
		return nil, err
	}
	usr.TokenHash = tokenHash

	cache := utils.GetAuthCacheClient()
	if err := cache.Set(ctx, tokenHash, usr.ID, tokenTTL).Err(); err != nil {
		// Cache is an accelerator; the repo lookup still works without it.
		utils.GetLogger().Warn("failed to cache auth token: " + err.Error())
	}

	return &AuthResult{Token: token, User: usr}, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return usr, nil
}

func (s *DefaultUserService) RevokeToken(ctx context.Context, userID string) error {
	usr, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if usr == nil {
		return fmt.Errorf("user %s not found", userID)
	}
	if usr.TokenHash != "" {
		if err := utils.GetAuthCacheClient().Del(ctx, usr.TokenHash).Err(); err != nil {
			utils.GetLogger().Warn("failed to evict auth token: " + err.Error())
		}
	}
	return s.Repo.UpdateTokenHash(ctx, userID, "")
}
