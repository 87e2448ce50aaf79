package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/minhtran/phimhub/internal/domain/users"
	"github.com/minhtran/phimhub/pkg/jwt"
	"github.com/minhtran/phimhub/pkg/response"
	"github.com/segmentio/ksuid"
	"golang.org/x/crypto/bcrypt"
)

const refreshTokenTTL = 7 * 24 * time.Hour

type UserRepository interface {
	CreateUser(ctx context.Context, user users.User) error
	FindUserByEmail(ctx context.Context, email string) (*users.User, error)
	FindUserByExtID(ctx context.Context, extID string) (*users.User, error)
	CreateRefreshToken(ctx context.Context, token users.RefreshToken) error
	FindRefreshToken(ctx context.Context, tokenHash string) (*users.RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, tokenHash string) error
}

type UserUsecase struct {
	repo       UserRepository
	jwtService *jwt.JWTService
}

func NewUserUsecase(repo UserRepository, jwtService *jwt.JWTService) *UserUsecase {
	return &UserUsecase{
		repo:       repo,
		jwtService: jwtService,
	}
}

func (u *UserUsecase) Register(ctx context.Context, payload users.RegisterRequest) (*users.RegisterResponse, error) {
	existing, err := u.repo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		return nil, response.InternalServerError(err)
	}
	if existing != nil {
		return nil, response.NewError(http.StatusConflict, "email_already_exists", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.InternalServerError(err)
	}

	extID := "user_" + ksuid.New().String()
	user := users.User{
		ExtID:     extID,
		FullName:  payload.FullName,
		Email:     payload.Email,
		Password:  string(hashed),
		Role:      "USER",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := u.repo.CreateUser(ctx, user); err != nil {
		return nil, response.InternalServerError(err)
	}

	return &users.RegisterResponse{
		ExtID:    extID,
		FullName: payload.FullName,
		Email:    payload.Email,
	}, nil
}

func (u *UserUsecase) Login(ctx context.Context, payload users.LoginRequest) (*users.LoginResponse, error) {
	user, err := u.repo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		return nil, response.InternalServerError(err)
	}
	if user == nil {
		return nil, response.NewError(http.StatusUnauthorized, "invalid_credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		return nil, response.NewError(http.StatusUnauthorized, "invalid_credentials", nil)
	}

	token, err := u.jwtService.GenerateToken(user.ExtID, user.Role)
	if err != nil {
		return nil, response.InternalServerError(err)
	}

	refreshBytes := make([]byte, 32)
	if _, err := rand.Read(refreshBytes); err != nil {
		return nil, response.InternalServerError(err)
	}
	refreshToken := hex.EncodeToString(refreshBytes)

	record := users.RefreshToken{
		UserExtID: user.ExtID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
		CreatedAt: time.Now(),
	}
	if err := u.repo.CreateRefreshToken(ctx, record); err != nil {
		return nil, response.InternalServerError(err)
	}

	return &users.LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		User: users.Profile{
			ExtID:    user.ExtID,
			FullName: user.FullName,
			Email:    user.Email,
			Role:     user.Role,
		},
	}, nil
}

func (u *UserUsecase) GetProfile(ctx context.Context, userExtID string) (*users.Profile, error) {
	user, err := u.repo.FindUserByExtID(ctx, userExtID)
	if err != nil {
		return nil, response.InternalServerError(err)
	}
	if user == nil {
		return nil, response.NewError(http.StatusNotFound, "user_not_found", nil)
	}

	return &users.Profile{
		ExtID:    user.ExtID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

func (u *UserUsecase) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := hashToken(refreshToken)

	stored, err := u.repo.FindRefreshToken(ctx, tokenHash)
	if err != nil {
		return response.InternalServerError(err)
	}
	if stored == nil {
		return response.NewError(http.StatusUnauthorized, "invalid_refresh_token", nil)
	}

	if err := u.repo.DeleteRefreshToken(ctx, tokenHash); err != nil {
		return response.InternalServerError(err)
	}
	return nil
}

func (u *UserUsecase) Refresh(ctx context.Context, refreshToken string) (*users.RefreshResponse, error) {
	stored, err := u.repo.FindRefreshToken(ctx, hashToken(refreshToken))
	if err != nil {
		return nil, response.InternalServerError(err)
	}
	if stored == nil {
		return nil, response.NewError(http.StatusUnauthorized, "invalid_or_expired_refresh_token", nil)
	}

	user, err := u.repo.FindUserByExtID(ctx, stored.UserExtID)
	if err != nil {
		return nil, response.InternalServerError(err)
	}
	if user == nil {
		return nil, response.NewError(http.StatusNotFound, "user_not_found", nil)
	}

	accessToken, err := u.jwtService.GenerateToken(user.ExtID, user.Role)
	if err != nil {
		return nil, response.InternalServerError(err)
	}

	return &users.RefreshResponse{AccessToken: accessToken}, nil
}

// hashToken stores refresh tokens as SHA-256 digests; the raw token only
// ever lives on the client.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
