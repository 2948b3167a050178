package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/config"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/middleware"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Service interface {
	// Setup creates the first admin, or reports the existing one
	Setup(ctx context.Context, req *SetupRequest) (*SetupResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
}

type service struct {
	repo   Repository
	config *config.Config
	log    *logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, cfg *config.Config, log *logger.Logger) Service {
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		repo:   repo,
		config: cfg,
		log:    log,
		now:    time.Now,
	}
}

func (s *service) Setup(ctx context.Context, req *SetupRequest) (*SetupResponse, error) {
	existing, err := s.repo.First(ctx)
	if err == nil {
		return &SetupResponse{
			Message:  "Admin user already exists",
			Username: existing.Username,
		}, nil
	}
	if !errors.Is(err, ErrAdminNotFound) {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	username := s.config.Defaults.AdminUsername
	password := s.config.Defaults.AdminPassword
	if req != nil {
		if req.Username != "" {
			username = req.Username
		}
		if req.Password != "" {
			password = req.Password
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &Admin{Username: username, Password: string(hashed)}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	s.log.InfoContext(ctx, "admin user created", "username", username)

	return &SetupResponse{
		Message:  "Admin user created successfully",
		Username: admin.Username,
		Created:  true,
	}, nil
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	admin, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(admin)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.log.LogAuthSuccess(ctx, admin.ID.String(), "password")

	return &LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.config.JWT.JWTExpiresIn.Seconds()),
		Username:    admin.Username,
	}, nil
}

func (s *service) generateAccessToken(admin *Admin) (string, error) {
	now := s.now()
	claims := JWTClaims{
		AdminID:  admin.ID.String(),
		Username: admin.Username,
		Role:     middleware.RoleAdmin,
		Type:     "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.JWTExpiresIn)),
			Issuer:    "arena",
			Subject:   admin.ID.String(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWT.Secret))
}
