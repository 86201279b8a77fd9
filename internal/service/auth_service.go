package service

import (
	"context"
	"errors"
	"time"

	"fundi_backend/internal/config"
	"fundi_backend/internal/model"
	"fundi_backend/internal/repository"
	"fundi_backend/internal/util"
	"fundi_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	maxLoginAttempts   = 5
	loginAttemptWindow = 15 * time.Minute
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Redis:    rdb,
		Cfg:      cfg,
	}
}

type RegisterRequest struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=8"`
	Role     model.UserRole `json:"role"`
	SchoolID *string        `json:"schoolId"`
}

func (s *AuthService) Register(req RegisterRequest) (*model.User, error) {
	if _, err := s.UserRepo.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := req.Role
	if !role.Valid() {
		role = model.Parent
	}
	// Admin accounts are provisioned out of band, never self-registered.
	if role == model.Admin {
		role = model.Parent
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
		SchoolID: req.SchoolID,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	ctx := context.Background()
	attemptKey := "login_attempts:" + email

	if attempts, err := s.Redis.Get(ctx, attemptKey).Int(); err == nil && attempts >= maxLoginAttempts {
		return "", nil, util.ErrLoginThrottled
	}

	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		s.recordFailedAttempt(ctx, attemptKey)
		return "", nil, util.ErrInvalidCredentials
	}
	if user.Disabled {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.recordFailedAttempt(ctx, attemptKey)
		return "", nil, util.ErrInvalidCredentials
	}

	s.Redis.Del(ctx, attemptKey)

	user.LastLogin = time.Now()
	if err := s.UserRepo.Update(user); err != nil {
		return "", nil, err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) recordFailedAttempt(ctx context.Context, key string) {
	pipe := s.Redis.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, loginAttemptWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		// Throttling is best effort; a redis hiccup must not block login.
		logger.Log.Warn("login throttle bookkeeping failed", zap.Error(err))
	}
}
