package service

import (
	"errors"
	"time"

	"learnbotx_backend/internal/config"
	"learnbotx_backend/internal/engine"
	"learnbotx_backend/internal/model"
	"learnbotx_backend/internal/repository"
	"learnbotx_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo        *repository.UserRepository
	ProgressService *ProgressService
	Cfg             *config.Config
	db              *gorm.DB

	// Now is the injected clock used for streak evaluation.
	Now func() time.Time
}

func NewAuthService(userRepo *repository.UserRepository, progressService *ProgressService, cfg *config.Config, db *gorm.DB) *AuthService {
	return &AuthService{
		UserRepo:        userRepo,
		ProgressService: progressService,
		Cfg:             cfg,
		db:              db,
		Now:             time.Now,
	}
}

// Register creates the account and its seeded learning path in one
// transaction, so a user never exists without a path.
func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	user.Streak.LastActive = s.Now()

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.UserRepo.WithTx(tx).Create(user); err != nil {
			return err
		}
		return s.ProgressService.SeedPath(tx, user.ID)
	})
}

// Login verifies credentials and, as the qualifying activity event, runs the
// streak evaluator. The returned user carries the post-evaluation streak.
func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	now := s.Now()
	user.Streak = engine.EvaluateStreak(user.Streak, now)
	user.LastLogin = now
	if err := s.UserRepo.UpdateStreak(user.ID, user.Streak, now); err != nil {
		return "", nil, err
	}
	s.ProgressService.AwardStreakBadge(user.ID, user.Streak)

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}
