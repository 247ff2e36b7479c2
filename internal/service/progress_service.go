package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"learnbotx_backend/internal/engine"
	"learnbotx_backend/internal/model"
	"learnbotx_backend/internal/repository"
	"learnbotx_backend/pkg/logger"
	"learnbotx_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedSteps is the curriculum every new account starts with. The engine
// only sees it as data; changing the product curriculum means changing this
// slice (and nothing else).
var SeedSteps = []engine.StepTemplate{
	{StepID: 1, Title: "JavaScript Fundamentals"},
	{StepID: 2, Title: "Functions & Scope"},
	{StepID: 3, Title: "Arrays & Objects"},
	{StepID: 4, Title: "Async JavaScript"},
	{StepID: 5, Title: "DOM Manipulation"},
	{StepID: 6, Title: "React Basics"},
}

const statsCacheTTL = 30 * time.Second

// ProgressService orchestrates the gamification engine: it owns the
// read-modify-write cycle the engine contract requires to be serialized per
// user, wraps each engine call in a transaction, and maintains the stats
// cache and badge awards.
type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	UserRepo     *repository.UserRepository
	db           *gorm.DB
	rdb          *redis.Client

	// Now is the injected clock; tests swap it for a fixed time.
	Now func() time.Time

	locks sync.Map // userID -> *sync.Mutex
}

func NewProgressService(progressRepo *repository.ProgressRepository, userRepo *repository.UserRepository, db *gorm.DB, rdb *redis.Client) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		UserRepo:     userRepo,
		db:           db,
		rdb:          rdb,
		Now:          time.Now,
	}
}

// lockUser serializes engine invocations for one user. Two concurrent step
// updates against the same path would otherwise race on TotalXP under
// read-modify-write.
func (s *ProgressService) lockUser(userID uint) func() {
	v, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// GetOrCreatePath returns the user's path, seeding it on first access.
func (s *ProgressService) GetOrCreatePath(userID uint) (*model.LearningPath, error) {
	unlock := s.lockUser(userID)
	defer unlock()
	return s.getOrCreatePathLocked(userID)
}

func (s *ProgressService) getOrCreatePathLocked(userID uint) (*model.LearningPath, error) {
	path, err := s.ProgressRepo.FindByUserID(userID)
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	path = engine.NewPath(userID, SeedSteps, s.Now())
	if err := s.ProgressRepo.Create(path); err != nil {
		return nil, err
	}
	return path, nil
}

// SeedPath creates the initial path at registration inside the caller's
// transaction.
func (s *ProgressService) SeedPath(tx *gorm.DB, userID uint) error {
	path := engine.NewPath(userID, SeedSteps, s.Now())
	return s.ProgressRepo.WithTx(tx).Create(path)
}

// UpdateStep runs the step-progress engine operation and persists the
// resulting snapshot atomically.
func (s *ProgressService) UpdateStep(userID, stepID uint, progress, lessonID *int) (*model.LearningPath, *engine.XPAward, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	var (
		path  *model.LearningPath
		award *engine.XPAward
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.ProgressRepo.WithTx(tx)

		p, err := repo.FindByUserID(userID)
		if err != nil {
			return err
		}

		a, err := engine.UpdateStep(p, stepID, engine.StepUpdate{Progress: progress, LessonID: lessonID}, s.Now())
		if err != nil {
			return err
		}

		if err := repo.Save(p); err != nil {
			return err
		}

		path, award = p, a
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if award != nil {
		monitoring.XPAwarded.WithLabelValues("step").Add(float64(award.XPGained))
		s.awardBadge(userID, "first-step", "First Step Completed")
		s.invalidateStats(userID)
		logger.Log.Info("step completed",
			zap.Uint("userId", userID),
			zap.Uint("stepId", award.StepID),
			zap.Int("xpGained", award.XPGained))
	}

	return path, award, nil
}

// RecordQuiz appends a quiz attempt and pays its XP.
func (s *ProgressService) RecordQuiz(userID uint, att engine.QuizAttempt) (*model.LearningPath, int, int, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	var (
		path       *model.LearningPath
		xpGained   int
		percentage int
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.ProgressRepo.WithTx(tx)

		p, err := repo.FindByUserID(userID)
		if err != nil {
			return err
		}

		xp, pct, err := engine.RecordQuiz(p, att, s.Now())
		if err != nil {
			return err
		}

		if err := repo.Save(p); err != nil {
			return err
		}

		path, xpGained, percentage = p, xp, pct
		return nil
	})
	if err != nil {
		return nil, 0, 0, err
	}

	if xpGained > 0 {
		monitoring.XPAwarded.WithLabelValues("quiz").Add(float64(xpGained))
	}
	if att.Score == att.TotalQuestions {
		s.awardBadge(userID, "perfect-quiz", "Perfect Quiz")
	}
	s.invalidateStats(userID)

	return path, xpGained, percentage, nil
}

// GetStats serves the dashboard summary, cached in Redis for a short TTL
// and invalidated whenever progress changes.
func (s *ProgressService) GetStats(ctx context.Context, userID uint) (*engine.Stats, error) {
	key := statsCacheKey(userID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var stats engine.Stats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	path, err := s.GetOrCreatePath(userID)
	if err != nil {
		return nil, err
	}
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	badges, err := s.UserRepo.GetBadges(userID)
	if err != nil {
		return nil, err
	}

	stats := engine.ComputeStats(path, user.Streak, badges)

	if s.rdb != nil {
		if data, err := json.Marshal(stats); err == nil {
			s.rdb.Set(ctx, key, data, statsCacheTTL)
		}
	}

	return &stats, nil
}

func (s *ProgressService) Leaderboard(limit int) ([]repository.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.ProgressRepo.TopByXP(limit)
}

// AwardStreakBadge is called by the auth flow once the engine has advanced
// the streak.
func (s *ProgressService) AwardStreakBadge(userID uint, streak model.Streak) {
	if streak.Current >= 7 {
		s.awardBadge(userID, "streak-7", "7-Day Streak")
	}
}

func (s *ProgressService) awardBadge(userID uint, code, name string) {
	err := s.UserRepo.AwardBadge(&model.Badge{
		UserID:   userID,
		Code:     code,
		Name:     name,
		EarnedAt: s.Now(),
	})
	if err != nil {
		logger.Log.Warn("badge award failed", zap.Uint("userId", userID), zap.String("code", code), zap.Error(err))
	}
}

func (s *ProgressService) invalidateStats(userID uint) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(context.Background(), statsCacheKey(userID)).Err(); err != nil {
		logger.Log.Warn("stats cache invalidation failed", zap.Uint("userId", userID), zap.Error(err))
	}
}

func statsCacheKey(userID uint) string {
	return fmt.Sprintf("learnbotx:stats:%d", userID)
}
