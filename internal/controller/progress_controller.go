package controller

import (
	"errors"
	"strconv"

	"learnbotx_backend/internal/engine"
	"learnbotx_backend/internal/service"
	"learnbotx_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// GetProgress godoc
// @Summary Get the current user's learning path
// @Description Returns the path, seeding it on first access
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.LearningPath}
// @Failure 401 {object} util.Response
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	path, err := c.ProgressService.GetOrCreatePath(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, path)
}

// swagger:model UpdateStepRequest
type UpdateStepRequest struct {
	Progress *int `json:"progress" binding:"omitempty"`
	LessonID *int `json:"lessonId" binding:"omitempty"`
}

// UpdateStep godoc
// @Summary Update progress for a learning step
// @Description Applies a progress/lesson event; completing a step awards XP and unlocks the next one
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param stepId path int true "step id"
// @Param body body UpdateStepRequest true "step update"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/progress/step/{stepId} [put]
func (c *ProgressController) UpdateStep(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stepID, err := strconv.ParseUint(ctx.Param("stepId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid step id")
		return
	}

	var req UpdateStepRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, award, err := c.ProgressService.UpdateStep(claims.UserID, uint(stepID), req.Progress, req.LessonID)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrStepNotFound):
			util.Error(ctx, 404, "Step not found")
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.Error(ctx, 404, "Progress not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"progress": path,
		"award":    award,
	})
}

// swagger:model RecordQuizRequest
type RecordQuizRequest struct {
	QuizID         string `json:"quizId" binding:"required"`
	Topic          string `json:"topic"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
}

// RecordQuiz godoc
// @Summary Record a quiz result
// @Description Appends the quiz to the history and awards 10 XP per correct answer
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body RecordQuizRequest true "quiz result"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/progress/quiz [post]
func (c *ProgressController) RecordQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req RecordQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, xpGained, percentage, err := c.ProgressService.RecordQuiz(claims.UserID, engine.QuizAttempt{
		QuizID:         req.QuizID,
		Topic:          req.Topic,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
	})
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidQuiz):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.Error(ctx, 404, "Progress not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"progress":   path,
		"xpGained":   xpGained,
		"percentage": percentage,
	})
}

// GetStats godoc
// @Summary Get user statistics
// @Description Derived dashboard stats, cached briefly
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=engine.Stats}
// @Router /api/progress/stats [get]
func (c *ProgressController) GetStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.ProgressService.GetStats(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// Leaderboard godoc
// @Summary Top users by XP
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "number of entries, default 10"
// @Success 200 {object} util.Response{data=[]repository.LeaderboardEntry}
// @Router /api/leaderboard [get]
func (c *ProgressController) Leaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	entries, err := c.ProgressService.Leaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}
