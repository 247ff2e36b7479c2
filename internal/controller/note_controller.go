package controller

import (
	"errors"

	"learnbotx_backend/internal/service"
	"learnbotx_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	NoteService *service.NoteService
}

func NewNoteController(noteService *service.NoteService) *NoteController {
	return &NoteController{NoteService: noteService}
}

// swagger:model NoteRequest
type NoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Category *string   `json:"category"`
	Tags     *[]string `json:"tags"`
	IsPinned *bool     `json:"isPinned"`
	Color    *string   `json:"color"`
}

func (r NoteRequest) toInput() service.NoteInput {
	return service.NoteInput{
		Title:    r.Title,
		Content:  r.Content,
		Category: r.Category,
		Tags:     r.Tags,
		IsPinned: r.IsPinned,
		Color:    r.Color,
	}
}

// List godoc
// @Summary List the current user's notes
// @Description Pinned notes first, then most recently updated
// @Tags notes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Note}
// @Router /api/notes [get]
func (c *NoteController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	notes, err := c.NoteService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, notes)
}

// Create godoc
// @Summary Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body NoteRequest true "note fields"
// @Success 201 {object} util.Response{data=model.Note}
// @Failure 400 {object} util.Response
// @Router /api/notes [post]
func (c *NoteController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req NoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.NoteService.Create(claims.UserID, req.toInput())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, note)
}

// Update godoc
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "note id"
// @Param body body NoteRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.Note}
// @Failure 404 {object} util.Response
// @Router /api/notes/{id} [put]
func (c *NoteController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req NoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.NoteService.Update(claims.UserID, ctx.Param("id"), req.toInput())
	if err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.Error(ctx, 404, "Note not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, note)
}

// Delete godoc
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "note id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/notes/{id} [delete]
func (c *NoteController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.NoteService.Delete(claims.UserID, ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.Error(ctx, 404, "Note not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Note deleted successfully"})
}
