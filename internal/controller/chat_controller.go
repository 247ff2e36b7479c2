package controller

import (
	"errors"

	"learnbotx_backend/internal/service"
	"learnbotx_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// swagger:model ChatMessageRequest
type ChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
	ChatID  string `json:"chatId"`
}

// SendMessage godoc
// @Summary Send a chat message
// @Description Appends the message to the conversation and returns the assistant's reply
// @Tags chat
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ChatMessageRequest true "message"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/chat/message [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Message is required")
		return
	}

	chat, reply, err := c.ChatService.SendMessage(ctx.Request.Context(), claims.UserID, req.ChatID, req.Message)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"chatId":  chat.ID,
		"message": reply,
	})
}

// History godoc
// @Summary Get recent conversations
// @Tags chat
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Chat}
// @Router /api/chat/history [get]
func (c *ChatController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	chats, err := c.ChatService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, chats)
}

// Get godoc
// @Summary Get one conversation
// @Tags chat
// @Produce json
// @Security ApiKeyAuth
// @Param chatId path string true "chat id"
// @Success 200 {object} util.Response{data=model.Chat}
// @Failure 404 {object} util.Response
// @Router /api/chat/{chatId} [get]
func (c *ChatController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	chat, err := c.ChatService.Get(claims.UserID, ctx.Param("chatId"))
	if err != nil {
		if errors.Is(err, util.ErrChatNotFound) {
			util.Error(ctx, 404, "Chat not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, chat)
}

// Delete godoc
// @Summary Delete a conversation
// @Tags chat
// @Produce json
// @Security ApiKeyAuth
// @Param chatId path string true "chat id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/chat/{chatId} [delete]
func (c *ChatController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ChatService.Delete(claims.UserID, ctx.Param("chatId")); err != nil {
		if errors.Is(err, util.ErrChatNotFound) {
			util.Error(ctx, 404, "Chat not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Chat deleted successfully"})
}
