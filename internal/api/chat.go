package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitgenius/backend/internal/service"
	"github.com/fitgenius/backend/internal/types"
)

type ChatHandler struct {
	chatService service.IChatService
}

func NewChatHandler(chatService service.IChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	chat := router.Group("/chat")
	{
		chat.POST("", limit, h.SendMessage)
		chat.GET("/:userId", h.ListSessions)
	}
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid chat message: "+err.Error())
		return
	}

	reply, err := h.chatService.Send(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		respondError(c, "ChatHandler", err, "Failed to process chat message")
		return
	}

	c.JSON(http.StatusOK, types.ChatResponse{Response: reply})
}

func (h *ChatHandler) ListSessions(c *gin.Context) {
	sessions, err := h.chatService.Sessions(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, "ChatHandler", err, "Failed to fetch chat sessions")
		return
	}

	c.JSON(http.StatusOK, sessions)
}
