package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	"material-advisor/internal/ai"
	"material-advisor/internal/knowledge"
	"material-advisor/internal/logger"
	"material-advisor/models"
	"material-advisor/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Generator produces the assistant reply for an assembled prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SetupChatRoutes wires POST /api/chat. gen may be nil, in which case the
// endpoint returns the assembled prompt without a reply.
func SetupChatRoutes(router *gin.Engine, engine *knowledge.Engine, gen Generator, timeout time.Duration) {
	chat := router.Group("/api")
	chat.POST("/chat", handleChat(engine, gen, timeout))
}

func handleChat(engine *knowledge.Engine, gen Generator, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error_code": "invalid_input",
				"message":    "Invalid request data",
				"details":    gin.H{"error": err.Error()},
			})
			return
		}

		conversationID := req.ConversationID
		if conversationID == "" {
			conversationID = uuid.New().String()
		}

		start := time.Now()
		ctx, cancel := utils.WithCustomTimeout(c.Request.Context(), timeout)
		defer cancel()

		prompt, docs := engine.BuildContext(ctx, req.Message)

		resp := models.ChatResponse{
			ConversationID: conversationID,
			Documents:      docs,
		}

		if gen == nil {
			resp.Prompt = prompt
		} else {
			reply, err := gen.Generate(ctx, prompt)
			if err != nil {
				handleGenerationError(c, conversationID, err)
				return
			}
			resp.Reply = reply
			resp.Generated = true
		}

		resp.LatencyMs = time.Since(start).Milliseconds()
		resp.Timestamp = time.Now()
		c.JSON(http.StatusOK, resp)
	}
}

func handleGenerationError(c *gin.Context, conversationID string, err error) {
	if errors.Is(err, ai.ErrQuotaExceeded) {
		c.Header("Retry-After", "60")
		utils.RespondWithError(c, http.StatusTooManyRequests,
			"quota_exceeded",
			"The assistant is busy right now, please try again in a minute",
			gin.H{"conversation_id": conversationID})
		return
	}

	logger.Error("Reply generation failed", "conversation_id", conversationID, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error_code": "ai_generation_error",
		"message":    "Failed to generate AI response",
		"details":    err.Error(),
	})
}
