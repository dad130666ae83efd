package routes

import (
	"errors"
	"net/http"
	"strconv"

	"material-advisor/internal/knowledge"
	"material-advisor/internal/logger"
	"material-advisor/models"
	"material-advisor/utils"

	"github.com/gin-gonic/gin"
)

// SetupKnowledgeRoutes exposes the retrieval engine under /api/knowledge
func SetupKnowledgeRoutes(router *gin.Engine, engine *knowledge.Engine) {
	kb := router.Group("/api/knowledge")

	kb.GET("/status", handleStatus(engine))
	kb.POST("/search", handleSearch(engine))
	kb.POST("/recommend", handleRecommend(engine))
	kb.POST("/context", handleContext(engine))

	kb.GET("/categories", handleCategories(engine))
	kb.GET("/categories/:category", handleCategoryDocuments(engine))
	kb.GET("/brands", handleBrands(engine))
	kb.GET("/documents/:id", handleDocument(engine))
	kb.GET("/documents/:id/cross-sell", handleCrossSell(engine))
}

func handleStatus(engine *knowledge.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, engine.Status())
	}
}

func handleSearch(engine *knowledge.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request body", gin.H{"error": err.Error()})
			return
		}

		results, err := engine.SearchScored(c.Request.Context(), req.Query, req.TopK)
		if err != nil {
			handleRetrievalError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"query":   req.Query,
			"results": results,
			"count":   len(results),
		})
	}
}

func handleRecommend(engine *knowledge.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request body", gin.H{"error": err.Error()})
			return
		}

		docs, err := engine.Recommend(c.Request.Context(), req.Query, req.Limit)
		if err != nil {
			handleRetrievalError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"query":     req.Query,
			"documents": docs,
			"count":     len(docs),
		})
	}
}

// handleContext never fails on retrieval: it degrades to the raw query
func handleContext(engine *knowledge.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ContextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request body", gin.H{"error": err.Error()})
			return
		}

		prompt, docs := engine.BuildContext(c.Request.Context(), req.Query)
		c.JSON(http.StatusOK, models.ContextResponse{Prompt: prompt, Documents: docs})
	}
}

func handleCategories(engine *knowledge.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": engine.Categories(c.Request.Context())})
	}
}

func handleBrands(engine *knowledge.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"brands": engine.Brands(c.Request.Context())})
	}
}

func handleCategoryDocuments(engine *knowledge.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")
		docs := engine.DocumentsByCategory(c.Request.Context(), category)
		c.JSON(http.StatusOK, gin.H{
			"category":  category,
			"documents": docs,
			"count":     len(docs),
		})
	}
}

func handleDocument(engine *knowledge.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := engine.Document(c.Request.Context(), c.Param("id"))
		if err != nil {
			handleRetrievalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"document": doc,
			"card":     knowledge.FormatProduct(doc),
		})
	}
}

func handleCrossSell(engine *knowledge.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				utils.RespondWithBadRequest(c, "limit must be a non-negative integer", nil)
				return
			}
			limit = n
		}

		docs, err := engine.CrossSell(c.Request.Context(), c.Param("id"), limit)
		if err != nil {
			handleRetrievalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"document_id": c.Param("id"),
			"documents":   docs,
			"count":       len(docs),
		})
	}
}

func handleRetrievalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, knowledge.ErrDocumentNotFound):
		utils.RespondWithNotFound(c, "Document not found")
	case errors.Is(err, knowledge.ErrRetrievalUnavailable):
		utils.RespondWithServiceUnavailable(c, "retrieval_unavailable",
			"Knowledge search is temporarily unavailable, please try again shortly")
	default:
		logger.Error("Knowledge request failed", "path", c.FullPath(), "error", err)
		utils.RespondWithInternalError(c, "An internal error occurred", nil)
	}
}
