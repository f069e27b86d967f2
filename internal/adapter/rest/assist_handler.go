package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eslsoft/lexivy/internal/usecase"
)

// AssistHandler exposes the AI helper flows. LLM failures surface as 502 so
// the front end can present them as transient, retryable notifications.
type AssistHandler struct {
	assist          usecase.AssistUsecase
	defaultIdentity string
}

func NewAssistHandler(assist usecase.AssistUsecase, defaultIdentity string) *AssistHandler {
	return &AssistHandler{assist: assist, defaultIdentity: defaultIdentity}
}

func (h *AssistHandler) Register(r *gin.RouterGroup) {
	r.POST("/assist/mnemonic", h.mnemonic)
	r.POST("/assist/review-suggestions", h.reviewSuggestions)
}

type mnemonicRequest struct {
	WordID string `json:"wordId" binding:"required"`
}

func (h *AssistHandler) mnemonic(c *gin.Context) {
	var req mnemonicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mnemonic, err := h.assist.Mnemonic(c.Request.Context(), req.WordID)
	if err != nil {
		h.abortAssist(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mnemonic": mnemonic})
}

type reviewSuggestionsRequest struct {
	Count int `json:"count"`
}

func (h *AssistHandler) reviewSuggestions(c *gin.Context) {
	var req reviewSuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	words, err := h.assist.SuggestReview(c.Request.Context(), identity(c, h.defaultIdentity), req.Count)
	if err != nil {
		h.abortAssist(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"words": words})
}

func (h *AssistHandler) abortAssist(c *gin.Context, err error) {
	if isDomainError(err) {
		abortWithError(c, err)
		return
	}
	c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
