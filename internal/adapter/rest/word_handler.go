package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eslsoft/lexivy/internal/entity"
	"github.com/eslsoft/lexivy/internal/repository"
)

// WordHandler serves the vocabulary browse surface.
type WordHandler struct {
	words repository.WordRepository
}

func NewWordHandler(words repository.WordRepository) *WordHandler {
	return &WordHandler{words: words}
}

func (h *WordHandler) Register(r *gin.RouterGroup) {
	r.GET("/topics", h.listTopics)
	r.GET("/leagues", h.listLeagues)
	r.GET("/words", h.listWords)
	r.GET("/words/:id", h.getWord)
}

func (h *WordHandler) listTopics(c *gin.Context) {
	topics, err := h.words.Topics(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

func (h *WordHandler) listLeagues(c *gin.Context) {
	c.JSON(http.StatusOK, entity.Leagues)
}

func (h *WordHandler) listWords(c *gin.Context) {
	ctx := c.Request.Context()

	if topic := c.Query("topic"); topic != "" {
		words, err := h.words.ByTopic(ctx, topic)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, words)
		return
	}

	if raw := c.Query("level"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "level must be an integer"})
			return
		}
		words, err := h.words.ByLevel(ctx, level)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, words)
		return
	}

	words, err := h.words.All(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, words)
}

func (h *WordHandler) getWord(c *gin.Context) {
	word, err := h.words.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if word == nil {
		abortWithError(c, entity.ErrWordNotFound)
		return
	}
	c.JSON(http.StatusOK, word)
}
