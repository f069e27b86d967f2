package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eslsoft/lexivy/internal/usecase"
)

// ProgressHandler exposes the progress dashboard surface.
type ProgressHandler struct {
	progress        usecase.ProgressUsecase
	defaultIdentity string
}

func NewProgressHandler(progress usecase.ProgressUsecase, defaultIdentity string) *ProgressHandler {
	return &ProgressHandler{progress: progress, defaultIdentity: defaultIdentity}
}

func (h *ProgressHandler) Register(r *gin.RouterGroup) {
	r.GET("/progress", h.summary)
	r.GET("/progress/performance", h.performance)
	r.POST("/progress/reset", h.reset)
}

func (h *ProgressHandler) summary(c *gin.Context) {
	summary, err := h.progress.Summary(c.Request.Context(), identity(c, h.defaultIdentity))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ProgressHandler) performance(c *gin.Context) {
	raw := c.Query("ids")
	if raw == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "ids query parameter is required"})
		return
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	rows, err := h.progress.Performance(c.Request.Context(), identity(c, h.defaultIdentity), ids)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ProgressHandler) reset(c *gin.Context) {
	if err := h.progress.Reset(c.Request.Context(), identity(c, h.defaultIdentity)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
