package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eslsoft/lexivy/internal/usecase"
)

// QuizHandler exposes the quiz session lifecycle.
type QuizHandler struct {
	quiz            usecase.QuizUsecase
	defaultIdentity string
}

func NewQuizHandler(quiz usecase.QuizUsecase, defaultIdentity string) *QuizHandler {
	return &QuizHandler{quiz: quiz, defaultIdentity: defaultIdentity}
}

func (h *QuizHandler) Register(r *gin.RouterGroup) {
	r.POST("/quiz", h.start)
	r.GET("/quiz/:id", h.get)
	r.POST("/quiz/:id/answer", h.answer)
	r.POST("/quiz/:id/next", h.next)
	r.POST("/quiz/:id/restart", h.restart)
}

type startQuizRequest struct {
	Topic     string   `json:"topic"`
	Level     int      `json:"level"`
	WordIDs   []string `json:"wordIds"`
	Questions int      `json:"questions"`
	Options   int      `json:"options"`
}

func (h *QuizHandler) start(c *gin.Context) {
	var req startQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.quiz.Start(c.Request.Context(), usecase.StartQuizParams{
		Identity:      identity(c, h.defaultIdentity),
		Topic:         req.Topic,
		Level:         req.Level,
		WordIDs:       req.WordIDs,
		QuestionCount: req.Questions,
		OptionCount:   req.Options,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSessionView(session))
}

func (h *QuizHandler) get(c *gin.Context) {
	session, err := h.quiz.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionView(session))
}

type answerRequest struct {
	Option string `json:"option" binding:"required"`
}

func (h *QuizHandler) answer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.quiz.Answer(c.Request.Context(), c.Param("id"), req.Option)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionView(session))
}

func (h *QuizHandler) next(c *gin.Context) {
	session, err := h.quiz.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionView(session))
}

func (h *QuizHandler) restart(c *gin.Context) {
	session, err := h.quiz.Restart(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionView(session))
}
