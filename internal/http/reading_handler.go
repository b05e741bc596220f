package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"astro-reading/internal/domain"
	"astro-reading/internal/service"
)

// ReadingHandler mantiene dependencias para los endpoints de lecturas.
type ReadingHandler struct {
	logger   *zap.Logger
	readings *service.ReadingService
}

// NewReadingHandler crea una instancia de ReadingHandler con dependencias necesarias.
func NewReadingHandler(logger *zap.Logger, readings *service.ReadingService) *ReadingHandler {
	return &ReadingHandler{
		logger:   logger,
		readings: readings,
	}
}

// CreateReading maneja POST /readings.
func (h *ReadingHandler) CreateReading(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Date  string `json:"date"`
		Time  string `json:"time"`
		Place string `json:"place"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create reading request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	reading, err := h.readings.CreateReading(c.Request.Context(), domain.BirthDetails{
		Name:  req.Name,
		Date:  req.Date,
		Time:  req.Time,
		Place: req.Place,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField),
			errors.Is(err, service.ErrInvalidInput),
			errors.Is(err, service.ErrDateOutOfRange),
			errors.Is(err, service.ErrInvalidTime):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		default:
			h.logger.Error("create reading failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create reading"})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"reading": reading})
}

// GetReading maneja GET /readings/:id.
func (h *ReadingHandler) GetReading(c *gin.Context) {
	reading, err := h.readings.GetReading(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeSessionError(c, "get reading failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reading": reading})
}

// AskQuestion maneja POST /readings/:id/questions.
func (h *ReadingHandler) AskQuestion(c *gin.Context) {
	var req struct {
		Question string `json:"question"`
	}
	// Cuerpo vacio equivale a pregunta vacia: cae en el bucket general.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("invalid question request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	answer, err := h.readings.AskQuestion(c.Request.Context(), c.Param("id"), req.Question)
	if err != nil {
		if errors.Is(err, service.ErrRateLimited) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		h.writeSessionError(c, "ask question failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// EndReading maneja DELETE /readings/:id.
func (h *ReadingHandler) EndReading(c *gin.Context) {
	if err := h.readings.EndReading(c.Request.Context(), c.Param("id")); err != nil {
		h.writeSessionError(c, "end reading failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReadingHandler) writeSessionError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrEmptySessionID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "reading not found"})
	default:
		h.logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
