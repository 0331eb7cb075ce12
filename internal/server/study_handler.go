// Package server exposes the study session over HTTP for the web client.
// One server owns one session controller; the web client drives it with the
// same answer-then-advance protocol the terminal client uses.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tangolearn/tango/internal/calendar"
	"github.com/tangolearn/tango/internal/review"
	"github.com/tangolearn/tango/internal/session"
	"github.com/tangolearn/tango/internal/srs"
	"github.com/tangolearn/tango/internal/statistics"
	"github.com/tangolearn/tango/internal/words"
)

// StudyHandler serves the study session endpoints.
type StudyHandler struct {
	mu         sync.Mutex
	controller *session.Controller
	store      words.Store
	logs       review.Repository
	clock      srs.Clock
	logger     *slog.Logger
}

// NewStudyHandler creates a StudyHandler around a started controller.
func NewStudyHandler(controller *session.Controller, store words.Store, logs review.Repository, clock srs.Clock, logger *slog.Logger) *StudyHandler {
	if clock == nil {
		clock = srs.SystemClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyHandler{
		controller: controller,
		store:      store,
		logs:       logs,
		clock:      clock,
		logger:     logger,
	}
}

// RegisterRoutes mounts the session endpoints under /api.
func (h *StudyHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.GET("/queue", h.GetQueue)
	api.POST("/answer", h.PostAnswer)
	api.POST("/advance", h.PostAdvance)
	api.GET("/calendar", h.GetCalendar)
	api.GET("/stats", h.GetStats)
}

type queueResponse struct {
	Current          *srs.Card      `json:"current"`
	Remaining        int            `json:"remaining"`
	Counts           session.Counts `json:"counts"`
	CalendarRevision int            `json:"calendarRevision"`
}

// GetQueue returns the current card and the live header tallies.
func (h *StudyHandler) GetQueue(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c.JSON(http.StatusOK, queueResponse{
		Current:          h.controller.Current(),
		Remaining:        h.controller.Remaining(),
		Counts:           h.controller.Counts(),
		CalendarRevision: h.controller.CalendarRevision(),
	})
}

type answerRequest struct {
	Answer string `json:"answer" binding:"required,oneof=incorrect correct easy"`
}

// PostAnswer applies an answer to the current card. An ignored answer, either
// because a mark is still in flight or the queue is empty, returns 409.
func (h *StudyHandler) PostAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	feedback, err := h.controller.Answer(c.Request.Context(), srs.Answer(req.Answer))
	if err != nil {
		h.logger.Error("failed to apply answer", "answer", req.Answer, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply answer"})
		return
	}
	if feedback == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no card to answer"})
		return
	}

	h.logger.Info("card answered",
		"key", feedback.Card.Key,
		"answer", req.Answer,
		"requeued", feedback.Requeued,
		"nextReview", feedback.NextReviewLabel)
	c.JSON(http.StatusOK, feedback)
}

// PostAdvance completes the answer transition and returns the refreshed queue
// state.
func (h *StudyHandler) PostAdvance(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.controller.Advance(c.Request.Context()); err != nil {
		h.logger.Error("failed to advance session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to advance session"})
		return
	}

	c.JSON(http.StatusOK, queueResponse{
		Current:          h.controller.Current(),
		Remaining:        h.controller.Remaining(),
		Counts:           h.controller.Counts(),
		CalendarRevision: h.controller.CalendarRevision(),
	})
}

// GetCalendar returns the eight-day review projection.
func (h *StudyHandler) GetCalendar(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	pool, err := h.store.All(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load card pool", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load card pool"})
		return
	}

	days := calendar.Project(h.controller.Queue(), pool, h.controller.Processed(), h.clock.Now())
	c.JSON(http.StatusOK, gin.H{
		"days":     days,
		"revision": h.controller.CalendarRevision(),
	})
}

// GetStats returns the session tallies plus aggregated review history when a
// review log repository is configured. Optional year and month query
// parameters filter the history.
func (h *StudyHandler) GetStats(c *gin.Context) {
	h.mu.Lock()
	payload := gin.H{
		"session": h.controller.Stats(),
		"counts":  h.controller.Counts(),
	}
	h.mu.Unlock()

	if h.logs == nil {
		c.JSON(http.StatusOK, payload)
		return
	}

	logs, err := h.logs.FindAll(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load review logs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load review logs"})
		return
	}

	var filter struct {
		Year  int `form:"year"`
		Month int `form:"month"`
	}
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload["history"] = statistics.Calculate(logs, filter.Year, filter.Month)
	c.JSON(http.StatusOK, payload)
}

// NewRouter builds the gin engine with request logging and recovery.
func NewRouter(handler *StudyHandler, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	handler.RegisterRoutes(router)
	return router
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// Run starts the HTTP server and shuts it down when ctx is cancelled.
func Run(ctx context.Context, router *gin.Engine, addr string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	logger.Info("server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
