package handlers

import (
	"errors"
	"net/http"

	"github.com/crankerz/crankerz/internal/metrics"
	"github.com/crankerz/crankerz/internal/session"
	"github.com/gin-gonic/gin"
)

// SessionHandler serves check-in recording.
type SessionHandler struct {
	recorder *session.Recorder
}

// NewSessionHandler constructs a SessionHandler.
func NewSessionHandler(recorder *session.Recorder) *SessionHandler {
	return &SessionHandler{recorder: recorder}
}

type sessionRequest struct {
	Notes string `json:"notes"`
}

// Create records a check-in for the authenticated user.
func (h *SessionHandler) Create(c *gin.Context) {
	var req sessionRequest
	if c.Request.ContentLength > 0 {
		if errBind := c.ShouldBindJSON(&req); errBind != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	result, errRecord := h.recorder.Record(c.Request.Context(), currentUserID(c), req.Notes)
	if errRecord != nil {
		switch {
		case errors.Is(errRecord, session.ErrNoteTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Notes must be less than 500 characters"})
		case errors.Is(errRecord, session.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record session"})
		}
		return
	}

	metrics.ObserveSessionRecorded(len(result.Unlocked))
	c.JSON(http.StatusCreated, gin.H{
		"id":                   result.SessionID,
		"message":              result.Message,
		"experienceGained":     result.ExperienceGained,
		"unlockedAchievements": result.Unlocked,
	})
}
