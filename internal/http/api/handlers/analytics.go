package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/crankerz/crankerz/internal/models"
	"github.com/crankerz/crankerz/internal/progression"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AnalyticsHandler serves the session-history analytics report.
type AnalyticsHandler struct {
	db *gorm.DB
}

// NewAnalyticsHandler constructs an AnalyticsHandler.
func NewAnalyticsHandler(db *gorm.DB) *AnalyticsHandler {
	return &AnalyticsHandler{db: db}
}

// Report summarizes the authenticated user's full session history.
func (h *AnalyticsHandler) Report(c *gin.Context) {
	userID := currentUserID(c)

	var user models.User
	if errFind := h.db.WithContext(c.Request.Context()).First(&user, userID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get analytics"})
		return
	}

	var sessions []models.Session
	if errFind := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		Order("timestamp ASC").
		Find(&sessions).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get analytics"})
		return
	}

	c.JSON(http.StatusOK, progression.Analyze(user, sessions, time.Now().UTC()))
}
