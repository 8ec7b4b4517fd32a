package handlers

import (
	"net/http"

	"github.com/crankerz/crankerz/internal/leaderboard"
	"github.com/gin-gonic/gin"
)

// LeaderboardHandler serves the ranking endpoints.
type LeaderboardHandler struct {
	service *leaderboard.Service
}

// NewLeaderboardHandler constructs a LeaderboardHandler.
func NewLeaderboardHandler(service *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

// Global returns the global top users.
func (h *LeaderboardHandler) Global(c *gin.Context) {
	entries, errBoard := h.service.Global(c.Request.Context())
	if errBoard != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get global leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Country returns the top users of one country.
func (h *LeaderboardHandler) Country(c *gin.Context) {
	country := c.Param("country")
	if !validCountry(country) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid country parameter"})
		return
	}

	entries, errBoard := h.service.Country(c.Request.Context(), country)
	if errBoard != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get country leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Friends returns the top accepted friends of the authenticated user.
func (h *LeaderboardHandler) Friends(c *gin.Context) {
	entries, errBoard := h.service.Friends(c.Request.Context(), currentUserID(c))
	if errBoard != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get friends leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
