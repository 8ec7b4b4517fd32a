package handlers

import (
	"net/http"
	"time"

	"github.com/crankerz/crankerz/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AchievementHandler serves the achievement catalog split by unlock state.
type AchievementHandler struct {
	db *gorm.DB
}

// NewAchievementHandler constructs an AchievementHandler.
func NewAchievementHandler(db *gorm.DB) *AchievementHandler {
	return &AchievementHandler{db: db}
}

// unlockedAchievement is a catalog entry with its unlock timestamp.
type unlockedAchievement struct {
	models.Achievement
	UnlockedAt time.Time `json:"unlocked_at"`
}

// List returns the user's unlocked achievements and the remaining catalog.
func (h *AchievementHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	var rows []models.UserAchievement
	if errFind := h.db.WithContext(c.Request.Context()).
		Preload("Achievement").
		Where("user_id = ?", userID).
		Order("unlocked_at ASC").
		Find(&rows).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get achievements"})
		return
	}

	var catalog []models.Achievement
	if errFind := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&catalog).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get achievements"})
		return
	}

	unlockedIDs := make(map[uint64]struct{}, len(rows))
	unlocked := make([]unlockedAchievement, 0, len(rows))
	for _, row := range rows {
		unlockedIDs[row.AchievementID] = struct{}{}
		unlocked = append(unlocked, unlockedAchievement{
			Achievement: row.Achievement,
			UnlockedAt:  row.UnlockedAt,
		})
	}

	available := make([]models.Achievement, 0, len(catalog))
	for _, achievement := range catalog {
		if _, ok := unlockedIDs[achievement.ID]; !ok {
			available = append(available, achievement)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"unlocked":       unlocked,
		"available":      available,
		"totalUnlocked":  len(unlocked),
		"totalAvailable": len(catalog),
	})
}
