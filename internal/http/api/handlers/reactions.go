package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/crankerz/crankerz/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReactionHandler serves social reactions on other users' activity.
type ReactionHandler struct {
	db *gorm.DB
}

// NewReactionHandler constructs a ReactionHandler.
func NewReactionHandler(db *gorm.DB) *ReactionHandler {
	return &ReactionHandler{db: db}
}

var reactionTypes = map[models.ReactionType]struct{}{
	models.ReactionLike:  {},
	models.ReactionFire:  {},
	models.ReactionCheer: {},
	models.ReactionWow:   {},
}

var reactionTargets = map[models.ReactionTargetType]struct{}{
	models.TargetSession:     {},
	models.TargetAchievement: {},
	models.TargetStreak:      {},
}

type addReactionRequest struct {
	TargetUserID uint64 `json:"targetUserId"`
	TargetType   string `json:"targetType"`
	TargetID     uint64 `json:"targetId"`
	ReactionType string `json:"reactionType"`
}

// Add records one reaction against another user's activity.
func (h *ReactionHandler) Add(c *gin.Context) {
	var req addReactionRequest
	if errBind := c.ShouldBindJSON(&req); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, ok := reactionTypes[models.ReactionType(req.ReactionType)]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reaction type"})
		return
	}
	if _, ok := reactionTargets[models.ReactionTargetType(req.TargetType)]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target type"})
		return
	}
	if req.TargetUserID == 0 || req.TargetID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target parameters"})
		return
	}

	reaction := models.Reaction{
		UserID:       currentUserID(c),
		TargetUserID: req.TargetUserID,
		TargetType:   models.ReactionTargetType(req.TargetType),
		TargetID:     req.TargetID,
		ReactionType: models.ReactionType(req.ReactionType),
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&reaction).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add reaction"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": reaction.ID, "message": "Reaction added!"})
}

// reactionRow joins a reaction with the reacting user's name.
type reactionRow struct {
	ReactionType string    `json:"-"`
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"created_at"`
}

// List returns the reactions on one target, grouped by reaction type.
func (h *ReactionHandler) List(c *gin.Context) {
	targetType := c.Param("targetType")
	if _, ok := reactionTargets[models.ReactionTargetType(targetType)]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target type"})
		return
	}
	targetID, errParse := strconv.ParseUint(c.Param("targetId"), 10, 64)
	if errParse != nil || targetID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target ID"})
		return
	}

	var rows []reactionRow
	errScan := h.db.WithContext(c.Request.Context()).
		Table("reactions AS r").
		Select("r.reaction_type, u.username, r.created_at").
		Joins("INNER JOIN users u ON u.id = r.user_id").
		Where("r.target_type = ? AND r.target_id = ?", targetType, targetID).
		Order("r.created_at ASC").
		Scan(&rows).Error
	if errScan != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reactions"})
		return
	}

	grouped := make(map[string][]gin.H, len(reactionTypes))
	for _, row := range rows {
		grouped[row.ReactionType] = append(grouped[row.ReactionType], gin.H{
			"username":   row.Username,
			"created_at": row.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, grouped)
}
