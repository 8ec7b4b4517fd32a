package handlers

import (
	"errors"
	"net/http"

	"github.com/crankerz/crankerz/internal/models"
	"github.com/crankerz/crankerz/internal/progression"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserHandler serves profile reads and equipment updates.
type UserHandler struct {
	db *gorm.DB
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// profileResponse is the user aggregate plus the level progress bar.
type profileResponse struct {
	models.User
	LevelProgress progression.LevelProgress `json:"levelProgress"`
}

// Profile returns the authenticated user with level progression info.
func (h *UserHandler) Profile(c *gin.Context) {
	userID := currentUserID(c)

	var user models.User
	if errFind := h.db.WithContext(c.Request.Context()).First(&user, userID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, profileResponse{
		User:          user,
		LevelProgress: progression.ProgressFor(user.Experience),
	})
}

type equipmentRequest struct {
	EquippedTheme       *string `json:"equipped_theme"`
	EquippedBadge       *string `json:"equipped_badge"`
	EquippedAvatarFrame *string `json:"equipped_avatar_frame"`
}

// UpdateEquipment updates the user's cosmetic slots. Absent fields keep
// their current value; an empty string clears the slot.
func (h *UserHandler) UpdateEquipment(c *gin.Context) {
	var req equipmentRequest
	if errBind := c.ShouldBindJSON(&req); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID := currentUserID(c)
	var user models.User
	if errFind := h.db.WithContext(c.Request.Context()).First(&user, userID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update equipment"})
		return
	}

	updates := map[string]any{}
	if req.EquippedTheme != nil {
		updates["equipped_theme"] = *req.EquippedTheme
		user.EquippedTheme = *req.EquippedTheme
	}
	if req.EquippedBadge != nil {
		updates["equipped_badge"] = *req.EquippedBadge
		user.EquippedBadge = *req.EquippedBadge
	}
	if req.EquippedAvatarFrame != nil {
		updates["equipped_avatar_frame"] = *req.EquippedAvatarFrame
		user.EquippedAvatarFrame = *req.EquippedAvatarFrame
	}
	if len(updates) > 0 {
		if errUpdate := h.db.WithContext(c.Request.Context()).Model(&user).Updates(updates).Error; errUpdate != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update equipment"})
			return
		}
	}

	c.JSON(http.StatusOK, user)
}
