package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/crankerz/crankerz/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FriendHandler serves friend requests.
type FriendHandler struct {
	db *gorm.DB
}

// NewFriendHandler constructs a FriendHandler.
func NewFriendHandler(db *gorm.DB) *FriendHandler {
	return &FriendHandler{db: db}
}

type addFriendRequest struct {
	Username string `json:"username"`
}

// Add links the caller to another user by username. The friendship takes
// effect immediately; re-adding an existing friend is a no-op.
func (h *FriendHandler) Add(c *gin.Context) {
	var req addFriendRequest
	if errBind := c.ShouldBindJSON(&req); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username"})
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if !validUsername(req.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username"})
		return
	}

	var friend models.User
	errFind := h.db.WithContext(c.Request.Context()).
		Where("username = ?", strings.ToLower(req.Username)).
		First(&friend).Error
	if errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add friend"})
		return
	}

	userID := currentUserID(c)
	if friend.ID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot add yourself as friend"})
		return
	}

	friendship := models.Friendship{
		UserID:   userID,
		FriendID: friend.ID,
	}
	if errCreate := h.db.WithContext(c.Request.Context()).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&friendship).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add friend"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend request sent!"})
}
