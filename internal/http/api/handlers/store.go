package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/crankerz/crankerz/internal/models"
	"github.com/crankerz/crankerz/internal/store"
	"github.com/gin-gonic/gin"
)

// StoreHandler serves the cosmetic store endpoints.
type StoreHandler struct {
	service *store.Service
}

// NewStoreHandler constructs a StoreHandler.
func NewStoreHandler(service *store.Service) *StoreHandler {
	return &StoreHandler{service: service}
}

// Items returns the catalog with per-user availability.
func (h *StoreHandler) Items(c *gin.Context) {
	items, errList := h.service.ListItems(c.Request.Context(), currentUserID(c))
	if errList != nil {
		if errors.Is(errList, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get store items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Purchases returns the items the user owns.
func (h *StoreHandler) Purchases(c *gin.Context) {
	purchases, errList := h.service.ListPurchases(c.Request.Context(), currentUserID(c))
	if errList != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get purchases"})
		return
	}
	owned := make([]models.StoreItem, 0, len(purchases))
	for _, purchase := range purchases {
		owned = append(owned, purchase.Item)
	}
	c.JSON(http.StatusOK, owned)
}

type purchaseRequest struct {
	ItemID uint64 `json:"itemId"`
}

// Purchase buys one item for the authenticated user.
func (h *StoreHandler) Purchase(c *gin.Context) {
	var req purchaseRequest
	if errBind := c.ShouldBindJSON(&req); errBind != nil || req.ItemID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	_, errPurchase := h.service.PurchaseItem(c.Request.Context(), currentUserID(c), req.ItemID)
	if errPurchase != nil {
		var levelErr *store.LevelRequiredError
		switch {
		case errors.Is(errPurchase, store.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errors.Is(errPurchase, store.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.As(errPurchase, &levelErr):
			c.JSON(http.StatusForbidden, gin.H{"error": fmt.Sprintf("Level %d required", levelErr.Required)})
		case errors.Is(errPurchase, store.ErrInsufficientPoints):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient points"})
		case errors.Is(errPurchase, store.ErrAlreadyOwned):
			c.JSON(http.StatusConflict, gin.H{"error": "Item already owned"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to purchase item"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Item purchased successfully!"})
}
