package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"artisan-axis/models"
	"artisan-axis/repositories"
)

type WishlistController struct {
	wishlistRepo *repositories.WishlistRepository
}

func NewWishlistController() *WishlistController {
	return &WishlistController{
		wishlistRepo: repositories.NewWishlistRepository(),
	}
}

// @Summary Toggle wishlist
// @Description Add or remove a product from the caller's wishlist
// @Tags Wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body models.ToggleWishlistRequest true "Product and current state"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /wishlist/toggle [post]
func (ctrl *WishlistController) ToggleWishlist(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.ToggleWishlistRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID."})
		return
	}
	if _, err := uuid.Parse(req.ProductID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID."})
		return
	}

	ctx := c.Request.Context()

	if req.IsAdded {
		if err := ctrl.wishlistRepo.RemoveFromWishlist(ctx, userID, req.ProductID); err != nil {
			log.Println("Error removing from wishlist:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove from wishlist. Please try again."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Removed from wishlist."})
		return
	}

	if err := ctrl.wishlistRepo.AddToWishlist(ctx, userID, req.ProductID); err != nil {
		if repositories.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Product is already in your wishlist."})
			return
		}
		log.Println("Error adding to wishlist:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add to wishlist. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Added to wishlist!"})
}

// @Summary Get wishlist
// @Description Get the caller's wishlist with product details
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /wishlist [get]
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	userID := c.GetString("user_id")

	items, err := ctrl.wishlistRepo.GetWishlistByUser(c.Request.Context(), userID)
	if err != nil {
		log.Println("Error fetching wishlist:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve wishlist"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Wishlist retrieved successfully",
		Data:    items,
	})
}
