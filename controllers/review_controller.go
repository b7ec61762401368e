package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"artisan-axis/models"
	"artisan-axis/repositories"
)

type ReviewController struct {
	reviewRepo *repositories.ReviewRepository
}

func NewReviewController() *ReviewController {
	return &ReviewController{
		reviewRepo: repositories.NewReviewRepository(),
	}
}

// @Summary Submit review
// @Description Submit a product review (rating 1-5, comment 10-500 chars)
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param review body models.SubmitReviewRequest true "Review data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /reviews [post]
func (ctrl *ReviewController) SubmitReview(c *gin.Context) {
	userID := c.GetString("user_id")
	userEmail := c.GetString("user_email")

	var req models.SubmitReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid review data."})
		return
	}

	if _, err := uuid.Parse(req.ProductID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID."})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Rating must be between 1 and 5."})
		return
	}
	comment := strings.TrimSpace(req.Comment)
	if len(comment) < 10 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Comment must be at least 10 characters long."})
		return
	}
	if len(comment) > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Comment is too long."})
		return
	}

	review := &models.Review{
		ProductID:    req.ProductID,
		UserID:       userID,
		ReviewerName: userEmail,
		Rating:       req.Rating,
		Comment:      comment,
	}

	if err := ctrl.reviewRepo.CreateReview(c.Request.Context(), review); err != nil {
		log.Println("Error submitting review:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to submit review. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Review submitted successfully!",
		Data:    review,
	})
}

// @Summary Get product reviews
// @Description Get all reviews for a product
// @Tags Reviews
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /products/{id}/reviews [get]
func (ctrl *ReviewController) GetProductReviews(c *gin.Context) {
	productID := c.Param("id")

	reviews, err := ctrl.reviewRepo.GetReviewsByProduct(c.Request.Context(), productID)
	if err != nil {
		log.Println("Error fetching reviews:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve reviews"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Reviews retrieved successfully",
		Data:    reviews,
	})
}
