package controllers

import (
	"log"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gin-gonic/gin"

	"artisan-axis/models"
	"artisan-axis/repositories"
)

type NewsletterController struct {
	newsletterRepo *repositories.NewsletterRepository
}

func NewNewsletterController() *NewsletterController {
	return &NewsletterController{
		newsletterRepo: repositories.NewNewsletterRepository(),
	}
}

// @Summary Subscribe to newsletter
// @Description Add an email to the newsletter list
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param subscription body models.SubscribeRequest true "Email"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /newsletter [post]
func (ctrl *NewsletterController) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email address."})
		return
	}

	email := strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email address."})
		return
	}

	if err := ctrl.newsletterRepo.Subscribe(c.Request.Context(), email); err != nil {
		if repositories.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "This email is already subscribed."})
			return
		}
		log.Println("Error subscribing to newsletter:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to subscribe. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Successfully subscribed to our newsletter!"})
}
