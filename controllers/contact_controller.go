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

type ContactController struct {
	contactRepo *repositories.ContactRepository
}

func NewContactController() *ContactController {
	return &ContactController{
		contactRepo: repositories.NewContactRepository(),
	}
}

// @Summary Submit contact form
// @Description Store a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body models.ContactRequest true "Contact message"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /contact [post]
func (ctrl *ContactController) SubmitContactForm(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid contact data."})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name is required."})
		return
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email address."})
		return
	}
	message := strings.TrimSpace(req.Message)
	if len(message) < 10 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Message must be at least 10 characters long."})
		return
	}

	msg := &models.ContactMessage{
		Name:    name,
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: message,
	}

	if err := ctrl.contactRepo.CreateMessage(c.Request.Context(), msg); err != nil {
		log.Println("Error submitting contact form:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send message. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Your message has been sent successfully!"})
}
