package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"artisan-axis/models"
	"artisan-axis/repositories"
	"artisan-axis/services"
)

type OrderController struct {
	orderService *services.OrderService
	orderRepo    *repositories.OrderRepository
}

func NewOrderController() *OrderController {
	repo := repositories.NewOrderRepository()
	return &OrderController{
		orderService: services.NewOrderService(repo),
		orderRepo:    repo,
	}
}

// @Summary Place order
// @Description Submit the current cart with shipping and payment details
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param order body models.PlaceOrderRequest true "Cart lines and shipping details"
// @Success 201 {object} models.OrderResult
// @Failure 400 {object} models.OrderResult
// @Router /orders [post]
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.PlaceOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.OrderResult{
			Success: false,
			Message: "Invalid cart data. Please try again.",
		})
		return
	}

	confirmation, err := ctrl.orderService.PlaceOrder(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(statusForOrderError(err), models.OrderResult{
			Success: false,
			Message: services.FailureMessage(err),
		})
		return
	}

	ctrl.sendConfirmationEmail(c.GetString("user_email"), confirmation)

	c.JSON(http.StatusCreated, models.OrderResult{
		Success: true,
		Message: "Your order has been placed successfully!",
		Order:   confirmation,
	})
}

// @Summary Get my orders
// @Description Get the caller's order history with items
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	orders, err := ctrl.orderRepo.GetOrdersByUser(c.Request.Context(), userID)
	if err != nil {
		log.Println("Error fetching orders:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
	})
}

// sendConfirmationEmail is best effort: a missing SMTP config or a send
// failure never affects the order result.
func (ctrl *OrderController) sendConfirmationEmail(toEmail string, confirmation *models.OrderConfirmation) {
	if toEmail == "" {
		return
	}
	go func() {
		emailService, err := models.NewEmailService()
		if err != nil {
			return
		}
		if err := emailService.SendOrderConfirmationEmail(toEmail, confirmation); err != nil {
			log.Println("Failed to send order confirmation email:", err)
		}
	}()
}

func statusForOrderError(err error) int {
	var vErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrInvalidCartPayload),
		errors.Is(err, services.ErrEmptyCart),
		errors.As(err, &vErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
