package handlers

import (
	"net/http"
	"strconv"
	"time"

	"lab_dashboard/internal/config"
	"lab_dashboard/internal/models"
	"lab_dashboard/internal/services"
	"lab_dashboard/internal/tracking"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
	cfg          *config.Config
}

func NewOrderHandler(orderService services.OrderService, cfg *config.Config) *OrderHandler {
	return &OrderHandler{orderService: orderService, cfg: cfg}
}

// Stage and billing date edits arrive as strings so the dashboard can send
// whatever its pickers produce; parsing degrades to "unchanged" on garbage.
type stageDatesRequest struct {
	IntakeDate               *string `json:"intake_date"`
	PlanningDate             *string `json:"planning_date"`
	VerificationDate         *string `json:"verification_date"`
	VerificationResolvedDate *string `json:"verification_resolved_date"`
	ReleaseDate              *string `json:"release_date"`
	ResultDeliveryDate       *string `json:"result_delivery_date"`
	ResultReceiptDate        *string `json:"result_receipt_date"`
}

type billingRequest struct {
	BillingDate   *string  `json:"billing_date"`
	InvoiceNumber *string  `json:"invoice_number"`
	InvoiceAmount *float64 `json:"invoice_amount"`
}

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	return tracking.ParseDate(*s)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetAnnotatedOrder(id, h.cfg.OverdueThresholdDays)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if !scope.Allows(&order.UnifiedOrder) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Order outside your scope"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	if !scope.CanEditStages() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
		return
	}

	var order models.ServiceOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.orderService.CreateOrder(&order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) UpdateStageDates(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	if !scope.CanEditStages() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
		return
	}
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req stageDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	update := services.StageDateUpdate{
		IntakeDate:               parseDate(req.IntakeDate),
		PlanningDate:             parseDate(req.PlanningDate),
		VerificationDate:         parseDate(req.VerificationDate),
		VerificationResolvedDate: parseDate(req.VerificationResolvedDate),
		ReleaseDate:              parseDate(req.ReleaseDate),
		ResultDeliveryDate:       parseDate(req.ResultDeliveryDate),
		ResultReceiptDate:        parseDate(req.ResultReceiptDate),
	}

	order, err := h.orderService.UpdateStageDates(id, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stage dates"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateBilling(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	if !scope.CanEditBilling() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
		return
	}
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req billingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	update := services.BillingUpdate{
		BillingDate:   parseDate(req.BillingDate),
		InvoiceNumber: req.InvoiceNumber,
		InvoiceAmount: req.InvoiceAmount,
	}

	order, err := h.orderService.UpdateBilling(id, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update billing"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	if !scope.CanEditBilling() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
		return
	}
	id, ok := orderID(c)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
