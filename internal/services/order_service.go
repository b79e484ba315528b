package services

import (
	"fmt"
	"time"

	"lab_dashboard/internal/models"
	"lab_dashboard/internal/repository"
	"lab_dashboard/internal/tracking"
)

// StageDateUpdate carries edited stage dates. Nil fields are left
// unchanged. Stage ordering is deliberately not validated: the store
// accepts milestones in any temporal order and the derivation pipeline
// interprets whatever combination exists.
type StageDateUpdate struct {
	IntakeDate               *time.Time `json:"intake_date"`
	PlanningDate             *time.Time `json:"planning_date"`
	VerificationDate         *time.Time `json:"verification_date"`
	VerificationResolvedDate *time.Time `json:"verification_resolved_date"`
	ReleaseDate              *time.Time `json:"release_date"`
	ResultDeliveryDate       *time.Time `json:"result_delivery_date"`
	ResultReceiptDate        *time.Time `json:"result_receipt_date"`
}

// BillingUpdate carries edited billing fields. Nil fields are left
// unchanged.
type BillingUpdate struct {
	BillingDate   *time.Time `json:"billing_date"`
	InvoiceNumber *string    `json:"invoice_number"`
	InvoiceAmount *float64   `json:"invoice_amount"`
}

type OrderService interface {
	CreateOrder(order *models.ServiceOrder) error
	GetOrderByID(id uint) (*models.ServiceOrder, error)
	GetAnnotatedOrder(id uint, overdueThresholdDays float64) (*tracking.AnnotatedOrder, error)
	UpdateStageDates(id uint, update StageDateUpdate) (*models.ServiceOrder, error)
	UpdateBilling(id uint, update BillingUpdate) (*models.ServiceOrder, error)
	DeleteOrder(id uint) error
	GetAllOrders() ([]models.ServiceOrder, error)
}

type orderService struct {
	orderRepo repository.ServiceOrderRepository
	cache     SummaryCache
	now       func() time.Time
}

func NewOrderService(orderRepo repository.ServiceOrderRepository, cache SummaryCache) OrderService {
	return &orderService{orderRepo: orderRepo, cache: cache, now: time.Now}
}

func (s *orderService) CreateOrder(order *models.ServiceOrder) error {
	if err := s.orderRepo.Create(order); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *orderService) GetOrderByID(id uint) (*models.ServiceOrder, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetAnnotatedOrder(id uint, overdueThresholdDays float64) (*tracking.AnnotatedOrder, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	annotated := tracking.Annotate(MapServiceOrder(*order), s.now(), overdueThresholdDays)
	return &annotated, nil
}

func (s *orderService) UpdateStageDates(id uint, update StageDateUpdate) (*models.ServiceOrder, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %d: %w", id, err)
	}

	if update.IntakeDate != nil {
		order.IntakeDate = update.IntakeDate
	}
	if update.PlanningDate != nil {
		order.PlanningDate = update.PlanningDate
	}
	if update.VerificationDate != nil {
		order.VerificationDate = update.VerificationDate
	}
	if update.VerificationResolvedDate != nil {
		order.VerificationResolvedDate = update.VerificationResolvedDate
	}
	if update.ReleaseDate != nil {
		order.ReleaseDate = update.ReleaseDate
	}
	if update.ResultDeliveryDate != nil {
		order.ResultDeliveryDate = update.ResultDeliveryDate
	}
	if update.ResultReceiptDate != nil {
		order.ResultReceiptDate = update.ResultReceiptDate
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	s.invalidate()
	return order, nil
}

func (s *orderService) UpdateBilling(id uint, update BillingUpdate) (*models.ServiceOrder, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %d: %w", id, err)
	}

	if update.BillingDate != nil {
		order.BillingDate = update.BillingDate
	}
	if update.InvoiceNumber != nil {
		order.InvoiceNumber = *update.InvoiceNumber
	}
	if update.InvoiceAmount != nil {
		order.InvoiceAmount = *update.InvoiceAmount
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	s.invalidate()
	return order, nil
}

func (s *orderService) DeleteOrder(id uint) error {
	if err := s.orderRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *orderService) GetAllOrders() ([]models.ServiceOrder, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) invalidate() {
	// Summaries are recomputed on the next read; a failed invalidation only
	// extends staleness until the TTL expires.
	_ = s.cache.InvalidateSummaries()
}
