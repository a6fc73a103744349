package services

import (
	"log"
	"time"

	"comercial/internal/models"
	"comercial/internal/repositories"
	"comercial/pkg/rabbitmq"

	"github.com/google/uuid"
)

// PurchaseService handles the purchase registration transaction.
type PurchaseService struct {
	uow      repositories.UnitOfWork
	repo     repositories.PurchaseRepository
	mqClient *rabbitmq.Client
}

// NewPurchaseService creates a new PurchaseService. mqClient may be nil, in
// which case no events are published.
func NewPurchaseService(uow repositories.UnitOfWork, repo repositories.PurchaseRepository, mqClient *rabbitmq.Client) *PurchaseService {
	return &PurchaseService{
		uow:      uow,
		repo:     repo,
		mqClient: mqClient,
	}
}

// RegisterPurchase runs the whole purchase flow as one unit of work:
// resolve the customer, validate stock for every requested line, compute
// line and order totals from current unit prices, persist the header with
// its lines, and decrement each product's stock. Any failure rolls the
// whole unit back, so no partial writes survive.
func (s *PurchaseService) RegisterPurchase(input models.PurchaseInput) (*models.Purchase, error) {
	var created *models.Purchase

	err := s.uow.Execute(func(tx repositories.TxRepositories) error {
		customer, err := tx.Customers().GetByID(input.CustomerID)
		if err != nil {
			return err
		}

		// Inventory check: collect every shortage before failing, so the
		// caller sees all insufficient products at once.
		products := make(map[uint]*models.Product, len(input.Items))
		var shortages []models.StockShortage
		for _, item := range input.Items {
			product, ok := products[item.ProductID]
			if !ok {
				product, err = tx.Products().GetByID(item.ProductID)
				if err != nil {
					return err
				}
				products[item.ProductID] = product
			}
			if product.Stock < item.Quantity {
				shortages = append(shortages, models.StockShortage{
					ProductID: product.ID,
					Name:      product.Name,
					Available: product.Stock,
					Requested: item.Quantity,
				})
			}
		}
		if len(shortages) > 0 {
			return &models.InsufficientStockError{Shortages: shortages}
		}

		// Line totals capture the unit price at the time of the purchase.
		var total float64
		lines := make([]models.PurchaseLine, 0, len(input.Items))
		for _, item := range input.Items {
			product := products[item.ProductID]
			lineTotal := product.Price * float64(item.Quantity)
			lines = append(lines, models.PurchaseLine{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Total:     lineTotal,
			})
			total += lineTotal
		}

		purchase := &models.Purchase{
			CustomerID: customer.ID,
			Total:      total,
			Date:       time.Now(),
			Items:      lines,
		}
		if err := tx.Purchases().Create(purchase); err != nil {
			return err
		}

		for _, item := range input.Items {
			if err := tx.Products().DecrementStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		created = purchase
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishPurchaseCreated(created)
	return created, nil
}

// publishPurchaseCreated emits a purchase.created event after the commit.
// Publishing is best effort: the purchase already exists, so a broker
// failure only gets logged.
func (s *PurchaseService) publishPurchaseCreated(purchase *models.Purchase) {
	if s.mqClient == nil {
		return
	}
	event := map[string]interface{}{
		"event_id":    uuid.New().String(),
		"purchase_id": purchase.ID,
		"cliente_id":  purchase.CustomerID,
		"total":       purchase.Total,
		"data":        purchase.Date.Format(time.RFC3339),
	}
	if err := s.mqClient.PublishPurchaseCreated(event); err != nil {
		log.Printf("Warning: failed to publish purchase created event for purchase %d: %v", purchase.ID, err)
	}
}

// ListPurchases retrieves the purchase history, newest first.
func (s *PurchaseService) ListPurchases() ([]models.Purchase, error) {
	return s.repo.GetAllWithItems()
}

// CountPurchases returns the number of committed purchases.
func (s *PurchaseService) CountPurchases() (int64, error) {
	return s.repo.Count()
}
