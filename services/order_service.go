package services

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pippali-pos/entity"
	"pippali-pos/pkg/apperr"
	"pippali-pos/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	OptRepo  *repository.OptionRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	optRepo *repository.OptionRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, OptRepo: optRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint   `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes"`
	OptionIDs  []uint `json:"option_ids"`
}

type CreateOrderReq struct {
	Type         entity.OrderType   `json:"type"`
	Source       entity.OrderSource `json:"source"`
	TableNumber  string             `json:"table_number"`
	CustomerName string             `json:"customer_name"`
	Items        []OrderItemIn      `json:"items"`
}

// selectedOption is the per-item snapshot of a chosen option.
type selectedOption struct {
	Name       string  `json:"name"`
	PriceDelta float64 `json:"price_delta"`
}

// ----- Create -----

// Create builds an order with snapshot pricing: name and unit price are
// copied from the menu at this moment so later catalog edits never change
// the order.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperr.Validation("items is required")
	}
	if req.Type == "" {
		req.Type = entity.OrderTypeDineIn
	}
	if req.Source == "" {
		req.Source = entity.OrderSourcePOS
	}
	if !req.Type.Valid() || !req.Source.Valid() {
		return nil, apperr.Validation("invalid order type or source")
	}

	var order *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o := &entity.Order{
			Type:         req.Type,
			Source:       req.Source,
			Status:       entity.OrderStatusPending,
			TableNumber:  req.TableNumber,
			CustomerName: req.CustomerName,
		}
		if err := s.Repo.CreateOrder(tx, o); err != nil {
			return err
		}

		var total float64
		for _, in := range req.Items {
			if in.Quantity <= 0 {
				return apperr.Validation("quantity must be positive")
			}
			menuItem, err := s.MenuRepo.FindByIDTx(tx, in.MenuItemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("menu item not found")
				}
				return err
			}

			unitPrice := menuItem.BasePrice
			var selections []selectedOption
			if len(in.OptionIDs) > 0 {
				opts, err := s.OptRepo.FindOptionsByIDsTx(tx, in.OptionIDs)
				if err != nil {
					return err
				}
				for _, opt := range opts {
					unitPrice += opt.PriceDelta
					selections = append(selections, selectedOption{Name: opt.Name, PriceDelta: opt.PriceDelta})
				}
			}

			item := &entity.OrderItem{
				OrderID:      o.ID,
				MenuItemID:   menuItem.ID,
				MenuItemName: menuItem.Name,
				Quantity:     in.Quantity,
				UnitPrice:    unitPrice,
				TotalPrice:   unitPrice * float64(in.Quantity),
				Notes:        in.Notes,
			}
			if len(selections) > 0 {
				raw, err := json.Marshal(selections)
				if err != nil {
					return err
				}
				item.SelectedOptions = datatypes.JSON(raw)
			}
			if err := s.Repo.CreateItem(tx, item); err != nil {
				return err
			}
			total += item.TotalPrice
		}

		if err := s.Repo.UpdateFields(tx, o.ID, map[string]any{"total_amount": total}); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrder(order.ID)
}

func (s *OrderService) Get(id string) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) List(page, limit int) ([]entity.Order, int64, error) {
	return s.Repo.ListOrders(page, limit)
}

// ResolveActiveOrder returns the active order for a table number: the most
// recently created PENDING order, or nil when there is none.
func (s *OrderService) ResolveActiveOrder(tableNumber string) (*entity.Order, error) {
	return s.Repo.FindActiveByTableNumber(s.DB, tableNumber)
}
