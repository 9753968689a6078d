package repository

import (
	"errors"

	"gorm.io/gorm"

	"pippali-pos/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderTx(tx *gorm.DB, orderID string) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrders(page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	var total int64
	if err := r.DB.Model(&entity.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := r.DB.Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error
	return orders, total, err
}

// FindActiveByTableNumber returns the latest PENDING order for a table
// number. Multiple PENDING orders can exist; only the newest counts.
func (r *OrderRepository) FindActiveByTableNumber(tx *gorm.DB, tableNumber string) (*entity.Order, error) {
	var o entity.Order
	err := tx.Where("table_number = ? AND status = ?", tableNumber, entity.OrderStatusPending).
		Order("created_at DESC, id DESC").
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// FindItemsOfOrder returns only the requested items that still belong to the
// given order. Ids that moved elsewhere simply drop out of the result.
func (r *OrderRepository) FindItemsOfOrder(tx *gorm.DB, orderID string, itemIDs []string) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := tx.Where("order_id = ? AND id IN ?", orderID, itemIDs).Find(&items).Error
	return items, err
}

func (r *OrderRepository) ReassignItems(tx *gorm.DB, itemIDs []string, targetOrderID string) error {
	if len(itemIDs) == 0 {
		return nil
	}
	return tx.Model(&entity.OrderItem{}).
		Where("id IN ?", itemIDs).
		Update("order_id", targetOrderID).Error
}

func (r *OrderRepository) CountItems(tx *gorm.DB, orderID string) (int64, error) {
	var count int64
	err := tx.Model(&entity.OrderItem{}).Where("order_id = ?", orderID).Count(&count).Error
	return count, err
}

// RecomputeTotal resets total_amount from the order's current item set.
// COALESCE covers the empty order.
func (r *OrderRepository) RecomputeTotal(tx *gorm.DB, orderID string) error {
	sub := tx.Session(&gorm.Session{NewDB: true}).
		Model(&entity.OrderItem{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("order_id = ?", orderID)
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("total_amount", sub).Error
}

func (r *OrderRepository) UpdateFields(tx *gorm.DB, orderID string, fields map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(fields).Error
}

// UpdateStatusGuard flips status only when the current value matches.
// RowsAffected == 0 means a stale or conflicting transition.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID string, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}
