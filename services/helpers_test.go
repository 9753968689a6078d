package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pippali-pos/entity"
	"pippali-pos/repository"
)

// newTestDB opens a per-test in-memory database so tests stay isolated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Admin{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.OptionGroup{}, &entity.Option{},
		&entity.Table{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newTableService(t *testing.T) (*TableService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewTableService(db, repository.NewTableRepository(db)), db
}

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		repository.NewOptionRepository(db),
	)
	return svc, db
}

func makeTable(t *testing.T, db *gorm.DB, number string, x, y float64) *entity.Table {
	t.Helper()
	table := &entity.Table{Number: number, Capacity: 4, PositionX: x, PositionY: y, Shape: "rectangle"}
	require.NoError(t, db.Create(table).Error)
	return table
}

func makeOrder(t *testing.T, db *gorm.DB, tableNumber string, status entity.OrderStatus) *entity.Order {
	t.Helper()
	order := &entity.Order{
		Type:        entity.OrderTypeDineIn,
		Source:      entity.OrderSourcePOS,
		Status:      status,
		TableNumber: tableNumber,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func makeItem(t *testing.T, db *gorm.DB, orderID, name string, unitPrice float64, qty int) *entity.OrderItem {
	t.Helper()
	item := &entity.OrderItem{
		OrderID:      orderID,
		MenuItemName: name,
		UnitPrice:    unitPrice,
		Quantity:     qty,
		TotalPrice:   unitPrice * float64(qty),
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

// syncTotal makes total_amount match the order's items, as production code
// does after every mutation.
func syncTotal(t *testing.T, db *gorm.DB, orderID string) {
	t.Helper()
	var sum float64
	require.NoError(t, db.Model(&entity.OrderItem{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(total_price), 0)").Scan(&sum).Error)
	require.NoError(t, db.Model(&entity.Order{}).
		Where("id = ?", orderID).Update("total_amount", sum).Error)
}

func reloadTable(t *testing.T, db *gorm.DB, id uint) *entity.Table {
	t.Helper()
	var table entity.Table
	require.NoError(t, db.First(&table, id).Error)
	return &table
}

func reloadOrder(t *testing.T, db *gorm.DB, id string) *entity.Order {
	t.Helper()
	var order entity.Order
	require.NoError(t, db.Preload("Items").First(&order, "id = ?", id).Error)
	return &order
}
