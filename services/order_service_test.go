package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pippali-pos/entity"
	"pippali-pos/pkg/apperr"
)

func makeMenuItem(t *testing.T, svc *OrderService, name string, price float64) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{Name: name, BasePrice: price, IsActive: true, IsAvailable: true}
	require.NoError(t, svc.DB.Create(item).Error)
	return item
}

func TestCreateOrderSnapshotsPricing(t *testing.T) {
	svc, db := newOrderService(t)
	curry := makeMenuItem(t, svc, "Butter Chicken", 95)
	naan := makeMenuItem(t, svc, "Garlic Naan", 25)

	order, err := svc.Create(&CreateOrderReq{
		TableNumber:  "2",
		CustomerName: "Jordan",
		Items: []OrderItemIn{
			{MenuItemID: curry.ID, Quantity: 2},
			{MenuItemID: naan.ID, Quantity: 1, Notes: "extra garlic"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.OrderTypeDineIn, order.Type)
	assert.Equal(t, entity.OrderSourcePOS, order.Source)
	assert.Equal(t, 215.0, order.TotalAmount)
	require.Len(t, order.Items, 2)

	// later catalog edits never change historical orders
	require.NoError(t, db.Model(curry).Update("base_price", 999).Error)
	reloaded := reloadOrder(t, db, order.ID)
	assert.Equal(t, 215.0, reloaded.TotalAmount)
	for _, it := range reloaded.Items {
		if it.MenuItemID == curry.ID {
			assert.Equal(t, 95.0, it.UnitPrice)
			assert.Equal(t, "Butter Chicken", it.MenuItemName)
		}
	}
}

func TestCreateOrderSnapshotsSelectedOptions(t *testing.T) {
	svc, _ := newOrderService(t)
	dish := makeMenuItem(t, svc, "Biryani", 110)

	group := &entity.OptionGroup{Name: "Spice", Slug: "spice"}
	require.NoError(t, svc.DB.Create(group).Error)
	hot := &entity.Option{OptionGroupID: group.ID, Name: "Extra Hot", PriceDelta: 5}
	require.NoError(t, svc.DB.Create(hot).Error)

	order, err := svc.Create(&CreateOrderReq{
		TableNumber: "3",
		Items:       []OrderItemIn{{MenuItemID: dish.ID, Quantity: 1, OptionIDs: []uint{hot.ID}}},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)

	item := order.Items[0]
	assert.Equal(t, 115.0, item.UnitPrice)
	assert.Equal(t, 115.0, item.TotalPrice)

	var selections []selectedOption
	require.NoError(t, json.Unmarshal(item.SelectedOptions, &selections))
	require.Len(t, selections, 1)
	assert.Equal(t, "Extra Hot", selections[0].Name)
	assert.Equal(t, 5.0, selections[0].PriceDelta)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _ := newOrderService(t)
	dish := makeMenuItem(t, svc, "Dal", 45)

	_, err := svc.Create(&CreateOrderReq{TableNumber: "2"})
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.Create(&CreateOrderReq{
		Items: []OrderItemIn{{MenuItemID: dish.ID, Quantity: 0}},
	})
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.Create(&CreateOrderReq{
		Items: []OrderItemIn{{MenuItemID: dish.ID + 99, Quantity: 1}},
	})
	assert.True(t, apperr.IsNotFound(err))
}

func TestCreateOrderRollsBackOnUnknownItem(t *testing.T) {
	svc, db := newOrderService(t)
	dish := makeMenuItem(t, svc, "Dal", 45)

	_, err := svc.Create(&CreateOrderReq{
		Items: []OrderItemIn{
			{MenuItemID: dish.ID, Quantity: 1},
			{MenuItemID: dish.ID + 99, Quantity: 1},
		},
	})
	require.Error(t, err)

	// nothing from the failed request survives
	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateStatusFollowsTransitions(t *testing.T) {
	svc, db := newOrderService(t)
	order := makeOrder(t, db, "2", entity.OrderStatusPending)

	require.NoError(t, svc.UpdateStatus(order.ID, entity.OrderStatusConfirmed))
	require.NoError(t, svc.UpdateStatus(order.ID, entity.OrderStatusPreparing))
	require.NoError(t, svc.UpdateStatus(order.ID, entity.OrderStatusReady))
	require.NoError(t, svc.UpdateStatus(order.ID, entity.OrderStatusCompleted))

	// terminal orders admit nothing further
	err := svc.UpdateStatus(order.ID, entity.OrderStatusCancelled)
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateStatusRejectsSkips(t *testing.T) {
	svc, db := newOrderService(t)
	order := makeOrder(t, db, "2", entity.OrderStatusPending)

	err := svc.UpdateStatus(order.ID, entity.OrderStatusReady)
	assert.True(t, apperr.IsValidation(err))

	// cancel is allowed from any non-terminal status
	require.NoError(t, svc.UpdateStatus(order.ID, entity.OrderStatusCancelled))
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc, _ := newOrderService(t)
	err := svc.UpdateStatus("missing", entity.OrderStatusConfirmed)
	assert.True(t, apperr.IsNotFound(err))
}
