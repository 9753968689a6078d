package services

import (
	"errors"

	"gorm.io/gorm"

	"pippali-pos/entity"
	"pippali-pos/pkg/apperr"
)

// forward is the happy path through the kitchen; CANCELLED is reachable from
// any non-terminal status.
var forward = map[entity.OrderStatus]entity.OrderStatus{
	entity.OrderStatusPending:   entity.OrderStatusConfirmed,
	entity.OrderStatusConfirmed: entity.OrderStatusPreparing,
	entity.OrderStatusPreparing: entity.OrderStatusReady,
	entity.OrderStatusReady:     entity.OrderStatusCompleted,
}

func (s *OrderService) UpdateStatus(orderID string, to entity.OrderStatus) error {
	if !to.Valid() {
		return apperr.Validation("invalid order status")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderTx(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found")
			}
			return err
		}

		if !transitionAllowed(o.Status, to) {
			return apperr.Validation("invalid status transition")
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Validation("status changed concurrently")
		}
		return nil
	})
}

func transitionAllowed(from, to entity.OrderStatus) bool {
	if from.Terminal() {
		return false
	}
	if to == entity.OrderStatusCancelled {
		return true
	}
	return forward[from] == to
}
