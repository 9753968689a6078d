package services

import (
	"strings"

	"gorm.io/gorm"

	"pippali-pos/entity"
	"pippali-pos/pkg/apperr"
)

type TargetSplit struct {
	TableNumber string   `json:"table_number"`
	ItemIDs     []string `json:"item_ids"`
}

// Split moves order items from the source table's active order onto the
// active orders of the target tables, creating target orders where none
// exist. Items are reassigned, never copied or deleted. The whole move and
// the total reconciliation commit as one transaction.
//
// Item ids that no longer belong to the source are skipped without error: a
// stale terminal re-sending an already-applied split must not corrupt state.
func (s *OrderService) Split(sourceTableNumber string, targets []TargetSplit) error {
	if strings.TrimSpace(sourceTableNumber) == "" || len(targets) == 0 {
		return apperr.Validation("empty split request")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		source, err := s.Repo.FindActiveByTableNumber(tx, sourceTableNumber)
		if err != nil {
			return err
		}
		if source == nil {
			return apperr.NotFound("no active order for table " + sourceTableNumber)
		}

		touched := []string{source.ID}

		for _, target := range targets {
			if len(target.ItemIDs) == 0 {
				continue
			}

			targetOrder, err := s.Repo.FindActiveByTableNumber(tx, target.TableNumber)
			if err != nil {
				return err
			}
			if targetOrder == nil {
				// The target table needs no physical Table row; the linkage
				// is a free-text label.
				targetOrder = &entity.Order{
					Type:         source.Type,
					Source:       source.Source,
					Status:       entity.OrderStatusPending,
					TableNumber:  target.TableNumber,
					CustomerName: splitCustomerName(source.CustomerName),
				}
				if err := s.Repo.CreateOrder(tx, targetOrder); err != nil {
					return err
				}
			}
			if targetOrder.ID == source.ID {
				continue
			}

			items, err := s.Repo.FindItemsOfOrder(tx, source.ID, target.ItemIDs)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				continue
			}

			ids := make([]string, 0, len(items))
			for _, it := range items {
				ids = append(ids, it.ID)
			}
			if err := s.Repo.ReassignItems(tx, ids, targetOrder.ID); err != nil {
				return err
			}
			touched = append(touched, targetOrder.ID)
		}

		// Totals are rebuilt from the item sets rather than adjusted in
		// place, so total_amount == sum(items.total_price) holds even if
		// something else ever touched the items.
		for _, orderID := range touched {
			if err := s.Repo.RecomputeTotal(tx, orderID); err != nil {
				return err
			}
		}

		count, err := s.Repo.CountItems(tx, source.ID)
		if err != nil {
			return err
		}
		if count == 0 {
			// Keep the emptied order for audit history.
			err := s.Repo.UpdateFields(tx, source.ID, map[string]any{
				"status": entity.OrderStatusCancelled,
				"notes":  "Order fully split to other tables",
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func splitCustomerName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Split"
	}
	return name + " (split)"
}
