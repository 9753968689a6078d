package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pippali-pos/entity"
	"pippali-pos/pkg/apperr"
	"pippali-pos/repository"
)

type TableService struct {
	DB   *gorm.DB
	Repo *repository.TableRepository
}

func NewTableService(db *gorm.DB, repo *repository.TableRepository) *TableService {
	return &TableService{DB: db, Repo: repo}
}

// ----- CRUD -----

func (s *TableService) List() ([]entity.Table, error) {
	return s.Repo.List()
}

func (s *TableService) Create(t *entity.Table) error {
	count, err := s.Repo.CountByNumber(t.Number)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Validation("table already exists")
	}
	return s.Repo.Create(t)
}

func (s *TableService) Update(id uint, fields map[string]any) (*entity.Table, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("table not found")
		}
		return nil, err
	}
	if len(fields) == 0 {
		return s.Repo.FindByID(id)
	}
	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

func (s *TableService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("table not found")
		}
		return err
	}
	return s.Repo.Delete(id)
}

// ----- Grouping -----

type JoinResult struct {
	Message  string `json:"message"`
	ParentID uint   `json:"parent_id"`
}

// Join forms a one-level group out of the given tables. The table with the
// lowest id becomes the parent; every other table becomes its child and takes
// over the parent's occupancy. Positions are snapshotted into original_x/y
// unless an earlier, still unrestored join already did so.
func (s *TableService) Join(tableIDs []uint) (*JoinResult, error) {
	ids := dedupeIDs(tableIDs)
	if len(ids) < 2 {
		return nil, apperr.Validation("need at least 2 tables to join")
	}

	var result *JoinResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		tables, err := s.Repo.FindByIDs(tx, ids)
		if err != nil {
			return err
		}
		if len(tables) != len(ids) {
			return apperr.Validation("one or more tables do not exist")
		}

		// FindByIDs orders by id, so the first entry is the stable anchor.
		parent := &tables[0]

		for i := range tables {
			t := &tables[i]
			if t.OriginalX == nil {
				x := t.PositionX
				t.OriginalX = &x
			}
			if t.OriginalY == nil {
				y := t.PositionY
				t.OriginalY = &y
			}
		}

		// A parent never carries a parent_id of its own; groups stay one
		// level deep even when the anchor was previously someone's child.
		parent.ParentID = nil

		for i := 1; i < len(tables); i++ {
			child := &tables[i]
			child.ParentID = &parent.ID
			child.IsOccupied = parent.IsOccupied
		}

		for i := range tables {
			if err := s.Repo.Save(tx, &tables[i]); err != nil {
				return err
			}
		}

		result = &JoinResult{
			Message:  fmt.Sprintf("Tables joined under Table %s", parent.Number),
			ParentID: parent.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Disjoin removes tables from the group the anchor belongs to. An empty
// removeIDs disbands the whole group, and so does a removal set that
// includes the parent: taking the parent away while children still point at
// it would leave a broken tree.
func (s *TableService) Disjoin(anchorID uint, removeIDs []uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		anchor, err := s.Repo.FindByIDTx(tx, anchorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("table not found")
			}
			return err
		}

		rootID := anchor.ID
		if anchor.ParentID != nil {
			rootID = *anchor.ParentID
		}

		group, err := s.Repo.FindGroup(tx, rootID)
		if err != nil {
			return err
		}
		if len(group) <= 1 {
			return apperr.Validation("table is not joined")
		}

		toRemove := group
		if len(removeIDs) > 0 {
			wanted := make(map[uint]bool, len(removeIDs))
			for _, id := range removeIDs {
				wanted[id] = true
			}
			selected := make([]entity.Table, 0, len(group))
			removesParent := false
			for _, t := range group {
				if wanted[t.ID] {
					selected = append(selected, t)
					if t.ID == rootID {
						removesParent = true
					}
				}
			}
			if !removesParent {
				toRemove = selected
			}
		}

		for i := range toRemove {
			t := &toRemove[i]
			t.ParentID = nil

			// Snap back, consuming the snapshot exactly once.
			if t.OriginalX != nil {
				t.PositionX = *t.OriginalX
				t.OriginalX = nil
			}
			if t.OriginalY != nil {
				t.PositionY = *t.OriginalY
				t.OriginalY = nil
			}

			if err := s.Repo.Save(tx, t); err != nil {
				return err
			}
		}
		return nil
	})
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
