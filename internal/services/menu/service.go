package menu

import (
	"context"
	"fmt"

	"food-order-system/internal/database"
	"food-order-system/internal/logger"
	"food-order-system/internal/models"
)

// Service implements the menu catalog accessor
type Service struct {
	db     *database.DB
	logger *logger.Logger
}

// NewService creates a new menu service
func NewService(db *database.DB, log *logger.Logger) *Service {
	return &Service{
		db:     db,
		logger: log,
	}
}

// List returns the whole catalog sorted by name ascending
func (s *Service) List(ctx context.Context, requestID string) ([]models.MenuItem, error) {
	rows, err := s.db.Query(ctx, database.ListMenuItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	items := make([]models.MenuItem, 0)
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}

	return items, nil
}

// Create inserts one catalog entry and returns it
func (s *Service) Create(ctx context.Context, req *models.CreateMenuItemRequest, requestID string) (*models.MenuItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item := models.MenuItem{
		Name:  req.Name,
		Price: req.Price,
	}
	err := s.db.QueryRow(ctx, database.InsertMenuItemSQL, req.Name, req.Price).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert menu item: %w", err)
	}

	s.logger.Debug("menu_item_created", "Menu item created", requestID, map[string]interface{}{
		"menu_item_id": item.ID,
		"name":         item.Name,
	})

	return &item, nil
}
