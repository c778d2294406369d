package repository

import (
	"context"
	"database/sql"

	"github.com/witherings/PocePao-sub001/internal/entity"
)

type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{db}
}

func (r *MenuRepository) GetMenuItems(ctx context.Context) ([]entity.MenuItem, error) {
	var items []entity.MenuItem

	query := `SELECT id, name, name_de, description, price, price_small, price_standard, category, image, available FROM menu_items ORDER BY category, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.MenuItem
		err := rows.Scan(&item.ID, &item.Name, &item.NameDE, &item.Description, &item.Price, &item.PriceSmall, &item.PriceStandard, &item.Category, &item.Image, &item.Available)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *MenuRepository) GetMenuItemByID(ctx context.Context, id int) (*entity.MenuItem, error) {
	item := &entity.MenuItem{}

	query := `SELECT id, name, name_de, description, price, price_small, price_standard, category, image, available FROM menu_items WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.NameDE, &item.Description, &item.Price, &item.PriceSmall, &item.PriceStandard, &item.Category, &item.Image, &item.Available)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *MenuRepository) CreateMenuItem(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error) {
	query := `INSERT INTO menu_items (name, name_de, description, price, price_small, price_standard, category, image, available) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, item.Name, item.NameDE, item.Description, item.Price, item.PriceSmall, item.PriceStandard, item.Category, item.Image, item.Available)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	item.ID = int(id)
	return item, nil
}

func (r *MenuRepository) UpdateMenuItem(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error) {
	query := `UPDATE menu_items SET name = ?, name_de = ?, description = ?, price = ?, price_small = ?, price_standard = ?, category = ?, image = ?, available = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, item.Name, item.NameDE, item.Description, item.Price, item.PriceSmall, item.PriceStandard, item.Category, item.Image, item.Available, item.ID)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *MenuRepository) DeleteMenuItem(ctx context.Context, id int) error {
	query := `DELETE FROM menu_items WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return nil
}
