package repository

import (
	"context"
	"database/sql"

	"github.com/witherings/PocePao-sub001/internal/entity"
)

type IngredientRepository struct {
	db *sql.DB
}

func NewIngredientRepository(db *sql.DB) *IngredientRepository {
	return &IngredientRepository{db}
}

func (r *IngredientRepository) GetIngredients(ctx context.Context) ([]entity.Ingredient, error) {
	var ingredients []entity.Ingredient

	query := `SELECT id, name, name_de, type, price, price_small, price_standard, extra_price, available FROM ingredients ORDER BY type, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ing entity.Ingredient
		err := rows.Scan(&ing.ID, &ing.Name, &ing.NameDE, &ing.Type, &ing.Price, &ing.PriceSmall, &ing.PriceStandard, &ing.ExtraPrice, &ing.Available)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}

	return ingredients, nil
}

func (r *IngredientRepository) GetIngredientByID(ctx context.Context, id int) (*entity.Ingredient, error) {
	ing := &entity.Ingredient{}

	query := `SELECT id, name, name_de, type, price, price_small, price_standard, extra_price, available FROM ingredients WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ing.ID, &ing.Name, &ing.NameDE, &ing.Type, &ing.Price, &ing.PriceSmall, &ing.PriceStandard, &ing.ExtraPrice, &ing.Available)
	if err != nil {
		return nil, err
	}

	return ing, nil
}

func (r *IngredientRepository) CreateIngredient(ctx context.Context, ing *entity.Ingredient) (*entity.Ingredient, error) {
	query := `INSERT INTO ingredients (name, name_de, type, price, price_small, price_standard, extra_price, available) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, ing.Name, ing.NameDE, ing.Type, ing.Price, ing.PriceSmall, ing.PriceStandard, ing.ExtraPrice, ing.Available)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	ing.ID = int(id)
	return ing, nil
}

func (r *IngredientRepository) UpdateIngredient(ctx context.Context, ing *entity.Ingredient) (*entity.Ingredient, error) {
	query := `UPDATE ingredients SET name = ?, name_de = ?, type = ?, price = ?, price_small = ?, price_standard = ?, extra_price = ?, available = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, ing.Name, ing.NameDE, ing.Type, ing.Price, ing.PriceSmall, ing.PriceStandard, ing.ExtraPrice, ing.Available, ing.ID)
	if err != nil {
		return nil, err
	}
	return ing, nil
}

func (r *IngredientRepository) DeleteIngredient(ctx context.Context, id int) error {
	query := `DELETE FROM ingredients WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return nil
}
