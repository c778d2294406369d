package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/witherings/PocePao-sub001/internal/entity"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db}
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int) (*entity.Order, error) {
	orderQuery := `SELECT id, customer_name, phone, email, address, note, total, status, idempotent_key, created_at FROM orders WHERE id = ?`
	lineQuery := `SELECT line_id, menu_item_id, name, name_de, price, image, quantity, size, customization FROM order_lines WHERE order_id = ?`

	order := &entity.Order{}
	err := r.db.QueryRowContext(ctx, orderQuery, id).Scan(&order.ID, &order.CustomerName, &order.Phone, &order.Email, &order.Address, &order.Note, &order.Total, &order.Status, &order.IdempotentKey, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, lineQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line entity.CartLine
		var customization string
		err := rows.Scan(&line.ID, &line.MenuItemID, &line.Name, &line.NameDE, &line.Price, &line.Image, &line.Quantity, &line.Size, &customization)
		if err != nil {
			return nil, err
		}
		if customization != "" {
			sel := &entity.BowlSelection{}
			if err := json.Unmarshal([]byte(customization), sel); err == nil {
				line.Customization = sel
			}
		}
		order.Lines = append(order.Lines, line)
	}

	return order, nil
}

func (r *OrderRepository) GetOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order

	query := `SELECT id, customer_name, phone, email, address, note, total, status, idempotent_key, created_at FROM orders ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var order entity.Order
		err := rows.Scan(&order.ID, &order.CustomerName, &order.Phone, &order.Email, &order.Address, &order.Note, &order.Total, &order.Status, &order.IdempotentKey, &order.CreatedAt)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	// Start a transaction
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	// Insert order
	orderQuery := `INSERT INTO orders (customer_name, phone, email, address, note, total, status, idempotent_key) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, orderQuery, order.CustomerName, order.Phone, order.Email, order.Address, order.Note, order.Total, order.Status, order.IdempotentKey)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	// Insert order lines with batch
	lineQuery := `
		INSERT INTO order_lines (order_id, line_id, menu_item_id, name, name_de, price, image, quantity, size, customization)
		VALUES `

	// Build the query
	var values []interface{}
	for _, line := range order.Lines {
		customization := ""
		if line.Customization != nil {
			raw, err := json.Marshal(line.Customization)
			if err != nil {
				tx.Rollback()
				return nil, err
			}
			customization = string(raw)
		}
		lineQuery += "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?),"
		values = append(values, orderID, line.ID, line.MenuItemID, line.Name, line.NameDE, line.Price, line.Image, line.Quantity, line.Size, customization)
	}

	// Remove the trailing comma
	lineQuery = lineQuery[:len(lineQuery)-1]

	// Execute the query batch insert
	_, err = tx.ExecContext(ctx, lineQuery, values...)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	// Commit the transaction
	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	order.ID = int(orderID)
	return order, nil
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id int, status string) error {
	query := `UPDATE orders SET status = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *OrderRepository) DeleteOrder(ctx context.Context, id int) error {
	// Start a transaction
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	lineQuery := `DELETE FROM order_lines WHERE order_id = ?`
	_, err = tx.ExecContext(ctx, lineQuery, id)
	if err != nil {
		tx.Rollback()
		return err
	}

	orderQuery := `DELETE FROM orders WHERE id = ?`
	_, err = tx.ExecContext(ctx, orderQuery, id)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
