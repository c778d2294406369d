package repository

import (
	"context"
	"database/sql"

	"github.com/witherings/PocePao-sub001/internal/entity"
)

type ReservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db}
}

func (r *ReservationRepository) CreateReservation(ctx context.Context, res *entity.Reservation) (*entity.Reservation, error) {
	query := `INSERT INTO reservations (code, name, phone, email, date, time, guests, note, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query, res.Code, res.Name, res.Phone, res.Email, res.Date, res.Time, res.Guests, res.Note, res.Status)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	res.ID = int(id)
	return res, nil
}

func (r *ReservationRepository) GetReservations(ctx context.Context) ([]entity.Reservation, error) {
	var reservations []entity.Reservation

	query := `SELECT id, code, name, phone, email, date, time, guests, note, status, created_at FROM reservations ORDER BY date, time`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var res entity.Reservation
		err := rows.Scan(&res.ID, &res.Code, &res.Name, &res.Phone, &res.Email, &res.Date, &res.Time, &res.Guests, &res.Note, &res.Status, &res.CreatedAt)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}

	return reservations, nil
}

func (r *ReservationRepository) GetReservationByID(ctx context.Context, id int) (*entity.Reservation, error) {
	res := &entity.Reservation{}

	query := `SELECT id, code, name, phone, email, date, time, guests, note, status, created_at FROM reservations WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&res.ID, &res.Code, &res.Name, &res.Phone, &res.Email, &res.Date, &res.Time, &res.Guests, &res.Note, &res.Status, &res.CreatedAt)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *ReservationRepository) UpdateReservationStatus(ctx context.Context, id int, status string) error {
	query := `UPDATE reservations SET status = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *ReservationRepository) DeleteReservation(ctx context.Context, id int) error {
	query := `DELETE FROM reservations WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return nil
}
