package repository

import (
	"context"
	"database/sql"

	"github.com/witherings/PocePao-sub001/internal/entity"
)

type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db}
}

func (r *SnapshotRepository) CreateSnapshot(ctx context.Context, snap *entity.Snapshot) (*entity.Snapshot, error) {
	query := `INSERT INTO snapshots (id, label, document) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, snap.ID, snap.Label, snap.Document)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// GetSnapshots lists snapshot metadata without the documents themselves.
func (r *SnapshotRepository) GetSnapshots(ctx context.Context) ([]entity.Snapshot, error) {
	var snapshots []entity.Snapshot

	query := `SELECT id, label, created_at FROM snapshots ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var snap entity.Snapshot
		err := rows.Scan(&snap.ID, &snap.Label, &snap.CreatedAt)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}

	return snapshots, nil
}

func (r *SnapshotRepository) GetSnapshotByID(ctx context.Context, id string) (*entity.Snapshot, error) {
	snap := &entity.Snapshot{}

	query := `SELECT id, label, document, created_at FROM snapshots WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&snap.ID, &snap.Label, &snap.Document, &snap.CreatedAt)
	if err != nil {
		return nil, err
	}

	return snap, nil
}

func (r *SnapshotRepository) DeleteSnapshot(ctx context.Context, id string) error {
	query := `DELETE FROM snapshots WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return nil
}

// RestoreDocument replaces the menu, ingredient and content tables with the
// snapshot contents inside one transaction, keeping the original row ids so
// existing cart lines and bowl selections stay valid.
func (r *SnapshotRepository) RestoreDocument(ctx context.Context, doc entity.SnapshotDocument) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, table := range []string{"menu_items", "ingredients", "content_blocks"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			tx.Rollback()
			return err
		}
	}

	itemQuery := `INSERT INTO menu_items (id, name, name_de, description, price, price_small, price_standard, category, image, available) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, item := range doc.MenuItems {
		_, err := tx.ExecContext(ctx, itemQuery, item.ID, item.Name, item.NameDE, item.Description, item.Price, item.PriceSmall, item.PriceStandard, item.Category, item.Image, item.Available)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	ingredientQuery := `INSERT INTO ingredients (id, name, name_de, type, price, price_small, price_standard, extra_price, available) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, ing := range doc.Ingredients {
		_, err := tx.ExecContext(ctx, ingredientQuery, ing.ID, ing.Name, ing.NameDE, ing.Type, ing.Price, ing.PriceSmall, ing.PriceStandard, ing.ExtraPrice, ing.Available)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	blockQuery := `INSERT INTO content_blocks (id, slug, title, body, body_de) VALUES (?, ?, ?, ?, ?)`
	for _, block := range doc.ContentBlocks {
		_, err := tx.ExecContext(ctx, blockQuery, block.ID, block.Slug, block.Title, block.Body, block.BodyDE)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
