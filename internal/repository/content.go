package repository

import (
	"context"
	"database/sql"

	"github.com/witherings/PocePao-sub001/internal/entity"
)

type ContentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{db}
}

func (r *ContentRepository) GetBlocks(ctx context.Context) ([]entity.ContentBlock, error) {
	var blocks []entity.ContentBlock

	query := `SELECT id, slug, title, body, body_de FROM content_blocks ORDER BY slug`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var block entity.ContentBlock
		err := rows.Scan(&block.ID, &block.Slug, &block.Title, &block.Body, &block.BodyDE)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}

func (r *ContentRepository) GetBlockBySlug(ctx context.Context, slug string) (*entity.ContentBlock, error) {
	block := &entity.ContentBlock{}

	query := `SELECT id, slug, title, body, body_de FROM content_blocks WHERE slug = ?`
	err := r.db.QueryRowContext(ctx, query, slug).Scan(&block.ID, &block.Slug, &block.Title, &block.Body, &block.BodyDE)
	if err != nil {
		return nil, err
	}

	return block, nil
}

func (r *ContentRepository) UpsertBlock(ctx context.Context, block *entity.ContentBlock) (*entity.ContentBlock, error) {
	query := `
		INSERT INTO content_blocks (slug, title, body, body_de) VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE title = VALUES(title), body = VALUES(body), body_de = VALUES(body_de)`
	_, err := r.db.ExecContext(ctx, query, block.Slug, block.Title, block.Body, block.BodyDE)
	if err != nil {
		return nil, err
	}

	return r.GetBlockBySlug(ctx, block.Slug)
}

func (r *ContentRepository) DeleteBlock(ctx context.Context, slug string) error {
	query := `DELETE FROM content_blocks WHERE slug = ?`
	_, err := r.db.ExecContext(ctx, query, slug)
	if err != nil {
		return err
	}
	return nil
}
