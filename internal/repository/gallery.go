package repository

import (
	"context"
	"database/sql"

	"github.com/witherings/PocePao-sub001/internal/entity"
)

type GalleryRepository struct {
	db *sql.DB
}

func NewGalleryRepository(db *sql.DB) *GalleryRepository {
	return &GalleryRepository{db}
}

func (r *GalleryRepository) GetImages(ctx context.Context) ([]entity.GalleryImage, error) {
	var images []entity.GalleryImage

	query := `SELECT id, title, url, position FROM gallery_images ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var img entity.GalleryImage
		err := rows.Scan(&img.ID, &img.Title, &img.URL, &img.Position)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	return images, nil
}

func (r *GalleryRepository) CreateImage(ctx context.Context, img *entity.GalleryImage) (*entity.GalleryImage, error) {
	query := `INSERT INTO gallery_images (title, url, position) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, img.Title, img.URL, img.Position)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	img.ID = int(id)
	return img, nil
}

func (r *GalleryRepository) UpdateImage(ctx context.Context, img *entity.GalleryImage) (*entity.GalleryImage, error) {
	query := `UPDATE gallery_images SET title = ?, url = ?, position = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, img.Title, img.URL, img.Position, img.ID)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (r *GalleryRepository) DeleteImage(ctx context.Context, id int) error {
	query := `DELETE FROM gallery_images WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return nil
}
