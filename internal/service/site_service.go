package service

import (
	"context"

	"github.com/witherings/PocePao-sub001/internal/entity"
	"github.com/witherings/PocePao-sub001/internal/repository"
)

// SiteService covers the gallery and the admin-editable content blocks.
type SiteService struct {
	galleryRepo repository.GalleryRepository
	contentRepo repository.ContentRepository
}

// NewSiteService creates a new instance of SiteService.
func NewSiteService(galleryRepo repository.GalleryRepository, contentRepo repository.ContentRepository) *SiteService {
	return &SiteService{
		galleryRepo: galleryRepo,
		contentRepo: contentRepo,
	}
}

func (s *SiteService) GetGallery(ctx context.Context) ([]entity.GalleryImage, error) {
	images, err := s.galleryRepo.GetImages(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting gallery images")
		return nil, err
	}
	return images, nil
}

func (s *SiteService) CreateGalleryImage(ctx context.Context, img *entity.GalleryImage) (*entity.GalleryImage, error) {
	created, err := s.galleryRepo.CreateImage(ctx, img)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating gallery image")
		return nil, err
	}
	return created, nil
}

func (s *SiteService) UpdateGalleryImage(ctx context.Context, img *entity.GalleryImage) (*entity.GalleryImage, error) {
	updated, err := s.galleryRepo.UpdateImage(ctx, img)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating gallery image %d", img.ID)
		return nil, err
	}
	return updated, nil
}

func (s *SiteService) DeleteGalleryImage(ctx context.Context, id int) error {
	err := s.galleryRepo.DeleteImage(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting gallery image %d", id)
	}
	return err
}

func (s *SiteService) GetContentBlocks(ctx context.Context) ([]entity.ContentBlock, error) {
	blocks, err := s.contentRepo.GetBlocks(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting content blocks")
		return nil, err
	}
	return blocks, nil
}

func (s *SiteService) GetContentBlock(ctx context.Context, slug string) (*entity.ContentBlock, error) {
	block, err := s.contentRepo.GetBlockBySlug(ctx, slug)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting content block %s", slug)
		return nil, err
	}
	return block, nil
}

func (s *SiteService) UpsertContentBlock(ctx context.Context, block *entity.ContentBlock) (*entity.ContentBlock, error) {
	saved, err := s.contentRepo.UpsertBlock(ctx, block)
	if err != nil {
		logger.Error().Err(err).Msgf("Error saving content block %s", block.Slug)
		return nil, err
	}
	return saved, nil
}

func (s *SiteService) DeleteContentBlock(ctx context.Context, slug string) error {
	err := s.contentRepo.DeleteBlock(ctx, slug)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting content block %s", slug)
	}
	return err
}
