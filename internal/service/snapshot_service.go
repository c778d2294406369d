package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/witherings/PocePao-sub001/internal/entity"
	"github.com/witherings/PocePao-sub001/internal/repository"
)

// SnapshotService captures and restores the editable catalog state: menu
// items, ingredients and content blocks.
type SnapshotService struct {
	snapshotRepo   repository.SnapshotRepository
	menuRepo       repository.MenuRepository
	ingredientRepo repository.IngredientRepository
	contentRepo    repository.ContentRepository
	catalogSvc     *CatalogService
}

// NewSnapshotService creates a new instance of SnapshotService.
func NewSnapshotService(snapshotRepo repository.SnapshotRepository, menuRepo repository.MenuRepository, ingredientRepo repository.IngredientRepository, contentRepo repository.ContentRepository, catalogSvc *CatalogService) *SnapshotService {
	return &SnapshotService{
		snapshotRepo:   snapshotRepo,
		menuRepo:       menuRepo,
		ingredientRepo: ingredientRepo,
		contentRepo:    contentRepo,
		catalogSvc:     catalogSvc,
	}
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, label string) (*entity.Snapshot, error) {
	items, err := s.menuRepo.GetMenuItems(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error reading menu items for snapshot")
		return nil, err
	}

	ingredients, err := s.ingredientRepo.GetIngredients(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error reading ingredients for snapshot")
		return nil, err
	}

	blocks, err := s.contentRepo.GetBlocks(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error reading content blocks for snapshot")
		return nil, err
	}

	doc := entity.SnapshotDocument{
		MenuItems:     items,
		Ingredients:   ingredients,
		ContentBlocks: blocks,
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	snap := &entity.Snapshot{
		ID:       uuid.NewString(),
		Label:    label,
		Document: string(raw),
	}

	created, err := s.snapshotRepo.CreateSnapshot(ctx, snap)
	if err != nil {
		logger.Error().Err(err).Msg("Error storing snapshot")
		return nil, err
	}

	return created, nil
}

func (s *SnapshotService) GetSnapshots(ctx context.Context) ([]entity.Snapshot, error) {
	snapshots, err := s.snapshotRepo.GetSnapshots(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting snapshots")
		return nil, err
	}
	return snapshots, nil
}

// RestoreSnapshot replaces the catalog tables with the snapshot contents and
// drops the ingredient cache so the next read sees the restored state.
func (s *SnapshotService) RestoreSnapshot(ctx context.Context, id string) error {
	snap, err := s.snapshotRepo.GetSnapshotByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting snapshot %s", id)
		return err
	}

	var doc entity.SnapshotDocument
	if err := json.Unmarshal([]byte(snap.Document), &doc); err != nil {
		logger.Error().Err(err).Msgf("Error unmarshalling snapshot %s", id)
		return err
	}

	if err := s.snapshotRepo.RestoreDocument(ctx, doc); err != nil {
		logger.Error().Err(err).Msgf("Error restoring snapshot %s", id)
		return err
	}

	s.catalogSvc.InvalidateIngredientCache(ctx)
	return nil
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	err := s.snapshotRepo.DeleteSnapshot(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting snapshot %s", id)
	}
	return err
}
