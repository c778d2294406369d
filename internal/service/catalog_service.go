package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/witherings/PocePao-sub001/internal/entity"
	"github.com/witherings/PocePao-sub001/internal/pricing"
	"github.com/witherings/PocePao-sub001/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const ingredientCacheKey = "ingredients:catalog"

// CatalogService serves the menu and the ingredient catalog, and answers the
// bowl pricing questions against the cached catalog.
type CatalogService struct {
	menuRepo       repository.MenuRepository
	ingredientRepo repository.IngredientRepository
	rdb            *redis.Client
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(menuRepo repository.MenuRepository, ingredientRepo repository.IngredientRepository, rdb *redis.Client) *CatalogService {
	return &CatalogService{
		menuRepo:       menuRepo,
		ingredientRepo: ingredientRepo,
		rdb:            rdb,
	}
}

func (s *CatalogService) GetMenuItems(ctx context.Context) ([]entity.MenuItem, error) {
	items, err := s.menuRepo.GetMenuItems(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting menu items")
		return nil, err
	}
	return items, nil
}

func (s *CatalogService) GetMenuItemByID(ctx context.Context, id int) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetMenuItemByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting menu item %d", id)
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error) {
	created, err := s.menuRepo.CreateMenuItem(ctx, item)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating menu item")
		return nil, err
	}
	return created, nil
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error) {
	updated, err := s.menuRepo.UpdateMenuItem(ctx, item)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating menu item %d", item.ID)
		return nil, err
	}
	return updated, nil
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, id int) error {
	err := s.menuRepo.DeleteMenuItem(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting menu item %d", id)
	}
	return err
}

// GetIngredients serves the ingredient catalog from cache, falling back to
// the database and refilling the cache on a miss.
func (s *CatalogService) GetIngredients(ctx context.Context) ([]entity.Ingredient, error) {
	cached, err := s.rdb.Get(ctx, ingredientCacheKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Warn().Msg("Ingredient catalog not found in cache")
		} else {
			logger.Error().Err(err).Msg("Error getting ingredient catalog from cache")
		}
	}

	if cached != "" {
		var ingredients []entity.Ingredient
		if err := json.Unmarshal([]byte(cached), &ingredients); err != nil {
			logger.Error().Err(err).Msg("Error unmarshalling cached ingredient catalog")
		} else {
			return ingredients, nil
		}
	}

	ingredients, err := s.ingredientRepo.GetIngredients(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting ingredients")
		return nil, err
	}

	raw, err := json.Marshal(ingredients)
	if err == nil {
		if err := s.rdb.Set(ctx, ingredientCacheKey, raw, 1*time.Minute).Err(); err != nil {
			logger.Error().Err(err).Msg("Error setting ingredient catalog in cache")
		}
	}

	return ingredients, nil
}

func (s *CatalogService) CreateIngredient(ctx context.Context, ing *entity.Ingredient) (*entity.Ingredient, error) {
	created, err := s.ingredientRepo.CreateIngredient(ctx, ing)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating ingredient")
		return nil, err
	}
	s.InvalidateIngredientCache(ctx)
	return created, nil
}

func (s *CatalogService) UpdateIngredient(ctx context.Context, ing *entity.Ingredient) (*entity.Ingredient, error) {
	updated, err := s.ingredientRepo.UpdateIngredient(ctx, ing)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating ingredient %d", ing.ID)
		return nil, err
	}
	s.InvalidateIngredientCache(ctx)
	return updated, nil
}

func (s *CatalogService) DeleteIngredient(ctx context.Context, id int) error {
	err := s.ingredientRepo.DeleteIngredient(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting ingredient %d", id)
		return err
	}
	s.InvalidateIngredientCache(ctx)
	return nil
}

// InvalidateIngredientCache drops the cached catalog after admin edits.
func (s *CatalogService) InvalidateIngredientCache(ctx context.Context) {
	if err := s.rdb.Del(ctx, ingredientCacheKey).Err(); err != nil {
		logger.Error().Err(err).Msg("Error invalidating ingredient cache")
	}
}

// PreWarmCache loads the ingredient catalog into the cache at startup.
func (s *CatalogService) PreWarmCache(ctx context.Context) error {
	ingredients, err := s.ingredientRepo.GetIngredients(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting ingredients")
		return err
	}

	raw, err := json.Marshal(ingredients)
	if err != nil {
		return err
	}

	err = s.rdb.Set(ctx, ingredientCacheKey, raw, 1*time.Minute).Err()
	if err != nil {
		logger.Error().Err(err).Msg("Error pre-warming ingredient cache")
	}
	return err
}

// PriceBowl prices one custom bowl configuration against the current catalog.
func (s *CatalogService) PriceBowl(ctx context.Context, sel entity.BowlSelection, size string) (*entity.PriceBreakdown, error) {
	catalog, err := s.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := pricing.ComputeBowlPrice(sel, size, catalog)
	return &breakdown, nil
}

// StartingPrices reports the cheapest available protein per size tier.
func (s *CatalogService) StartingPrices(ctx context.Context) (*entity.ProteinMinimums, error) {
	catalog, err := s.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}

	minimums := pricing.MinProteinPrices(catalog)
	return &minimums, nil
}
