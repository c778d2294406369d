package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/witherings/PocePao-sub001/internal/cart"
	"github.com/witherings/PocePao-sub001/internal/entity"
	"github.com/witherings/PocePao-sub001/internal/pricing"
)

// CartView is what every cart endpoint answers with: the full line list and
// the formatted running total.
type CartView struct {
	Items []entity.CartLine `json:"items"`
	Total string            `json:"total"`
}

// CartService keeps one cart store per session, persisted wholesale to redis
// under cart:<session> after every mutation. A missing or malformed stored
// payload yields an empty cart, never an error.
type CartService struct {
	rdb *redis.Client
}

// NewCartService creates a new instance of CartService.
func NewCartService(rdb *redis.Client) *CartService {
	return &CartService{rdb: rdb}
}

func (s *CartService) GetCart(ctx context.Context, session string) (*CartView, error) {
	store := s.load(ctx, session)
	return view(store), nil
}

func (s *CartService) AddItem(ctx context.Context, session string, line entity.CartLine) (*CartView, error) {
	store := s.load(ctx, session)
	store.AddItem(line)
	s.persist(ctx, session, store)
	return view(store), nil
}

func (s *CartService) RemoveItem(ctx context.Context, session, id string) (*CartView, error) {
	store := s.load(ctx, session)
	store.RemoveItem(id)
	s.persist(ctx, session, store)
	return view(store), nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, session, id string, quantity int) (*CartView, error) {
	store := s.load(ctx, session)
	store.UpdateQuantity(id, quantity)
	s.persist(ctx, session, store)
	return view(store), nil
}

func (s *CartService) UpdateItem(ctx context.Context, session, id string, update entity.CartUpdate) (*CartView, error) {
	store := s.load(ctx, session)
	store.UpdateItem(id, update)
	s.persist(ctx, session, store)
	return view(store), nil
}

func (s *CartService) ClearCart(ctx context.Context, session string) (*CartView, error) {
	store := s.load(ctx, session)
	store.Clear()
	s.persist(ctx, session, store)
	return view(store), nil
}

func (s *CartService) load(ctx context.Context, session string) *cart.Store {
	raw, err := s.rdb.Get(ctx, cartKey(session)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Msgf("Error loading cart for session %s", session)
		}
		return cart.New()
	}

	var lines []entity.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		logger.Warn().Err(err).Msgf("Discarding malformed cart for session %s", session)
		return cart.New()
	}

	return cart.New(lines...)
}

// persist writes the full line list back. Write failures only log: reads
// always serve the in-memory state, so a storage hiccup never blocks the
// customer.
func (s *CartService) persist(ctx context.Context, session string, store *cart.Store) {
	raw, err := json.Marshal(store.Items())
	if err != nil {
		logger.Error().Err(err).Msgf("Error marshalling cart for session %s", session)
		return
	}

	if err := s.rdb.Set(ctx, cartKey(session), raw, 0).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error persisting cart for session %s", session)
	}
}

func cartKey(session string) string {
	return fmt.Sprintf("cart:%s", session)
}

func view(store *cart.Store) *CartView {
	items := store.Items()
	if items == nil {
		items = []entity.CartLine{}
	}
	return &CartView{
		Items: items,
		Total: pricing.FormatPrice(store.Total()),
	}
}
