package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/segmentio/kafka-go"

	"github.com/witherings/PocePao-sub001/internal/cart"
	"github.com/witherings/PocePao-sub001/internal/entity"
	"github.com/witherings/PocePao-sub001/internal/pricing"
	"github.com/witherings/PocePao-sub001/internal/repository"
)

// OrderService is a service that provides order-related operations
type OrderService struct {
	orderRepo   repository.OrderRepository
	kafkaWriter *kafka.Writer
	rdb         *redis.Client
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(orderRepo repository.OrderRepository, kafkaWriter *kafka.Writer, rdb *redis.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		kafkaWriter: kafkaWriter,
		rdb:         rdb,
	}
}

// CreateOrder persists a checkout submission. The client submits its
// aggregated cart lines wholesale; the total is recomputed server-side from
// the submitted lines so a tampered total never reaches the database.
func (s *OrderService) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	if len(order.Lines) == 0 {
		return nil, errors.New("order has no lines")
	}

	validate, err := s.validateIdempotentKey(ctx, order.IdempotentKey)
	if err != nil {
		return nil, err
	}

	if !validate {
		return nil, errors.New("idempotent key already exists")
	}

	order.Total = pricing.FormatPrice(cart.New(order.Lines...).Total())
	order.Status = "created"

	createdOrder, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating order")
		return nil, err
	}

	// if env is set to test, return
	if os.Getenv("ENV") == "test" {
		return createdOrder, nil
	}
	err = s.publishOrderEvent(ctx, createdOrder, "created")
	if err != nil {
		return nil, err
	}

	return createdOrder, nil
}

func (s *OrderService) GetOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.orderRepo.GetOrders(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting orders")
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id int) (*entity.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting order by ID %d", id)
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus moves an order through its lifecycle
// (created -> confirmed/cancelled).
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id int, status string) (*entity.Order, error) {
	err := s.orderRepo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating status for order %d", id)
		return nil, err
	}

	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting order by ID %d", id)
		return nil, err
	}

	if os.Getenv("ENV") == "test" {
		return order, nil
	}
	err = s.publishOrderEvent(ctx, order, status)
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) publishOrderEvent(ctx context.Context, order *entity.Order, key string) error {
	orderJSON, err := json.Marshal(order)
	if err != nil {
		return err
	}

	// order-created-1 or order-cancelled-1
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-%s-%d", key, order.ID)),
		Value: orderJSON,
	}

	err = s.kafkaWriter.WriteMessages(ctx, msg)
	if err != nil {
		return err
	}

	return nil
}

func (s *OrderService) validateIdempotentKey(ctx context.Context, key string) (bool, error) {
	// if env is set to test, return true
	if os.Getenv("ENV") == "test" {
		return true, nil
	}
	// check if the key exists in the redis cache
	// if it exists, return false
	redisKey := fmt.Sprintf("idempotent-key:%s", key)
	val, err := s.rdb.Get(ctx, redisKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}

	if val != "" {
		return false, errors.New("idempotent key already exists")
	}

	// if it doesn't exist, add the key to the cache with a TTL of 24 hours
	// and return true
	err = s.rdb.Set(ctx, redisKey, "exists", 24*time.Hour).Err()

	return true, err
}
