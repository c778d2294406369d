package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/witherings/PocePao-sub001/internal/entity"
	"github.com/witherings/PocePao-sub001/internal/repository"
)

type ReservationService struct {
	reservationRepo repository.ReservationRepository
	kafkaWriter     *kafka.Writer
}

// NewReservationService creates a new instance of ReservationService.
func NewReservationService(reservationRepo repository.ReservationRepository, kafkaWriter *kafka.Writer) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		kafkaWriter:     kafkaWriter,
	}
}

func (s *ReservationService) CreateReservation(ctx context.Context, res *entity.Reservation) (*entity.Reservation, error) {
	if err := validateReservation(res); err != nil {
		return nil, err
	}

	res.Code = uuid.NewString()
	res.Status = "pending"

	created, err := s.reservationRepo.CreateReservation(ctx, res)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating reservation")
		return nil, err
	}

	if os.Getenv("ENV") == "test" {
		return created, nil
	}
	err = s.publishReservationEvent(ctx, created, "created")
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *ReservationService) GetReservations(ctx context.Context) ([]entity.Reservation, error) {
	reservations, err := s.reservationRepo.GetReservations(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting reservations")
		return nil, err
	}
	return reservations, nil
}

func (s *ReservationService) UpdateReservationStatus(ctx context.Context, id int, status string) (*entity.Reservation, error) {
	err := s.reservationRepo.UpdateReservationStatus(ctx, id, status)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating status for reservation %d", id)
		return nil, err
	}

	return s.reservationRepo.GetReservationByID(ctx, id)
}

func (s *ReservationService) DeleteReservation(ctx context.Context, id int) error {
	err := s.reservationRepo.DeleteReservation(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting reservation %d", id)
	}
	return err
}

func (s *ReservationService) publishReservationEvent(ctx context.Context, res *entity.Reservation, key string) error {
	resJSON, err := json.Marshal(res)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("reservation-%s-%d", key, res.ID)),
		Value: resJSON,
	}

	err = s.kafkaWriter.WriteMessages(ctx, msg)
	if err != nil {
		return err
	}

	return nil
}

func validateReservation(res *entity.Reservation) error {
	if strings.TrimSpace(res.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(res.Phone) == "" && strings.TrimSpace(res.Email) == "" {
		return errors.New("phone or email is required")
	}
	if res.Date == "" || res.Time == "" {
		return errors.New("date and time are required")
	}
	if res.Guests <= 0 {
		return errors.New("guests must be at least 1")
	}
	return nil
}
