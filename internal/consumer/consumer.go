package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/witherings/PocePao-sub001/internal/entity"
	"github.com/witherings/PocePao-sub001/internal/notifier"
)

// Consumer turns order and reservation events into Telegram notifications.
type Consumer struct {
	reader   *kafka.Reader
	telegram *notifier.Telegram
}

func NewConsumer(reader *kafka.Reader, telegram *notifier.Telegram) *Consumer {
	return &Consumer{reader: reader, telegram: telegram}
}

// Start reads events until the context is cancelled. Run it in a goroutine
// from main.
func (c *Consumer) Start(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error().Msgf("Error reading message: %v", err)
			continue
		}

		c.processMessage(ctx, msg)
	}
}

// processMessage routes one event by its key. Keys look like
// "order-created-12" or "reservation-created-7"; only freshly created
// entities notify the staff chat.
func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) {
	parts := strings.SplitN(string(msg.Key), "-", 3)
	if len(parts) < 2 {
		log.Error().Msgf("Unknown event key: %s", string(msg.Key))
		return
	}
	kind, event := parts[0], parts[1]

	if event != "created" {
		return
	}

	var text string
	switch kind {
	case "order":
		var order entity.Order
		if err := json.Unmarshal(msg.Value, &order); err != nil {
			log.Error().Msgf("Error unmarshalling order event: %v", err)
			return
		}
		text = formatOrder(order)
	case "reservation":
		var res entity.Reservation
		if err := json.Unmarshal(msg.Value, &res); err != nil {
			log.Error().Msgf("Error unmarshalling reservation event: %v", err)
			return
		}
		text = formatReservation(res)
	default:
		log.Error().Msgf("Unknown event kind: %s", kind)
		return
	}

	if err := c.telegram.Send(ctx, text); err != nil {
		log.Error().Msgf("Error sending telegram notification: %v", err)
	}
}

func formatOrder(order entity.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Neue Bestellung #%d von %s (%s)\n", order.ID, order.CustomerName, order.Phone)
	for _, line := range order.Lines {
		name := line.NameDE
		if name == "" {
			name = line.Name
		}
		fmt.Fprintf(&b, "%dx %s", line.Quantity, name)
		if line.Size != "" {
			fmt.Fprintf(&b, " (%s)", line.Size)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Gesamt: €%s", order.Total)
	return b.String()
}

func formatReservation(res entity.Reservation) string {
	return fmt.Sprintf("Neue Reservierung #%d: %s, %d Gäste am %s um %s (%s)",
		res.ID, res.Name, res.Guests, res.Date, res.Time, res.Phone)
}
