package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"tablebook/stats-svc/internal/domain"
)

type Consumer struct {
	Reader messageReader
	Store  StoreInterface
}

func NewConsumer(reader messageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads booking events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Stats Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Println("Stats consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.BookingEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.BookingEvent) {
	if event.RestaurantID == "" || event.Date == "" {
		log.Printf("Warning: skipping %s event for booking %s without restaurant or date", event.Type, event.BookingID)
		return
	}

	var err error
	switch event.Type {
	case domain.EventBookingCreated:
		err = c.Store.ApplyCreated(ctx, event)
	case domain.EventBookingStatusChanged:
		err = c.Store.ApplyStatusChange(ctx, event)
	default:
		return
	}
	if err != nil {
		log.Printf("Error applying %s for booking %s: %v", event.Type, event.BookingID, err)
		return
	}

	log.Printf("Processed %s: booking=%s restaurant=%s status=%s",
		event.Type, event.BookingID, event.RestaurantID, event.Status)
}
