package worker

import (
	"encoding/json"
	"log"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/educhain/educhain-api/internal/handler"
	"github.com/educhain/educhain-api/internal/stream"
)

// ReceiptWorker mails a receipt to the donor whenever a donation is
// confirmed. Donations without a donor email are anonymous; nothing to do.
func (wk *Worker) ReceiptWorker() {
	consumer, err := wk.KafkaStream.CreateConsumer(&stream.StreamConsumer{
		GroupId: donationReceiptGroupID,
		Topic:   DonationSucceededTopic,
	})

	if err != nil {
		log.Fatalf("Error creating consumer: %v", err)
	}

	for {
		event := consumer.Poll(100) // Poll every 100ms
		switch e := event.(type) {
		case *kafka.Message:
			var donation handler.DonationEvent
			if err := json.Unmarshal(e.Value, &donation); err != nil {
				log.Printf("Error decoding donation event: %v", err)
				continue
			}

			if donation.DonorEmail == "" {
				continue
			}

			if wk.sendReceipt(&donation) {
				log.Printf("Receipt sent for donation %s", donation.Reference)
			}
		case kafka.Error:
			log.Printf("Error: %v\n", e)
		default:
			// Handle other events if needed
		}
	}
}

func (wk *Worker) sendReceipt(donation *handler.DonationEvent) bool {
	data := map[string]any{
		"DonorName": donation.DonorName,
		"Amount":    donation.Amount,
		"Currency":  donation.Currency,
		"Reference": donation.Reference,
	}

	err := wk.Mailer.Send(donation.DonorEmail, data, "donation-receipt.tmpl")
	if err != nil {
		log.Printf("Error sending donation receipt: %v", err)
		return false
	}

	return true
}
