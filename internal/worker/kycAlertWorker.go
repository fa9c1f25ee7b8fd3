package worker

import (
	"encoding/json"
	"log"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/educhain/educhain-api/internal/handler"
	"github.com/educhain/educhain-api/internal/stream"
)

// KycAlertWorker notifies the review team whenever KYC evidence lands, so
// submissions do not sit in pending.
func (wk *Worker) KycAlertWorker() {
	consumer, err := wk.KafkaStream.CreateConsumer(&stream.StreamConsumer{
		GroupId: kycAlertGroupID,
		Topic:   KycSubmittedTopic,
	})

	if err != nil {
		log.Fatalf("Error creating consumer: %v", err)
	}

	for {
		event := consumer.Poll(100) // Poll every 100ms
		switch e := event.(type) {
		case *kafka.Message:
			if wk.ReviewEmail == "" {
				continue
			}

			var submission handler.KycEvent
			if err := json.Unmarshal(e.Value, &submission); err != nil {
				log.Printf("Error decoding KYC event: %v", err)
				continue
			}

			data := map[string]any{
				"DocumentID": submission.DocumentID,
				"StudentID":  submission.StudentID,
				"Status":     submission.Status,
			}

			err := wk.Mailer.Send(wk.ReviewEmail, data, "kyc-submitted-alert.tmpl")
			if err != nil {
				log.Printf("Error sending KYC review alert: %v", err)
			}
		case kafka.Error:
			log.Printf("Error: %v\n", e)
		default:
			// Handle other events if needed
		}
	}
}
