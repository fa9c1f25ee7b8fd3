package worker

import (
	"github.com/educhain/educhain-api/internal/smtp"
	"github.com/educhain/educhain-api/internal/stream"
)

type Worker struct {
	KafkaStream *stream.KafkaStream
	Mailer      smtp.MailerInterface

	// ReviewEmail receives the KYC review alerts; no alert is sent when it
	// is unset.
	ReviewEmail string
}

const (
	// donationReceiptGroupID is used for workers that act when a donation
	// has been confirmed by the payment gateway.
	donationReceiptGroupID = "donation-receipt-group"

	// kycAlertGroupID is used for workers that act when a student submits
	// or resubmits KYC evidence.
	kycAlertGroupID = "kyc-alert-group"

	// Topics
	// DonationSucceededTopic carries donations the gateway webhook has
	// moved to succeeded.
	DonationSucceededTopic = "donation.succeeded"

	// KycSubmittedTopic carries KYC documents awaiting review.
	KycSubmittedTopic = "kyc.submitted"
)

// Workers typically need the event stream and the mailer; anything
// worker-specific is passed as an argument to the worker itself.
func New(wk *Worker) *Worker {
	return &Worker{
		KafkaStream: wk.KafkaStream,
		Mailer:      wk.Mailer,
		ReviewEmail: wk.ReviewEmail,
	}
}
