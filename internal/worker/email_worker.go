package worker

// email_worker.go
// Processes order confirmation jobs from QueueEmail: renders the PDF receipt
// and sends it to the customer through the SMTP circuit breaker.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lr4302179-jpg/backend-elchicho/internal/infra"
	"github.com/lr4302179-jpg/backend-elchicho/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// OrderEmailPayload is the job envelope sent to QueueEmail.
type OrderEmailPayload struct {
	OrderNumber string           `json:"order_number"`
	ToEmail     string           `json:"to_email"`
	ClientName  string           `json:"client_name"`
	Items       []model.CartItem `json:"items"`
	Total       decimal.Decimal  `json:"total"`
	CreatedAt   time.Time        `json:"created_at"`
}

// EmailWorker sends order confirmations with a PDF receipt attached.
type EmailWorker struct {
	mailer      *infra.Mailer
	breaker     *infra.CircuitBreaker
	storagePath string
}

func NewEmailWorker(mailer *infra.Mailer, breaker *infra.CircuitBreaker, storagePath string) *EmailWorker {
	return &EmailWorker{mailer: mailer, breaker: breaker, storagePath: storagePath}
}

// Process renders the receipt and sends the email. A returned error signals
// the pool to retry (and eventually dead-letter) the job.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload OrderEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload — discarding")
		return nil
	}
	if payload.ToEmail == "" {
		log.Warn().Str("order", payload.OrderNumber).Msg("email_worker: empty to_email — skipping")
		return nil
	}

	pdfPath, err := infra.GenerateReceiptPDF(payload.OrderNumber, payload.Items, payload.Total, payload.CreatedAt, w.storagePath)
	if err != nil {
		// Send without attachment rather than dropping the confirmation.
		log.Error().Err(err).Str("order", payload.OrderNumber).Msg("email_worker: receipt generation failed")
		pdfPath = ""
	}

	subject := fmt.Sprintf("El Chicho Shop — order %s confirmed", payload.OrderNumber)
	body := fmt.Sprintf("Hi %s,\n\nyour order %s for $%s has been received and is pending processing.\n\nThank you for shopping with us.",
		payload.ClientName, payload.OrderNumber, payload.Total.StringFixed(2))

	err = w.breaker.Execute(func() error {
		return w.mailer.SendReceipt(payload.ToEmail, subject, body, pdfPath)
	})
	if err != nil {
		return fmt.Errorf("email_worker: send to %s: %w", payload.ToEmail, err)
	}

	log.Info().Str("to", payload.ToEmail).Str("order", payload.OrderNumber).Msg("email_worker: confirmation sent")
	return nil
}
