package worker

// Processes receipt jobs from QueueReceipt: loads the committed sale,
// renders a PDF receipt, and hands delivery off to the email queue.

import (
	"context"
	"encoding/json"
	"fmt"

	"shopstock/internal/infra"
	"shopstock/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReceiptJobPayload is the job envelope sent to QueueReceipt.
type ReceiptJobPayload struct {
	SaleID        string `json:"sale_id"`
	CustomerEmail string `json:"customer_email"`
}

type ReceiptWorker struct {
	saleRepo       repository.SaleRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
}

func NewReceiptWorker(saleRepo repository.SaleRepository, dispatcher *Dispatcher, pdfStoragePath string) *ReceiptWorker {
	return &ReceiptWorker{
		saleRepo:       saleRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process renders the receipt PDF and enqueues the email job.
func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReceiptJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("receipt_worker: invalid payload: %w", err)
	}

	saleID, err := uuid.Parse(payload.SaleID)
	if err != nil {
		return fmt.Errorf("receipt_worker: invalid sale id %q: %w", payload.SaleID, err)
	}
	sale, err := w.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return fmt.Errorf("receipt_worker: load sale %s: %w", payload.SaleID, err)
	}

	pdfPath, err := infra.GenerateReceiptPDF(sale, w.pdfStoragePath)
	if err != nil {
		return fmt.Errorf("receipt_worker: render pdf: %w", err)
	}

	emailJob := EmailJobPayload{
		ToEmail: payload.CustomerEmail,
		Subject: "Your purchase receipt",
		Body:    fmt.Sprintf("Thank you for your purchase. Your receipt for sale %s is attached.", shortID(saleID)),
		PDFPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
		return fmt.Errorf("receipt_worker: enqueue email: %w", err)
	}

	log.Info().Str("sale_id", payload.SaleID).Str("pdf", pdfPath).Msg("receipt generated")
	return nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
