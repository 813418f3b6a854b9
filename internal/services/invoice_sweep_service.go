package services

import (
	"context"
	"time"

	"github.com/propside/backoffice/internal/repositories"
	"github.com/propside/backoffice/internal/utils"
)

// InvoiceSweepService flips SENT invoices past their due date to OVERDUE.
// Scheduled nightly from main; the aging report reads the result.
type InvoiceSweepService struct {
	invoiceRepo repositories.InvoiceRepository

	now func() time.Time
}

func NewInvoiceSweepService(invoiceRepo repositories.InvoiceRepository) *InvoiceSweepService {
	return &InvoiceSweepService{invoiceRepo: invoiceRepo, now: time.Now}
}

func (s *InvoiceSweepService) Run(ctx context.Context) error {
	n, err := s.invoiceRepo.MarkOverdue(ctx, s.now().UTC())
	if err != nil {
		return err
	}
	if n > 0 {
		utils.Logger.Infof("invoice sweep: marked %d invoice(s) overdue", n)
	} else {
		utils.Logger.Debug("invoice sweep: nothing to mark overdue")
	}
	return nil
}
