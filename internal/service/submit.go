package service

import (
	"context"

	"github.com/tillcore/tillcore/internal/api/dto"
	"github.com/tillcore/tillcore/internal/domain/invoice"
	ierr "github.com/tillcore/tillcore/internal/errors"
	"github.com/tillcore/tillcore/internal/types"
)

// SubmitService finalizes an open invoice into a normalized persistence
// payload. It never calls the persistence boundary itself: the caller
// invokes the invoice.Repository port with the returned payload and owns
// retry/network-error handling and the actual stock decrement.
type SubmitService interface {
	// Validate runs a full recompute and returns every blocking field error.
	Validate(ctx context.Context, snap *Snapshot, inv *invoice.Invoice) FieldErrors

	// Submit validates, and on success marks the invoice submitted and
	// returns the rounded payload. On failure it returns a validation error
	// whose reportable details are the field → message map.
	Submit(ctx context.Context, snap *Snapshot, inv *invoice.Invoice, req dto.SubmitInvoiceRequest) (*invoice.SubmitPayload, error)
}

type submitService struct {
	ServiceParams
	pricing PricingService
}

// NewSubmitService creates a new submit service
func NewSubmitService(params ServiceParams) SubmitService {
	return &submitService{
		ServiceParams: params,
		pricing:       NewPricingService(params),
	}
}

func (s *submitService) Validate(ctx context.Context, snap *Snapshot, inv *invoice.Invoice) FieldErrors {
	fe := s.pricing.Recalculate(ctx, snap, inv)

	if len(inv.Items) == 0 {
		fe.Add("items", "at least one item is required")
	}

	// Stock is only guarded on sales; purchases add stock rather than
	// consume it, and free-text lines have nothing to check against.
	if inv.Type == types.InvoiceTypeSale {
		for i, li := range inv.Items {
			if li.ProductID == nil {
				continue
			}
			if err := CheckStock(li, snap.Product(*li.ProductID)); err != nil {
				fe.Add(lineField(i, dto.FieldQuantity), ierr.Message(err))
			}
		}
	}

	return fe
}

func (s *submitService) Submit(ctx context.Context, snap *Snapshot, inv *invoice.Invoice, req dto.SubmitInvoiceRequest) (*invoice.SubmitPayload, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv.PaymentMethod = req.PaymentMethod

	fe := NewFieldErrors()
	if req.PaidAmount != "" {
		paid, ok := types.CoerceDecimal(req.PaidAmount)
		if !ok {
			fe.Addf(dto.FieldPaidAmount, "invalid number: %q", req.PaidAmount)
		}
		inv.PaidAmount = paid
	}

	log := s.Logger.WithContext(ctx)

	fe.Merge(s.Validate(ctx, snap, inv))
	if err := fe.AsError(); err != nil {
		log.Warnw("invoice submission blocked",
			"invoice_id", inv.ID,
			"field_errors", fe.String())
		return nil, err
	}

	inv.Status = types.InvoiceStatusSubmitted
	payload := invoice.BuildSubmitPayload(inv, s.Config.Pricing.Currency)

	log.Infow("invoice submitted",
		"invoice_id", inv.ID,
		"type", inv.Type,
		"line_count", len(payload.Lines),
		"subtotal", payload.Subtotal,
		"total", payload.Total,
		"balance", payload.Balance,
		"payment_method", payload.PaymentMethod)

	return payload, nil
}
