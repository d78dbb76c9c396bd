package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cubo-pix-gateway/internal/core/domain"
	"cubo-pix-gateway/internal/core/ports"
	"cubo-pix-gateway/internal/pix"
	"cubo-pix-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// PixServiceImpl implements ports.PixService on top of the static
// payload encoder.
type PixServiceImpl struct {
	encoder            *pix.Encoder
	txids              ports.TxIDGenerator
	qr                 ports.QRRenderer
	defaultDescription string
	log                zerolog.Logger
	now                func() time.Time
}

// NewPixService creates a new PixServiceImpl. defaultDescription is used
// when a request carries none.
func NewPixService(
	encoder *pix.Encoder,
	txids ports.TxIDGenerator,
	qr ports.QRRenderer,
	defaultDescription string,
	log zerolog.Logger,
) *PixServiceImpl {
	return &PixServiceImpl{
		encoder:            encoder,
		txids:              txids,
		qr:                 qr,
		defaultDescription: defaultDescription,
		log:                log,
		now:                time.Now,
	}
}

// CreateCharge builds the payload for req and renders its QR code.
func (s *PixServiceImpl) CreateCharge(ctx context.Context, req ports.PixChargeRequest) (*domain.PixCharge, error) {
	if !s.encoder.Configured() {
		return nil, apperror.ErrPixKeyNotConfigured()
	}

	// Text that folds to nothing, such as CJK only, would silently drop
	// sub-tag 02, so it falls back like an empty description.
	description := strings.TrimSpace(req.Description)
	if pix.SanitizeText(description, pix.MaxDescription) == "" {
		description = s.defaultDescription
	}

	charge := pix.Charge{
		Description: description,
		TxID:        s.txids.Next(),
	}
	if req.Amount != nil && req.Amount.IsPositive() {
		charge.Amount = req.Amount.Round(2)
	}

	payload, err := s.encoder.Encode(charge)
	if err != nil {
		switch {
		case errors.Is(err, pix.ErrMissingKey):
			return nil, apperror.ErrPixKeyNotConfigured()
		case errors.Is(err, pix.ErrFieldOverflow):
			return nil, apperror.ErrPixFieldOverflow(err)
		default:
			return nil, apperror.InternalError(fmt.Errorf("encode payload: %w", err))
		}
	}

	dataURL, err := s.qr.DataURL(payload)
	if err != nil {
		s.log.Error().Err(err).
			Str("txid", charge.TxID).
			Str("payload", payload).
			Msg("QR rendering failed")
		return nil, apperror.ErrQRRender(err)
	}

	result := &domain.PixCharge{
		TxID:        charge.TxID,
		Payload:     payload,
		QRDataURL:   dataURL,
		Description: description,
		CreatedAt:   s.now().UTC(),
	}
	if charge.Amount.IsPositive() {
		amount := charge.Amount
		result.Amount = &amount
	}

	s.log.Info().
		Str("txid", result.TxID).
		Str("amount", amountForLog(result)).
		Int("payload_len", len(payload)).
		Msg("pix charge created")

	return result, nil
}

// VerifyPayload decodes payload. A payload that cannot be split into
// fields is rejected; one that parses but fails the structural or CRC
// checks is reported as invalid together with its fields.
func (s *PixServiceImpl) VerifyPayload(ctx context.Context, payload string) (*ports.PixVerification, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, apperror.Validation("payload is required")
	}

	fields, err := pix.ParseFields(payload)
	if err != nil {
		return nil, apperror.ErrInvalidPayload(err)
	}

	result := &ports.PixVerification{Valid: true, Fields: fields}
	if err := pix.Verify(payload); err != nil {
		result.Valid = false
		result.Reason = err.Error()
	}
	return result, nil
}

func amountForLog(c *domain.PixCharge) string {
	if c.Amount == nil {
		return "open"
	}
	return pix.FormatAmount(*c.Amount)
}
