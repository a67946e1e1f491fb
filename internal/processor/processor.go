package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"go-payment/internal/metrics"
	"go-payment/internal/payment"
	"go-payment/pkg/logging"

	"go.uber.org/zap"
)

const (
	errorLinePrefix   = "Erro no pagamento:"
	detailsLinePrefix = "Detalhes:"
)

type Recorder interface {
	Record(kind payment.Kind, outcome string, elapsed time.Duration)
}

type Outcome struct {
	Request Request
	Payment *payment.Payment
	Message string
	Err     error
}

// Processor runs payment requests one after another. A failing request is
// reported on the error writer and does not stop the ones after it.
type Processor struct {
	out         io.Writer
	errOut      io.Writer
	logger      *logging.ZapLogger
	recorder    Recorder
	paymentOpts []payment.Option
}

func New(
	out io.Writer,
	errOut io.Writer,
	logger *logging.ZapLogger,
	recorder Recorder,
	paymentOpts ...payment.Option,
) *Processor {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Processor{
		out:         out,
		errOut:      errOut,
		logger:      logger,
		recorder:    recorder,
		paymentOpts: append([]payment.Option{payment.WithLogger(logger)}, paymentOpts...),
	}
}

func (p *Processor) Process(ctx context.Context, requests []Request) []Outcome {
	outcomes := make([]Outcome, 0, len(requests))
	for i, request := range requests {
		itemCtx := logging.WithContextFields(ctx, zap.Int("item", i))
		outcomes = append(outcomes, p.ProcessOne(itemCtx, request))
	}
	return outcomes
}

func (p *Processor) ProcessOne(ctx context.Context, request Request) Outcome {
	start := time.Now()
	outcome := Outcome{Request: request}

	pay, err := request.build(p.paymentOpts...)
	if err != nil {
		outcome.Err = err
		p.recorder.Record(request.Kind, metrics.OutcomeInvalid, time.Since(start))
		p.reportFailure(ctx, request.Kind, err)
		return outcome
	}
	outcome.Payment = pay

	message, err := pay.Pay(ctx)
	if err != nil {
		outcome.Err = err
		p.recorder.Record(request.Kind, metrics.OutcomeInterrupted, time.Since(start))
		p.reportFailure(ctx, request.Kind, err)
		return outcome
	}
	outcome.Message = message
	p.recorder.Record(request.Kind, metrics.OutcomeApproved, time.Since(start))

	if _, err := fmt.Fprintln(p.out, message); err != nil {
		p.logger.ErrorCtx(ctx, "failed to write payment message", zap.Error(err))
	}
	if _, err := fmt.Fprintln(p.out, detailsLinePrefix, FormatDetails(pay.Details())); err != nil {
		p.logger.ErrorCtx(ctx, "failed to write payment details", zap.Error(err))
	}
	return outcome
}

func (p *Processor) reportFailure(ctx context.Context, kind payment.Kind, err error) {
	level := p.logger.WarnCtx
	if !isValidationError(err) {
		level = p.logger.ErrorCtx
	}
	level(ctx, "payment failed", zap.String("kind", string(kind)), zap.Error(err))

	if _, writeErr := fmt.Fprintln(p.errOut, errorLinePrefix, err.Error()); writeErr != nil {
		p.logger.ErrorCtx(ctx, "failed to write payment error", zap.Error(writeErr))
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, payment.ErrInvalidAmount) ||
		errors.Is(err, payment.ErrInvalidBarcode) ||
		errors.Is(err, payment.ErrMissingMethod) ||
		errors.Is(err, ErrUnknownKind)
}

// FormatDetails renders details as "{type: Card, brand: Visa}" with the type
// key first and the rest sorted.
func FormatDetails(details payment.Details) string {
	keys := make([]string, 0, len(details))
	for key := range details {
		if key != payment.DetailsTypeKey {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if _, ok := details[payment.DetailsTypeKey]; ok {
		keys = append([]string{payment.DetailsTypeKey}, keys...)
	}

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+details[key])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

type nopRecorder struct{}

func (nopRecorder) Record(payment.Kind, string, time.Duration) {}
