package payment

import (
	"context"
	"fmt"
	"time"

	"go-payment/pkg/logging"
	"go-payment/pkg/threadsafe"
	"go-payment/pkg/timeutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const DefaultLatency = 500 * time.Millisecond

type Option func(p *Payment)

func WithLatency(d time.Duration) Option {
	return func(p *Payment) {
		p.latency = d
	}
}

// WithSleeper replaces the function Pay waits with.
func WithSleeper(sleeper timeutils.Sleeper) Option {
	return func(p *Payment) {
		p.sleep = sleeper
	}
}

func WithLogger(logger *logging.ZapLogger) Option {
	return func(p *Payment) {
		p.logger = logger
	}
}

type Payment struct {
	id      uuid.UUID
	amount  decimal.Decimal
	method  Method
	status  *threadsafe.Value[Status]
	latency time.Duration
	sleep   timeutils.Sleeper
	logger  *logging.ZapLogger
}

// New validates amount and then the method's own fields. No payment is
// returned when either check fails.
func New(amount decimal.Decimal, method Method, opts ...Option) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	if method == nil {
		return nil, ErrMissingMethod
	}
	if err := method.validate(); err != nil {
		return nil, err
	}

	p := &Payment{
		id:      uuid.New(),
		amount:  amount,
		method:  method,
		status:  threadsafe.NewValue(StatusPending),
		latency: DefaultLatency,
		sleep:   timeutils.SleepCtx,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func NewCardPayment(amount decimal.Decimal, brand Brand, opts ...Option) (*Payment, error) {
	return New(amount, Card{Brand: brand}, opts...)
}

func NewSlipPayment(amount decimal.Decimal, code string, opts ...Option) (*Payment, error) {
	return New(amount, Slip{Barcode: code}, opts...)
}

// Pay waits for the processing latency, approves the payment and returns the
// confirmation message. It fails only when ctx is done before the wait ends,
// in which case the status is left untouched.
func (p *Payment) Pay(ctx context.Context) (string, error) {
	p.logger.DebugCtx(
		ctx,
		"processing payment",
		zap.String("paymentID", p.id.String()),
		zap.String("kind", string(p.method.Kind())),
		zap.String("amount", p.amount.String()),
		zap.Duration("latency", p.latency),
	)
	if err := p.sleep(ctx, p.latency); err != nil {
		return "", fmt.Errorf("payment %s interrupted: %w", p.id, err)
	}
	p.status.Set(StatusApproved)

	message := p.method.confirmation(p.amount)
	p.logger.InfoCtx(
		ctx,
		"payment approved",
		zap.String("paymentID", p.id.String()),
		zap.String("kind", string(p.method.Kind())),
	)
	return message, nil
}

func (p *Payment) ID() string {
	return p.id.String()
}

func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

func (p *Payment) Status() Status {
	return p.status.Get()
}

func (p *Payment) Kind() Kind {
	return p.method.Kind()
}

func (p *Payment) Method() Method {
	return p.method
}

func (p *Payment) Details() Details {
	return p.method.Details()
}
