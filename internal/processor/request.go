package processor

import (
	"errors"
	"fmt"

	"go-payment/internal/payment"

	"github.com/shopspring/decimal"
)

var ErrUnknownKind = errors.New("unknown payment kind")

type Request struct {
	Kind    payment.Kind
	Amount  decimal.Decimal
	Brand   payment.Brand
	Barcode string
}

func CardRequest(amount decimal.Decimal, brand payment.Brand) Request {
	return Request{
		Kind:   payment.KindCard,
		Amount: amount,
		Brand:  brand,
	}
}

func SlipRequest(amount decimal.Decimal, code string) Request {
	return Request{
		Kind:    payment.KindSlip,
		Amount:  amount,
		Barcode: code,
	}
}

func (r Request) build(opts ...payment.Option) (*payment.Payment, error) {
	switch r.Kind {
	case payment.KindCard:
		return payment.NewCardPayment(r.Amount, r.Brand, opts...)
	case payment.KindSlip:
		return payment.NewSlipPayment(r.Amount, r.Barcode, opts...)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
}
