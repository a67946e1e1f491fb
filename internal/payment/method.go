package payment

import (
	"fmt"

	"go-payment/pkg/barcode"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindCard = Kind("Card")
	KindSlip = Kind("Slip")
)

// Details describes the method-specific fields of a payment.
// It always holds the "type" key.
type Details map[string]string

const (
	DetailsTypeKey    = "type"
	DetailsBrandKey   = "brand"
	DetailsBarcodeKey = "barcode"
)

// Method is the variant part of a payment. Card and Slip are the only
// implementations.
type Method interface {
	Kind() Kind
	Details() Details
	validate() error
	confirmation(amount decimal.Decimal) string
}

type Card struct {
	Brand Brand
}

func (c Card) Kind() Kind { return KindCard }

func (c Card) Details() Details {
	return Details{
		DetailsTypeKey:  string(KindCard),
		DetailsBrandKey: c.Brand.String(),
	}
}

func (c Card) validate() error { return nil }

func (c Card) confirmation(amount decimal.Decimal) string {
	return fmt.Sprintf("Pagamento de R$ %s realizado com cartão %s", amount.StringFixed(2), c.Brand)
}

type Slip struct {
	Barcode string
}

func (s Slip) Kind() Kind { return KindSlip }

func (s Slip) Details() Details {
	return Details{
		DetailsTypeKey:    string(KindSlip),
		DetailsBarcodeKey: s.Barcode,
	}
}

func (s Slip) validate() error {
	if !barcode.Validate(s.Barcode) {
		return fmt.Errorf(
			"%w: %d caracteres, mínimo %d",
			ErrInvalidBarcode,
			barcode.Length(s.Barcode),
			barcode.MinLength,
		)
	}
	return nil
}

func (s Slip) confirmation(amount decimal.Decimal) string {
	return fmt.Sprintf(
		"Pagamento de R$ %s realizado com boleto. Código de barras: %s",
		amount.StringFixed(2),
		s.Barcode,
	)
}
