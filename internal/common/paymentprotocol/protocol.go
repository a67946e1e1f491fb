package paymentprotocol

import (
	"github.com/shopspring/decimal"
)

const (
	CardPaymentPath = "/api/payments/card"
	SlipPaymentPath = "/api/payments/slip"
	BrandsPath      = "/api/brands"
)

const (
	InvalidAmount  ErrorCode = "INVALID_AMOUNT"
	InvalidBarcode ErrorCode = "INVALID_BARCODE"
	UnknownBrand   ErrorCode = "UNKNOWN_BRAND"
	BadRequest     ErrorCode = "BAD_REQUEST"
	Unavailable    ErrorCode = "UNAVAILABLE"
	Internal       ErrorCode = "INTERNAL"
)

type ErrorCode string

type CardPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Brand  string          `json:"brand"`
}

type SlipPaymentRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Barcode string          `json:"barcode"`
}

type PaymentResponse struct {
	ID      string            `json:"id"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Details map[string]string `json:"details"`
}

type ErrorResponse struct {
	Code  ErrorCode `json:"code"`
	Error string    `json:"error"`
}
