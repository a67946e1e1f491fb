package payment

import "errors"

var (
	ErrInvalidAmount  = errors.New("valor do pagamento deve ser maior que zero")
	ErrInvalidBarcode = errors.New("código de barras inválido")
	ErrUnknownBrand   = errors.New("bandeira de cartão desconhecida")
	ErrMissingMethod  = errors.New("forma de pagamento não informada")
)
