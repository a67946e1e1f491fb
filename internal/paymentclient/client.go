package paymentclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go-payment/internal/common/paymentprotocol"
	"go-payment/internal/payment"
	"go-payment/pkg/logging"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// APIError is a non-2xx answer of the payment API. It unwraps to the payment
// sentinel error matching its code, so errors.Is works across the wire.
type APIError struct {
	StatusCode int
	Code       paymentprotocol.ErrorCode
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payment api: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Code {
	case paymentprotocol.InvalidAmount:
		return payment.ErrInvalidAmount
	case paymentprotocol.InvalidBarcode:
		return payment.ErrInvalidBarcode
	case paymentprotocol.UnknownBrand:
		return payment.ErrUnknownBrand
	}
	return nil
}

type Config struct {
	ServerAddress string
}

type Client struct {
	logger *logging.ZapLogger
	http   *resty.Client
	cfg    Config
}

func New(cfg Config, logger *logging.ZapLogger) *Client {
	return &Client{
		cfg:    cfg,
		logger: logger,
		http:   resty.New().SetBaseURL(cfg.ServerAddress),
	}
}

func (c *Client) PayCard(
	ctx context.Context,
	amount decimal.Decimal,
	brand payment.Brand,
) (paymentprotocol.PaymentResponse, error) {
	return c.pay(ctx, paymentprotocol.CardPaymentPath, paymentprotocol.CardPaymentRequest{
		Amount: amount,
		Brand:  brand.String(),
	})
}

func (c *Client) PaySlip(
	ctx context.Context,
	amount decimal.Decimal,
	code string,
) (paymentprotocol.PaymentResponse, error) {
	return c.pay(ctx, paymentprotocol.SlipPaymentPath, paymentprotocol.SlipPaymentRequest{
		Amount:  amount,
		Barcode: code,
	})
}

func (c *Client) Brands(ctx context.Context) ([]string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(paymentprotocol.BrandsPath)
	if err != nil {
		return nil, fmt.Errorf("get request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, decodeAPIError(resp)
	}
	var res []string
	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		return nil, fmt.Errorf("error unmarshalling brands response: %w", err)
	}
	return res, nil
}

func (c *Client) pay(ctx context.Context, path string, body any) (paymentprotocol.PaymentResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return paymentprotocol.PaymentResponse{}, fmt.Errorf("post request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	switch statusCode {
	case http.StatusOK:
		res := paymentprotocol.PaymentResponse{}
		if err := json.Unmarshal(resp.Body(), &res); err != nil {
			c.logger.ErrorCtx(ctx, "Error unmarshalling payment response", zap.Error(err))
			return paymentprotocol.PaymentResponse{}, fmt.Errorf("error unmarshalling payment response: %w", err)
		}
		c.logger.DebugCtx(ctx, "Payment approved", zap.String("paymentID", res.ID))
		return res, nil
	default:
		apiErr := decodeAPIError(resp)
		c.logger.DebugCtx(ctx, "Payment rejected", zap.Error(apiErr))
		return paymentprotocol.PaymentResponse{}, apiErr
	}
}

func decodeAPIError(resp *resty.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode()}
	body := paymentprotocol.ErrorResponse{}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		apiErr.Message = resp.Status()
		return apiErr
	}
	apiErr.Code = body.Code
	apiErr.Message = body.Error
	return apiErr
}
