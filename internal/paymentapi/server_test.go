package paymentapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-payment/internal/common/paymentprotocol"
	"go-payment/internal/metrics"
	"go-payment/internal/payment"
	"go-payment/internal/processor"
	"go-payment/pkg/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	registry := prometheus.NewRegistry()
	m := metrics.New()
	m.MustRegister(registry)

	logger := logging.NewNop()
	p := processor.New(io.Discard, io.Discard, logger, m, payment.WithLatency(0))
	srv := New(
		Config{ServerAddress: "localhost:0", ShutdownTimeout: time.Second},
		p,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		logger,
	)
	return srv.Handler()
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestServer_Payments(t *testing.T) {
	handler := newTestServer(t)

	tests := []struct {
		name        string
		path        string
		body        string
		wantStatus  int
		wantCode    paymentprotocol.ErrorCode
		wantMessage string
		wantDetails map[string]string
	}{
		{
			name:        "card approved",
			path:        paymentprotocol.CardPaymentPath,
			body:        `{"amount": 150, "brand": "Visa"}`,
			wantStatus:  http.StatusOK,
			wantMessage: "Pagamento de R$ 150.00 realizado com cartão Visa",
			wantDetails: map[string]string{"type": "Card", "brand": "Visa"},
		},
		{
			name:        "card amount as string",
			path:        paymentprotocol.CardPaymentPath,
			body:        `{"amount": "10.5", "brand": "americanexpress"}`,
			wantStatus:  http.StatusOK,
			wantMessage: "Pagamento de R$ 10.50 realizado com cartão AmericanExpress",
			wantDetails: map[string]string{"type": "Card", "brand": "AmericanExpress"},
		},
		{
			name:       "card zero amount",
			path:       paymentprotocol.CardPaymentPath,
			body:       `{"amount": 0, "brand": "Visa"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   paymentprotocol.InvalidAmount,
		},
		{
			name:       "card unknown brand",
			path:       paymentprotocol.CardPaymentPath,
			body:       `{"amount": 10, "brand": "Diners"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   paymentprotocol.UnknownBrand,
		},
		{
			name:       "card missing brand",
			path:       paymentprotocol.CardPaymentPath,
			body:       `{"amount": 10}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   paymentprotocol.BadRequest,
		},
		{
			name:       "card unknown field",
			path:       paymentprotocol.CardPaymentPath,
			body:       `{"amount": 10, "brand": "Visa", "cvv": "123"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   paymentprotocol.BadRequest,
		},
		{
			name:        "slip approved",
			path:        paymentprotocol.SlipPaymentPath,
			body:        `{"amount": 200, "barcode": "1234567890"}`,
			wantStatus:  http.StatusOK,
			wantMessage: "Pagamento de R$ 200.00 realizado com boleto. Código de barras: 1234567890",
			wantDetails: map[string]string{"type": "Slip", "barcode": "1234567890"},
		},
		{
			name:       "slip short barcode",
			path:       paymentprotocol.SlipPaymentPath,
			body:       `{"amount": 50, "barcode": "123456789"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   paymentprotocol.InvalidBarcode,
		},
		{
			name:       "slip negative amount",
			path:       paymentprotocol.SlipPaymentPath,
			body:       `{"amount": -5, "barcode": "1234567890"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   paymentprotocol.InvalidAmount,
		},
		{
			name:       "slip malformed json",
			path:       paymentprotocol.SlipPaymentPath,
			body:       `{"amount": `,
			wantStatus: http.StatusBadRequest,
			wantCode:   paymentprotocol.BadRequest,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := doRequest(t, handler, http.MethodPost, test.path, test.body)
			require.Equal(t, test.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if test.wantStatus != http.StatusOK {
				var errResp paymentprotocol.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, test.wantCode, errResp.Code)
				assert.NotEmpty(t, errResp.Error)
				return
			}

			var resp paymentprotocol.PaymentResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.ID)
			assert.Equal(t, string(payment.StatusApproved), resp.Status)
			assert.Equal(t, test.wantMessage, resp.Message)
			assert.Equal(t, test.wantDetails, resp.Details)
		})
	}
}

func TestServer_Brands(t *testing.T) {
	rec := doRequest(t, newTestServer(t), http.MethodGet, paymentprotocol.BrandsPath, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Equal(t, []string{"Visa", "Mastercard", "Elo", "AmericanExpress", "Hipercard"}, names)
}

func TestServer_Metrics(t *testing.T) {
	handler := newTestServer(t)
	doRequest(t, handler, http.MethodPost, paymentprotocol.CardPaymentPath, `{"amount": 1, "brand": "Elo"}`)
	doRequest(t, handler, http.MethodPost, paymentprotocol.SlipPaymentPath, `{"amount": 1, "barcode": "1"}`)

	rec := doRequest(t, handler, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `payments_total{kind="Card",outcome="approved"} 1`)
	assert.Contains(t, rec.Body.String(), `payments_total{kind="Slip",outcome="invalid"} 1`)
}

func TestServer_RunAndShutdown(t *testing.T) {
	srv := New(
		Config{ServerAddress: "127.0.0.1:0", ShutdownTimeout: time.Second},
		processor.New(io.Discard, io.Discard, logging.NewNop(), nil),
		nil,
		logging.NewNop(),
	)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run() }()

	require.Eventually(t, func() bool {
		return srv.Shutdown() == nil
	}, time.Second, 10*time.Millisecond)

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}
