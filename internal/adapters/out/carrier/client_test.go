package carrier_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rating"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func shipment() rating.ShipmentSpec {
	return rating.ShipmentSpec{
		Weight:      kernel.MustQuantity("4.2"),
		Volume:      kernel.MustQuantity("0.03"),
		Origin:      "WH-EAST",
		Destination: "10115",
	}
}

func quoting(t *testing.T, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "4.2", req["weight"])
		assert.Equal(t, "10115", req["destination"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func newClient(endpoints ...carrier.Endpoint) *carrier.Client {
	return carrier.NewClient(nil, carrier.Config{
		Endpoints:   endpoints,
		MaxRetries:  2,
		BaseBackoff: time.Millisecond,
	}, discardLogger())
}

func TestClient_Quote_CollectsEveryCarrier(t *testing.T) {
	ups := httptest.NewServer(quoting(t, `{"quotes":[{"service":"ground","cost":"12.50","transitDays":5}]}`))
	defer ups.Close()
	fedex := httptest.NewServer(quoting(t,
		`{"quotes":[{"service":"express","cost":"29.00","transitDays":1},{"service":"economy","cost":"9.10","transitDays":7}]}`))
	defer fedex.Close()

	client := newClient(carrier.Endpoint{Name: "ups", URL: ups.URL}, carrier.Endpoint{Name: "fedex", URL: fedex.URL})

	quotes, err := client.Quote(t.Context(), shipment())
	require.NoError(t, err)
	require.Len(t, quotes, 3)
	assert.Equal(t, "ups/ground", quotes[0].Key())
	assert.Equal(t, "fedex/express", quotes[1].Key())
	assert.Equal(t, "9.10", quotes[2].Cost.String())
	assert.Equal(t, 7, quotes[2].TransitDays)
}

func TestClient_Quote_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	flaky := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"quotes":[{"service":"ground","cost":"11.00","transitDays":4}]}`))
	}))
	defer flaky.Close()

	quotes, err := newClient(carrier.Endpoint{Name: "dhl", URL: flaky.URL}).Quote(t.Context(), shipment())
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_Quote_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	rejecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer rejecting.Close()
	ups := httptest.NewServer(quoting(t, `{"quotes":[{"service":"ground","cost":"12.50","transitDays":5}]}`))
	defer ups.Close()

	client := newClient(carrier.Endpoint{Name: "bad", URL: rejecting.URL}, carrier.Endpoint{Name: "ups", URL: ups.URL})
	quotes, err := client.Quote(t.Context(), shipment())
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "ups", quotes[0].Carrier)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Quote_AllCarriersDownIsRetryable(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer down.Close()

	_, err := newClient(carrier.Endpoint{Name: "ups", URL: down.URL}).Quote(t.Context(), shipment())
	require.Error(t, err)
	assert.True(t, errs.IsRetryable(err))
}

func TestClient_Quote_DeadlineIsRetryable(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer slow.Close()

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	_, err := newClient(carrier.Endpoint{Name: "ups", URL: slow.URL}).Quote(ctx, shipment())
	require.Error(t, err)
	assert.True(t, errs.IsRetryable(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Quote_NoCarriers(t *testing.T) {
	_, err := newClient().Quote(t.Context(), shipment())
	require.Error(t, err)
	assert.True(t, errs.IsRetryable(err))
}
