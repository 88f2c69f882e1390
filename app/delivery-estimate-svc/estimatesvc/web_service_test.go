package estimatesvc

import (
	"encoding/json"
	logger "log"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/OpenStorefrontTools/deliverydate/business/delivery"
	"github.com/matryer/is"
)

func testLogger() *logger.Logger {
	return logger.New(os.Stdout, "TEST : ", logger.LstdFlags)
}

func testHandlerDeps(t *testing.T) (*delivery.Calendar, *estimateEventPublisher) {
	calendar, err := delivery.MakeCalendar()
	if err != nil {
		t.Fatalf("unable to build calendar: %v", err)
	}
	return calendar, makeEstimateEventPublisher(testLogger(), nil, "delivery-estimates")
}

func TestEstimateHandler_success(t *testing.T) {
	is := is.New(t)
	calendar, publisher := testHandlerDeps(t)
	handler := makeEstimateHandler(testLogger(), calendar, publisher)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/estimate?zipCode=90210&shippingMethodId=overnight", nil)
	handler.ServeHTTP(w, r)

	is.Equal(200, w.Code)
	is.Equal("application/json", w.Header().Get("Content-Type"))
	var response estimateResponse
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &response))
	is.True(response.Success)
	is.Equal("90210", response.ZipCode)
	is.Equal("overnight", response.ShippingMethodID)
	is.Equal(1, response.TransitDays)
	is.True(strings.HasPrefix(response.DisplayMessage, "Get it by "))
	is.True(response.DeliveryDate != "")
	is.True(strings.Contains(response.DeliveryDateFull, response.DeliveryDate))
}

func TestEstimateHandler_defaultsToStandard(t *testing.T) {
	is := is.New(t)
	calendar, publisher := testHandlerDeps(t)
	handler := makeEstimateHandler(testLogger(), calendar, publisher)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/estimate?zipCode=90210", nil)
	handler.ServeHTTP(w, r)

	var response estimateResponse
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &response))
	is.True(response.Success)
	is.Equal("standard", response.ShippingMethodID)
	is.Equal(5, response.TransitDays)
}

func TestEstimateHandler_invalidZip(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"missing zip", "/estimate"},
		{"short zip", "/estimate?zipCode=1234"},
		{"letters", "/estimate?zipCode=abcde"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			calendar, publisher := testHandlerDeps(t)
			handler := makeEstimateHandler(testLogger(), calendar, publisher)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest("GET", tt.url, nil))

			// failures still answer 200; the envelope carries the error
			is.Equal(200, w.Code)
			var response errorResponse
			is.NoErr(json.Unmarshal(w.Body.Bytes(), &response))
			is.True(!response.Success)
			is.Equal("INVALID_ZIP", response.ErrorCode)
			is.Equal(invalidZipMessage, response.Error)
		})
	}
}

func TestEstimateHandler_calculationError(t *testing.T) {
	is := is.New(t)
	_, publisher := testHandlerDeps(t)
	// a nil calendar makes the core panic; the handler must convert that
	// into the fixed CALCULATION_ERROR envelope
	handler := makeEstimateHandler(testLogger(), nil, publisher)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/estimate?zipCode=90210", nil))

	is.Equal(200, w.Code)
	var response errorResponse
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &response))
	is.True(!response.Success)
	is.Equal("CALCULATION_ERROR", response.ErrorCode)
	is.Equal(calculationErrorMessage, response.Error)
}

func TestAllEstimatesHandler_success(t *testing.T) {
	is := is.New(t)
	calendar, publisher := testHandlerDeps(t)
	handler := makeAllEstimatesHandler(testLogger(), calendar, publisher)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/estimates?zipCode=10001", nil))

	is.Equal(200, w.Code)
	var response allEstimatesResponse
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &response))
	is.True(response.Success)
	is.Equal("10001", response.ZipCode)
	is.Equal(3, len(response.ShippingMethods))

	is.Equal("standard", response.ShippingMethods[0].ShippingMethodID)
	is.Equal("express", response.ShippingMethods[1].ShippingMethodID)
	is.Equal("overnight", response.ShippingMethods[2].ShippingMethodID)
	is.Equal(5.99, response.ShippingMethods[0].Price)
	is.Equal(12.99, response.ShippingMethods[1].Price)
	is.Equal(24.99, response.ShippingMethods[2].Price)
	is.Equal("Standard Shipping", response.ShippingMethods[0].ShippingMethodName)
	for _, entry := range response.ShippingMethods {
		is.True(strings.HasPrefix(entry.DisplayMessage, "Get it by "))
	}
}

func TestAllEstimatesHandler_invalidZip(t *testing.T) {
	is := is.New(t)
	calendar, publisher := testHandlerDeps(t)
	handler := makeAllEstimatesHandler(testLogger(), calendar, publisher)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/estimates?zipCode=123456", nil))

	var response errorResponse
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &response))
	is.True(!response.Success)
	is.Equal("INVALID_ZIP", response.ErrorCode)
}

func TestEstimateHandler_permissiveZipForms(t *testing.T) {
	is := is.New(t)
	calendar, publisher := testHandlerDeps(t)
	handler := makeEstimateHandler(testLogger(), calendar, publisher)

	// "123-45" carries exactly five digits and is accepted by design
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/estimate?zipCode=123-45", nil))

	var response estimateResponse
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &response))
	is.True(response.Success)
	is.Equal("123-45", response.ZipCode)
	// the punctuated form fails numeric parsing, so transit falls back to the default
	is.Equal(delivery.DefaultTransitDays, response.TransitDays)
}
