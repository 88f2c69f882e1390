// Package estimatesvc serves delivery date estimates as JSON for the
// storefront product page and checkout.
package estimatesvc

import (
	"context"
	"encoding/json"
	"fmt"
	logger "log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/OpenStorefrontTools/deliverydate/business/delivery"
	"github.com/gorilla/mux"
)

const invalidZipMessage = "Invalid ZIP code. Please enter a valid 5-digit US ZIP code."
const calculationErrorMessage = "Unable to calculate delivery date. Please try again."

//defaultHttpHandler simple default http handler for default route
type defaultHttpHandler struct {
}

//ServeHTTP implements defaultHttpHandler http.Handler interface
func (h *defaultHttpHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Add("Application-Status", "OK")
}

//errorResponse is the fixed failure envelope. Failures ride inside a 200
//response; the success flag is the only failure signal the storefront reads.
type errorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorCode string `json:"errorCode"`
}

func makeInvalidZipResponse() *errorResponse {
	return &errorResponse{Success: false, Error: invalidZipMessage, ErrorCode: "INVALID_ZIP"}
}

func makeCalculationErrorResponse() *errorResponse {
	return &errorResponse{Success: false, Error: calculationErrorMessage, ErrorCode: "CALCULATION_ERROR"}
}

//estimateResponse is the success envelope for a single-method estimate
type estimateResponse struct {
	Success          bool   `json:"success"`
	ZipCode          string `json:"zipCode"`
	ShippingMethodID string `json:"shippingMethodId"`
	TransitDays      int    `json:"transitDays"`
	DeliveryDate     string `json:"deliveryDate"`
	DeliveryDateFull string `json:"deliveryDateFull"`
	DisplayMessage   string `json:"displayMessage"`
}

//methodEstimateEntry is one shipping method's row in the all-methods envelope
type methodEstimateEntry struct {
	ShippingMethodID   string  `json:"shippingMethodId"`
	ShippingMethodName string  `json:"shippingMethodName"`
	Price              float64 `json:"price"`
	TransitDays        int     `json:"transitDays"`
	DeliveryDate       string  `json:"deliveryDate"`
	DisplayMessage     string  `json:"displayMessage"`
}

//allEstimatesResponse is the success envelope for the all-methods operation
type allEstimatesResponse struct {
	Success         bool                  `json:"success"`
	ZipCode         string                `json:"zipCode"`
	ShippingMethods []methodEstimateEntry `json:"shippingMethods"`
}

//estimateHandler responds to single-method estimate requests
type estimateHandler struct {
	log       *logger.Logger
	calendar  *delivery.Calendar
	publisher *estimateEventPublisher
}

//estimateHandler factory
func makeEstimateHandler(log *logger.Logger,
	calendar *delivery.Calendar,
	publisher *estimateEventPublisher) *estimateHandler {
	return &estimateHandler{
		log:       log,
		calendar:  calendar,
		publisher: publisher,
	}
}

//ServeHTTP implements estimateHandler's http.Handler interface
func (h *estimateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	zipCode := r.FormValue("zipCode")
	methodID := r.FormValue("shippingMethodId")
	if !delivery.IsValidZipCode(zipCode) {
		writeJSON(h.log, w, makeInvalidZipResponse())
		return
	}
	response, err := h.buildEstimate(zipCode, methodID)
	if err != nil {
		h.log.Printf("estimate calculation failed for zip %s: %v", zipCode, err)
		writeJSON(h.log, w, makeCalculationErrorResponse())
		return
	}
	h.publisher.publish(&estimateEvent{
		ZipCode:          response.ZipCode,
		ShippingMethodID: response.ShippingMethodID,
		TransitDays:      response.TransitDays,
		DeliveryDate:     response.DeliveryDate,
		ServedAt:         time.Now().Unix(),
	})
	writeJSON(h.log, w, response)
}

//buildEstimate runs the core calculation, converting any panic from a future
//defect into an error so the boundary can answer with CALCULATION_ERROR
func (h *estimateHandler) buildEstimate(zipCode, methodID string) (response *estimateResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			response = nil
			err = fmt.Errorf("panic during calculation: %v", r)
		}
	}()
	estimate := h.calendar.Estimate(time.Now(), zipCode, methodID)
	if methodID == "" {
		methodID = delivery.MethodStandard
	}
	return &estimateResponse{
		Success:          true,
		ZipCode:          zipCode,
		ShippingMethodID: methodID,
		TransitDays:      estimate.TransitDays,
		DeliveryDate:     estimate.ShortDate,
		DeliveryDateFull: estimate.FullDate,
		DisplayMessage:   estimate.DisplayMessage,
	}, nil
}

//allEstimatesHandler responds with an estimate per checkout shipping method
type allEstimatesHandler struct {
	log       *logger.Logger
	calendar  *delivery.Calendar
	publisher *estimateEventPublisher
}

//allEstimatesHandler factory
func makeAllEstimatesHandler(log *logger.Logger,
	calendar *delivery.Calendar,
	publisher *estimateEventPublisher) *allEstimatesHandler {
	return &allEstimatesHandler{
		log:       log,
		calendar:  calendar,
		publisher: publisher,
	}
}

//ServeHTTP implements allEstimatesHandler's http.Handler interface
func (h *allEstimatesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	zipCode := r.FormValue("zipCode")
	if !delivery.IsValidZipCode(zipCode) {
		writeJSON(h.log, w, makeInvalidZipResponse())
		return
	}
	response, err := h.buildAllEstimates(zipCode)
	if err != nil {
		h.log.Printf("all-methods calculation failed for zip %s: %v", zipCode, err)
		writeJSON(h.log, w, makeCalculationErrorResponse())
		return
	}
	for _, entry := range response.ShippingMethods {
		h.publisher.publish(&estimateEvent{
			ZipCode:          zipCode,
			ShippingMethodID: entry.ShippingMethodID,
			TransitDays:      entry.TransitDays,
			DeliveryDate:     entry.DeliveryDate,
			ServedAt:         time.Now().Unix(),
		})
	}
	writeJSON(h.log, w, response)
}

//buildAllEstimates runs the core calculation for every checkout method with
//the same panic guard as buildEstimate
func (h *allEstimatesHandler) buildAllEstimates(zipCode string) (response *allEstimatesResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			response = nil
			err = fmt.Errorf("panic during calculation: %v", r)
		}
	}()
	estimates := h.calendar.EstimatesForAllMethods(time.Now(), zipCode)
	entries := make([]methodEstimateEntry, 0, len(estimates))
	for _, e := range estimates {
		entries = append(entries, methodEstimateEntry{
			ShippingMethodID:   e.Method.ID,
			ShippingMethodName: e.Method.Name,
			Price:              e.Method.Price,
			TransitDays:        e.TransitDays,
			DeliveryDate:       e.ShortDate,
			DisplayMessage:     e.DisplayMessage,
		})
	}
	return &allEstimatesResponse{
		Success:         true,
		ZipCode:         zipCode,
		ShippingMethods: entries,
	}, nil
}

//writeJSON marshals a response envelope to the http.ResponseWriter
func writeJSON(log *logger.Logger, w http.ResponseWriter, v interface{}) {
	jsonData, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshaling response to json: error:%v", err)
		http.Error(w, "Error serving request", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err = w.Write(jsonData); err != nil {
		log.Printf("Error writing json response: %s", err)
	}
}

//createServer creates configured http.Server for responding to estimate requests
func createServer(log *logger.Logger,
	calendar *delivery.Calendar,
	publisher *estimateEventPublisher,
	httpPort int) *http.Server {

	r := mux.NewRouter()
	r.Use(makeLoggingMiddleware(log))
	r.Handle("/", &defaultHttpHandler{})
	r.Handle("/estimate", makeEstimateHandler(log, calendar, publisher))
	r.Handle("/estimates", makeAllEstimatesHandler(log, calendar, publisher))
	srv := &http.Server{
		Addr: strings.Join([]string{"0.0.0.0", strconv.Itoa(httpPort)}, ":"),
		// Good practice to set timeouts to avoid Slowloris attacks.
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      r,
	}
	return srv
}

//runWebService starts up the estimate web service, and terminates on shutdown signal
func runWebService(log *logger.Logger,
	wg *sync.WaitGroup,
	calendar *delivery.Calendar,
	publisher *estimateEventPublisher,
	httpPort int,
	shutdownSignal chan bool,
) {
	wg.Add(1)
	defer wg.Done()
	srv := createServer(log, calendar, publisher, httpPort)
	log.Printf("Starting server on port %d", httpPort)
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Printf("server ListenAndServe ended. %s", err)
		}
	}()
	<-shutdownSignal
	shutdownCtx, serverCancelFunc := context.WithTimeout(context.Background(), time.Duration(5)*time.Second)
	defer serverCancelFunc()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("error shutting down server: %s", err)
	}
}
