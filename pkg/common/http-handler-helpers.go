package common

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/matst80/slask-card/pkg/common/jsoncompat"
)

const RequestIdHeader = "X-Request-Id"

// HttpError carries the status code a handler wants to respond with.
type HttpError struct {
	Status int
	Err    error
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("%d: %v", e.Status, e.Err)
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func BadRequest(err error) error {
	return &HttpError{Status: http.StatusBadRequest, Err: err}
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestId string `json:"requestId"`
}

// JsonHandler wraps fn, answering CORS preflights, tagging the request with an
// id and writing the returned value (or error) as json. A nil value without
// error is answered with 204.
func JsonHandler(fn func(w http.ResponseWriter, r *http.Request, requestId string) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			RespondToOptions(w, r)
			return
		}
		requestId := r.Header.Get(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.New().String()
		}
		w.Header().Set(RequestIdHeader, requestId)

		result, err := fn(w, r, requestId)
		if err != nil {
			status := http.StatusInternalServerError
			var httpErr *HttpError
			if errors.As(err, &httpErr) {
				status = httpErr.Status
			}
			log.Printf("Error handling request %s: %v", requestId, err)
			WriteJson(w, status, errorResponse{Error: err.Error(), RequestId: requestId})
			return
		}
		if result == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		WriteJson(w, http.StatusOK, result)
	}
}

func WriteJson(w http.ResponseWriter, status int, v any) {
	data, err := jsoncompat.Marshal(v)
	if err != nil {
		log.Printf("Failed to encode response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(data); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

// DecodeJsonBody reads at most limit bytes of the request body into v.
func DecodeJsonBody(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		return BadRequest(err)
	}
	if err = jsoncompat.Unmarshal(body, v); err != nil {
		return BadRequest(err)
	}
	return nil
}

func RespondToOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	origin := r.Header.Get("Origin")
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.Header().Set("Age", "0")
	w.WriteHeader(http.StatusAccepted)
}
