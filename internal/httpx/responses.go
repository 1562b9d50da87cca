package httpx

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse is the body of every error: a plain description.
type ErrorResponse struct {
	Description string `json:"description"`
}

const internalErrorDescription = "Erreur interne du serveur"

func JSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func JSONOK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// JSONCreated answers 201 with a Location header pointing at the new resource.
func JSONCreated(w http.ResponseWriter, location string, data any) {
	if location != "" {
		w.Header().Set("Location", location)
	}
	JSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func JSONError(w http.ResponseWriter, statusCode int, description string) {
	JSON(w, statusCode, ErrorResponse{Description: description})
}

// InternalError logs err with the request id and answers a generic 500.
func InternalError(w http.ResponseWriter, r *http.Request, log *zap.Logger, msg string, err error) {
	log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", RequestIDFrom(r)),
	)
	JSONError(w, http.StatusInternalServerError, internalErrorDescription)
}
