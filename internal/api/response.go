package api

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Data any `json:"data"`
	Meta any `json:"meta,omitempty"`
}

type ResponseError struct {
	Error string `json:"error"`
	Data  any    `json:"data,omitempty"`
}

func SuccessJSON(w http.ResponseWriter, data any, meta any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(Response{Data: data, Meta: meta})
}

// ErrorJSON status直接使用內部錯誤碼 (460系列為自訂碼)
func ErrorJSON(w http.ResponseWriter, status int, err error, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := ResponseError{Error: msg}
	if err != nil {
		body.Data = err.Error()
	}
	json.NewEncoder(w).Encode(body)
}
