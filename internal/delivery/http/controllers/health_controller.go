package controllers

import (
	"fmt"
	"net/http"
)

// Liveness godoc
// @Summary Liveness check
// @Tags health
// @Produce plain
// @Success 200 {string} string "API is running"
// @Router / [get]
func Liveness(siteName string) http.HandlerFunc {
	body := fmt.Sprintf("%s API is running", siteName)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}
}
