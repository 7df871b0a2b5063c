package api

import (
	"encoding/json"
	"net/http"

	"github.com/oxtoacart/bpool"
)

var buffers = bpool.NewBufferPool(64)

func renderJSON(w http.ResponseWriter, status int, v any) {
	buf := buffers.Get()
	defer buffers.Put(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func renderError(w http.ResponseWriter, status int, msg string) {
	renderJSON(w, status, map[string]string{"error": msg})
}
