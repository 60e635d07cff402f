package server

import (
	"encoding/json"
	"log"
	"net/http"

	"lazarillo.ai/emergency"
)

// swappable for tests
var sendAlert = emergency.SendAlert

// EventsHandler serves the navigation websocket. Each connection gets its
// own session, destroyed when the connection goes away.
func EventsHandler(w http.ResponseWriter, r *http.Request) {
	if !IsWebSocket(r) {
		http.Error(w, "websocket required", 400)
		return
	}

	sess := Default.NewSession()
	defer Default.Remove(sess.ID)

	ServeWebSocket(w, r, sess)
}

// SendEmergencyHandler dispatches an emergency SMS. Stateless: never
// touches any navigation session.
func SendEmergencyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "unsupported method "+r.Method, 400)
		return
	}

	var req struct {
		Telefono string `json:"telefono"`
		Mensaje  string `json:"mensaje"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Telefono) == 0 || len(req.Mensaje) == 0 {
		writeJSON(w, 400, map[string]interface{}{
			"success": false,
			"error":   "telefono y mensaje son requeridos",
		})
		return
	}

	result, err := sendAlert(req.Telefono, req.Mensaje)
	if err != nil {
		log.Printf("[server] emergency sms to %s failed: %v", req.Telefono, err)
		writeJSON(w, 500, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, 200, map[string]interface{}{
		"success":  true,
		"message":  "Mensaje de emergencia enviado",
		"response": result,
	})
}

// CallEmergencyHandler returns the configured emergency number for the
// client to dial locally.
func CallEmergencyHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, map[string]interface{}{
		"numero": emergency.Number,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, _ := json.Marshal(v)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func WithCors(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// set cors origin allow all
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// if options return immediately
		if r.Method == "OPTIONS" {
			return
		}

		h.ServeHTTP(w, r)
	})
}
