package server

import (
	"encoding/json"
)

// Inbound event names, kept from the original wire protocol so existing
// clients keep working.
const (
	EventLocation    = "ubicacion"
	EventFindDest    = "encontrar_destino"
	EventNextStep    = "siguiente_paso"
	EventRepeatStep  = "repetir_paso"
	EventStartRoute  = "comenzar_recorrido"
	EventDestDetails = "detalles_destino"
)

// Event is the envelope every client message arrives in.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// LocationUpdate is the payload of an "ubicacion" event. Pointer fields so
// a missing coordinate is distinguishable from 0,0.
type LocationUpdate struct {
	Latitud  *float64 `json:"latitud"`
	Longitud *float64 `json:"longitud"`
}

// Valid requires both coordinates to be present and on the globe.
func (l *LocationUpdate) Valid() bool {
	if l.Latitud == nil || l.Longitud == nil {
		return false
	}
	return *l.Latitud >= -90 && *l.Latitud <= 90 && *l.Longitud >= -180 && *l.Longitud <= 180
}

// DestinationRequest is the payload of an "encontrar_destino" event.
type DestinationRequest struct {
	Mensaje string `json:"mensaje"`
}

// Destination is a resolved, geocoded destination.
type Destination struct {
	Nombre   string  `json:"nombre"`
	Latitud  float64 `json:"latitud"`
	Longitud float64 `json:"longitud"`
}

// Response is the single outbound message kind. Destino and Ruta are only
// set on a successful destination resolution.
type Response struct {
	Respuesta string       `json:"respuesta"`
	Destino   *Destination `json:"destino,omitempty"`
	Ruta      []string     `json:"ruta,omitempty"`
}
