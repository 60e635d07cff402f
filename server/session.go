package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

const (
	// Bound on any single external call made on behalf of a session.
	externalTimeout = 30 * time.Second

	// Inbound events queued per session before the read side blocks.
	maxPendingEvents = 64
)

// User-facing messages, verbatim from the original assistant.
const (
	msgNoDestination   = "No pude encontrar el destino. ¿Podrías repetirlo?"
	msgNoCoordinates   = "No se pudo encontrar la ubicación exacta del destino."
	msgWaitingLocation = "Esperando tu ubicación... intenta nuevamente en unos segundos."
	msgNoRoute         = "No se pudo generar una ruta válida. Verifica tu ubicación y destino."
	msgArrived         = "🏁 ¡Has llegado a tu destino!"
	msgNoRouteYet      = "No hay una ruta generada. Encuentra un destino primero."
	msgNoDestYet       = "Aún no has seleccionado un destino. Encuentra un destino primero."
	msgNoInfo          = "No pude obtener información sobre el destino en este momento."
	msgBadPayload      = "No pude interpretar el mensaje."
)

// Pipeline holds the external collaborators a session consults. Function
// fields so tests can swap in fakes.
type Pipeline struct {
	// Resolve turns a free-form utterance into a destination name.
	// ok=false means no destination could be extracted.
	Resolve func(ctx context.Context, message string) (name string, ok bool, err error)

	// Geocode turns a destination name into coordinates.
	Geocode func(ctx context.Context, name string) (lat, lon float64, err error)

	// Route returns ordered walking instructions between two points.
	Route func(ctx context.Context, fromLat, fromLon, toLat, toLon float64) ([]string, error)

	// Translate converts the full instruction list in one batch,
	// preserving order and count.
	Translate func(ctx context.Context, steps []string) ([]string, error)

	// Describe answers a free-text question about the destination.
	Describe func(ctx context.Context, name string) (string, error)
}

// Coords is a latitude/longitude pair.
type Coords struct {
	Lat float64
	Lon float64
}

// Session is the per-connection navigation state machine. All state below
// the channels is owned exclusively by the Run loop: events are processed
// strictly in arrival order and no two events for the same session ever run
// concurrently. Nothing is shared between sessions.
type Session struct {
	ID string

	events chan *Event
	send   chan *Response
	kill   chan bool

	pipeline *Pipeline

	location    *Coords
	destination *Destination
	route       []string
	stepIndex   int
}

// Run consumes the session's event queue until the session is killed.
func (s *Session) Run() {
	for {
		select {
		case <-s.kill:
			return
		case ev := <-s.events:
			s.handle(ev)
		}
	}
}

// Submit queues an inbound event. Blocks once the queue is full, which
// stalls only this connection's read side while the session is busy with an
// external call. Returns false if the session is gone.
func (s *Session) Submit(ev *Event) bool {
	select {
	case s.events <- ev:
		return true
	case <-s.kill:
		return false
	}
}

func (s *Session) respond(r *Response) {
	select {
	case s.send <- r:
	case <-s.kill:
		// disconnected mid-call, the response has nowhere to go
	}
}

func (s *Session) reply(text string) {
	s.respond(&Response{Respuesta: text})
}

func (s *Session) handle(ev *Event) {
	switch ev.Type {
	case EventLocation:
		s.updateLocation(ev.Data)
	case EventFindDest:
		s.resolveDestination(ev.Data)
	case EventNextStep:
		s.advanceStep()
	case EventRepeatStep:
		s.repeatStep()
	case EventStartRoute:
		s.restartTraversal()
	case EventDestDetails:
		s.describeDestination()
	default:
		log.Printf("[session] %s: unknown event %q", s.ID, ev.Type)
		s.reply(msgBadPayload)
	}
}

// updateLocation overwrites the last known location. No response; the
// client sends these continuously.
func (s *Session) updateLocation(data json.RawMessage) {
	var loc LocationUpdate
	if err := json.Unmarshal(data, &loc); err != nil || !loc.Valid() {
		log.Printf("[session] %s: bad location payload: %v", s.ID, err)
		s.reply(msgBadPayload)
		return
	}
	s.location = &Coords{Lat: *loc.Latitud, Lon: *loc.Longitud}
}

// resolveDestination runs the resolve -> geocode -> route -> translate
// chain. Any intermediate failure short-circuits to its message and leaves
// destination/route untouched; only full success mutates the session.
func (s *Session) resolveDestination(data json.RawMessage) {
	var req DestinationRequest
	if err := json.Unmarshal(data, &req); err != nil || len(req.Mensaje) == 0 {
		s.reply(msgBadPayload)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), externalTimeout)
	defer cancel()

	name, ok, err := s.pipeline.Resolve(ctx, req.Mensaje)
	if err != nil || !ok {
		if err != nil {
			log.Printf("[session] %s: resolve failed: %v", s.ID, err)
		}
		s.reply(msgNoDestination)
		return
	}

	lat, lon, err := s.pipeline.Geocode(ctx, name)
	if err != nil {
		log.Printf("[session] %s: geocode %q failed: %v", s.ID, name, err)
		s.reply(msgNoCoordinates)
		return
	}

	// The resolved destination is not retained here: the client re-sends
	// the whole request once a location arrives.
	if s.location == nil {
		s.reply(msgWaitingLocation)
		return
	}

	steps, err := s.pipeline.Route(ctx, s.location.Lat, s.location.Lon, lat, lon)
	if err != nil || len(steps) == 0 {
		if err != nil {
			log.Printf("[session] %s: route to %q failed: %v", s.ID, name, err)
		}
		s.reply(msgNoRoute)
		return
	}

	translated, err := s.pipeline.Translate(ctx, steps)
	if err != nil || len(translated) != len(steps) {
		// never emit a mixed-language route
		log.Printf("[session] %s: translate failed: %v", s.ID, err)
		s.reply(msgNoRoute)
		return
	}

	s.destination = &Destination{Nombre: name, Latitud: lat, Longitud: lon}
	s.route = translated
	s.stepIndex = 0

	s.respond(&Response{
		Respuesta: fmt.Sprintf("Destino encontrado: %s. Puedes iniciar el recorrido.", name),
		Destino:   s.destination,
		Ruta:      s.route,
	})
}

// advanceStep moves to the next instruction. Reaching the last index (or
// having no route at all) is arrival: announce it and drop back to idle.
func (s *Session) advanceStep() {
	if s.route == nil || s.stepIndex >= len(s.route)-1 {
		s.reply(msgArrived)
		s.clearJourney()
		return
	}
	s.stepIndex++
	s.reply(fmt.Sprintf("Siguiente paso: %s", s.route[s.stepIndex]))
}

// repeatStep re-emits the current instruction. Deliberately silent with no
// route: the repeat command is a pure echo in the original protocol.
func (s *Session) repeatStep() {
	if s.route == nil || s.stepIndex >= len(s.route) {
		return
	}
	s.reply(fmt.Sprintf("Repetimos: %s", s.route[s.stepIndex]))
}

// restartTraversal resets to the first instruction.
func (s *Session) restartTraversal() {
	if len(s.route) == 0 {
		s.reply(msgNoRouteYet)
		return
	}
	s.stepIndex = 0
	s.reply(fmt.Sprintf("El recorrido ha iniciado. Primer paso: %s", s.route[s.stepIndex]))
}

// describeDestination asks the info collaborator about the chosen
// destination and relays the answer verbatim. Read-only on session state.
func (s *Session) describeDestination() {
	if s.destination == nil {
		s.reply(msgNoDestYet)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), externalTimeout)
	defer cancel()

	answer, err := s.pipeline.Describe(ctx, s.destination.Nombre)
	if err != nil || len(answer) == 0 {
		log.Printf("[session] %s: describe %q failed: %v", s.ID, s.destination.Nombre, err)
		s.reply(msgNoInfo)
		return
	}
	s.reply(answer)
}

// clearJourney drops destination, route and step index together. Location
// is never cleared.
func (s *Session) clearJourney() {
	s.destination = nil
	s.route = nil
	s.stepIndex = 0
}
