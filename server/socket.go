package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the client.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the client.
	pongWait = 60 * time.Second

	// Send pings to client with this period. Must be less than pongWait.
	pingPeriod = 15 * time.Second

	// Maximum message size allowed from client.
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// check if the request is for websockets
func IsWebSocket(r *http.Request) bool {
	contains := func(key, val string) bool {
		vv := strings.Split(r.Header.Get(key), ",")
		for _, v := range vv {
			if val == strings.ToLower(strings.TrimSpace(v)) {
				return true
			}
		}
		return false
	}

	if contains("Connection", "upgrade") && contains("Upgrade", "websocket") {
		return true
	}

	return false
}

// ServeWebSocket upgrades the connection and pumps events between the
// client and its session.
func ServeWebSocket(w http.ResponseWriter, r *http.Request, sess *Session) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client
		log.Printf("[socket] %s: upgrade: %v", sess.ID, err)
		return
	}

	s := stream{
		ctx:     r.Context(),
		conn:    conn,
		session: sess,
	}

	s.run()
}

type stream struct {
	// request context
	ctx context.Context
	// the websocket connection.
	conn *websocket.Conn
	// the session owned by this connection
	session *Session
}

func (s *stream) run() {
	defer s.conn.Close()

	// to cancel everything
	stopCtx, cancel := context.WithCancel(context.Background())

	wg := sync.WaitGroup{}
	wg.Add(2)

	go s.sessionToClientLoop(cancel, &wg, stopCtx)
	go s.clientToSessionLoop(cancel, &wg, stopCtx)
	wg.Wait()
}

func (s *stream) clientToSessionLoop(cancel context.CancelFunc, wg *sync.WaitGroup, stopCtx context.Context) {
	defer func() {
		cancel()
		wg.Done()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error { s.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		select {
		case <-stopCtx.Done():
			return
		default:
		}

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[socket] %s: read: %v", s.session.ID, err)
			}
			return
		}

		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil || len(ev.Type) == 0 {
			log.Printf("[socket] %s: bad envelope: %v", s.session.ID, err)
			s.session.respond(&Response{Respuesta: msgBadPayload})
			continue
		}

		// Blocks once the session's queue fills up, keeping per-session
		// ordering while the session waits on an external call.
		if !s.session.Submit(&ev) {
			return
		}
	}
}

func (s *stream) sessionToClientLoop(cancel context.CancelFunc, wg *sync.WaitGroup, stopCtx context.Context) {
	defer func() {
		s.conn.Close()
		cancel()
		wg.Done()
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-stopCtx.Done():
			return
		case <-s.ctx.Done():
			return
		case <-s.session.kill:
			s.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case rsp := <-s.session.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			w, err := s.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			b, _ := json.Marshal(rsp)
			if _, err := w.Write(b); err != nil {
				return
			}
			if err := w.Close(); err != nil {
				return
			}
		}
	}
}
