package network

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"clack/diagram"
	"clack/protocol"
	"clack/sim"
)

// Shortened in tests so ping writes overlap reply writes.
var pingInterval = 25 * time.Second

type server struct {
	upgrader websocket.Upgrader
}

// Handler returns the full HTTP surface of the diagram service. WebSocket
// upgrades are accepted same-origin and from allowedOrigins; other
// cross-origin requests are refused.
func Handler(allowedOrigins ...string) http.Handler {
	s := &server{
		upgrader: websocket.Upgrader{CheckOrigin: originChecker(allowedOrigins)},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/diagram.svg", diagramHandler)
	mux.HandleFunc("/count", countHandler)
	mux.HandleFunc("/ws", s.wsHandler)
	return mux
}

// Serve blocks listening on addr.
func Serve(addr string, allowedOrigins ...string) error {
	log.Printf("listening on %s (ws endpoint: /ws)", addr)
	return http.ListenAndServe(addr, Handler(allowedOrigins...))
}

// originChecker accepts requests without an Origin header (non-browser
// clients), same-host requests, and origins from the allow-list.
func originChecker(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		if strings.EqualFold(u.Host, r.Host) {
			return true
		}
		for _, a := range allowed {
			if strings.EqualFold(origin, a) {
				return true
			}
		}
		return false
	}
}

func parseMass(r *http.Request) (float64, error) {
	raw := r.URL.Query().Get("mass")
	if raw == "" {
		return 0, fmt.Errorf("missing mass parameter")
	}
	mass, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable mass %q", raw)
	}
	return mass, nil
}

func diagramHandler(w http.ResponseWriter, r *http.Request) {
	mass, err := parseMass(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	seq, err := sim.Calculate(mass)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := diagram.WriteSVG(w, seq); err != nil {
		// Headers are gone already, all we can do is drop the connection.
		log.Println("write svg:", err)
	}
}

func countHandler(w http.ResponseWriter, r *http.Request) {
	mass, err := parseMass(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	seq, err := sim.Calculate(mass)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(protocol.CountResult{Mass: mass, Count: seq.Count()}); err != nil {
		log.Println("write count:", err)
	}
}

func (s *server) wsHandler(w http.ResponseWriter, r *http.Request) {
	// Upgrade HTTP -> WebSocket
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer conn.Close()

	// Basic timeouts + pong handling (keeps connections healthy)
	conn.SetReadLimit(1 << 20) // 1MB
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	// gorilla/websocket allows at most one concurrent writer, and pings
	// come from their own goroutine, so every write goes through here.
	var writeMu sync.Mutex
	write := func(msgType int, data []byte) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		return conn.WriteMessage(msgType, data)
	}

	// Ping loop
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := write(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	// Request/response loop: every simulate message gets one reply.
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("read:", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		if err := write(websocket.TextMessage, handleSimulate(msg)); err != nil {
			log.Println("write:", err)
			return
		}
	}
}

func handleSimulate(msg []byte) []byte {
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return errorReply(err)
	}
	if env.T != protocol.MsgSimulate {
		return errorReply(fmt.Errorf("unexpected message type %q", env.T))
	}
	req, err := protocol.DecodePayload[protocol.SimulateRequest](env)
	if err != nil {
		return errorReply(err)
	}

	seq, err := sim.Calculate(req.Mass)
	if err != nil {
		return errorReply(err)
	}
	var b strings.Builder
	if err := diagram.WriteSVG(&b, seq); err != nil {
		return errorReply(err)
	}

	reply, err := protocol.Encode(protocol.MsgDiagram, protocol.DiagramResult{
		Mass:  req.Mass,
		Count: seq.Count(),
		SVG:   b.String(),
	})
	if err != nil {
		return errorReply(err)
	}
	return reply
}

func errorReply(err error) []byte {
	b, encErr := protocol.Encode(protocol.MsgError, protocol.Error{Message: err.Error()})
	if encErr != nil {
		return []byte(`{"t":"error","p":{"message":"internal error"}}`)
	}
	return b
}
