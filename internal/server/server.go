// Package server exposes game tables over WebSocket. It owns everything the
// rules engine deliberately does not: connection lifecycle, per-table action
// serialization, and turn timeouts. Authentication and seat assignment are
// assumed to have happened upstream.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

// Server hosts one Table per configured table and serves /ws upgrades.
type Server struct {
	addr     string
	logger   *log.Logger
	upgrader websocket.Upgrader
	tables   map[string]*Table
}

// New builds a server and its tables from configuration. The clock is
// injected so tests can drive turn timeouts deterministically.
func New(cfg *Config, clock quartz.Clock, logger *log.Logger) *Server {
	s := &Server{
		addr:   cfg.ListenAddress(),
		logger: logger.WithPrefix("server"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Origin checking belongs to the deployment's proxy layer.
				return true
			},
		},
		tables: make(map[string]*Table),
	}

	timeout := time.Duration(cfg.Server.TurnTimeoutSec) * time.Second
	for _, tc := range cfg.Tables {
		s.tables[tc.Name] = NewTable(tc, timeout, clock, logger)
	}

	return s
}

// Table returns a hosted table by name, or nil.
func (s *Server) Table(name string) *Table {
	return s.tables[name]
}

// Run serves until the context is cancelled. Each table plays on its own
// goroutine; tables share no state and run fully in parallel.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, table := range s.tables {
		g.Go(func() error {
			err := table.Run(ctx)
			if err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	httpServer := &http.Server{Addr: s.addr, Handler: mux}

	g.Go(func() error {
		s.logger.Info("listening", "addr", s.addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// handleWebSocket upgrades a connection and pumps its inbound actions into
// the named table's queue. The seat query parameter binds the connection
// to the seat it plays; without one the connection spectates and never
// sees hole cards.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	tableName := r.URL.Query().Get("table")
	table := s.tables[tableName]
	if table == nil {
		http.Error(w, "unknown table", http.StatusNotFound)
		return
	}
	seat, _ := strconv.Atoi(r.URL.Query().Get("seat"))

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "error", err)
		return
	}

	c := newClient(conn, seat)
	table.Attach(c)
	s.logger.Info("client connected", "table", tableName, "seat", seat)

	defer func() {
		table.Detach(c)
		_ = c.close()
		s.logger.Info("client disconnected", "table", tableName)
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Type != MessageTypeAction {
			continue
		}
		var data ActionData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			if reply, merr := NewMessage(MessageTypeError, ErrorData{Message: "malformed action payload"}); merr == nil {
				_ = c.send(reply)
			}
			continue
		}
		if err := table.Submit(r.Context(), data, c); err != nil {
			return
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
