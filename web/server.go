package web

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
)

type Server struct {
	Hub *Hub
}

func NewServer() *Server {
	return &Server{
		Hub: NewHub(),
	}
}

// Start serves the websocket telemetry feed on /ws plus, optionally, the
// static viz frontend and the track image. Blocks; run it on its own
// goroutine.
func (s *Server) Start(port int, distDir string, trackPath string) {
	go s.Hub.Run()

	mux := http.NewServeMux()

	// WebSocket
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(s.Hub, w, r)
	})

	// Track image for the frontend backdrop
	if trackPath != "" {
		if _, err := os.Stat(trackPath); err == nil {
			mux.HandleFunc("/track"+filepath.Ext(trackPath), func(w http.ResponseWriter, r *http.Request) {
				http.ServeFile(w, r, trackPath)
			})
		}
	}

	// Static Frontend
	if distDir != "" {
		fs := http.FileServer(http.Dir(distDir))
		mux.Handle("/", fs)
	}

	addr := fmt.Sprintf(":%d", port)
	log.Printf("HTTP Server listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
