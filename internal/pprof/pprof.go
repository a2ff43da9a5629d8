//go:build !release

package pprof

import (
	"log"
	"net/http"
	_ "net/http/pprof"
)

// Start serves the net/http/pprof handlers on addr in the background.
func Start(addr string) {
	if addr == "" {
		return
	}
	go func() {
		log.Printf("[Server] pprof listening on %s", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Printf("[Server] pprof stopped: %v", err)
		}
	}()
}
