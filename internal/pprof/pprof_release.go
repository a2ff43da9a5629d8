//go:build release

package pprof

import "log"

func Start(addr string) {
	if addr != "" {
		log.Printf("[Server] pprof_addr %s ignored in release builds", addr)
	}
}
