package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultAddr = ":8080"

// Load pulls in an optional .env file so local runs can override the
// process environment. Missing files are fine.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}
}

// ListenAddr returns the address the server binds: CLACK_ADDR if set,
// otherwise the default.
func ListenAddr() string {
	if addr := os.Getenv("CLACK_ADDR"); addr != "" {
		return addr
	}
	return defaultAddr
}

// AllowedOrigins returns the cross-origin websocket clients the server
// accepts, from comma-separated CLACK_ORIGINS. Same-origin requests are
// accepted regardless.
func AllowedOrigins() []string {
	raw := os.Getenv("CLACK_ORIGINS")
	if raw == "" {
		return nil
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
