package main

import (
	"log"

	"clack/config"
	"clack/network"
)

func main() {
	config.Load()
	log.Fatal(network.Serve(config.ListenAddr(), config.AllowedOrigins()...))
}
