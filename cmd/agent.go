package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmoreno/framegrab/internal/api"
	"github.com/lmoreno/framegrab/internal/rcapture"
)

const (
	httpDefaultPort = "9000"
)

func main() {

	httpPort := flag.String("http.port", httpDefaultPort, "HTTP listen port")
	flag.Parse()

	backend, err := rcapture.NewBackend()
	if err != nil {
		log.Fatalf("Can't init capture backend: %v", err)
	}
	recorder := rcapture.NewRecorder(backend)

	dims, err := recorder.DisplayDimensions()
	if err != nil {
		log.Fatalf("Can't query display: %v", err)
	}
	log.Printf("Primary display is %dx%d", dims.Width, dims.Height)

	mux := http.NewServeMux()

	// Endpoints to capture frames and inspect capture state
	mux.Handle("/api/", http.StripPrefix("/api", api.MakeHandler(recorder)))

	errors := make(chan error, 2)
	go func() {
		log.Printf("Starting capture agent on port %s", *httpPort)
		errors <- http.ListenAndServe(fmt.Sprintf(":%s", *httpPort), mux)
	}()

	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
		errors <- fmt.Errorf("Received %v signal", <-interrupt)
	}()

	err = <-errors
	log.Printf("%s, exiting.", err)
}
