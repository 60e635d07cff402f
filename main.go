package main

import (
	"log"
	"net/http"
	"os"

	"lazarillo.ai/agent"
	"lazarillo.ai/emergency"
	"lazarillo.ai/server"
)

func main() {
	if err := agent.Init(); err != nil {
		log.Printf("[main] agent disabled: %v", err)
	}
	if err := emergency.Init(); err != nil {
		log.Printf("[main] emergency sms disabled: %v", err)
	}

	server.Default = server.New(server.LivePipeline())

	http.Handle("/events", server.WithCors(http.HandlerFunc(server.EventsHandler)))
	http.Handle("/enviar-emergencia", server.WithCors(http.HandlerFunc(server.SendEmergencyHandler)))
	http.Handle("/llamar-emergencia", server.WithCors(http.HandlerFunc(server.CallEmergencyHandler)))

	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "3001"
	}

	log.Printf("[main] listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}
