package main

import (
	"encoding/json"
	"log"
	"net/http"

	demo "github.com/km-arc/go-discover/app"
	"github.com/km-arc/go-discover/framework/app"
	"github.com/km-arc/go-discover/framework/container"
	"github.com/km-arc/go-discover/framework/routing"
)

func main() {
	application, err := app.New() // loads .env, runs the registration pass
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	r := application.Router

	r.Get("/welcome/{name}", func(w http.ResponseWriter, req *http.Request) {
		sc := routing.ScopeFrom(req)

		svc, err := container.Resolve[*demo.WelcomeService](sc)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, map[string]any{
			"message": svc.Greeting(routing.Param(req, "name")),
			"trace":   svc.Tracer.ID(),
		})
	})

	r.Get("/notify/{to}", func(w http.ResponseWriter, req *http.Request) {
		sc := routing.ScopeFrom(req)

		mailer, err := container.Resolve[demo.Mailer](sc)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		texter, err := container.Resolve[demo.Texter](sc)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		to := routing.Param(req, "to")
		writeJSON(w, map[string]any{
			"mail": mailer.Mail(to, "your order shipped"),
			"text": texter.Text(to, "your order shipped"),
		})
	})

	if err := application.Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}
