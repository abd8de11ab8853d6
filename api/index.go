package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"frydays/app"
	"frydays/config"
	_ "frydays/docs"
	"frydays/models"

	"github.com/gin-gonic/gin"
)

var (
	application *app.App
	initErr     error
	once        sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		application, initErr = app.New(context.Background(), config.AppConfig)
		if initErr != nil {
			log.Printf("Failed to initialize application: %v", initErr)
		}
	})
}

// Handler is the serverless entrypoint. The application is built once per
// instance and reused across invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Success: false,
			Message: "Erro interno do servidor",
			Error:   "startup",
		})
		return
	}
	application.Router.ServeHTTP(w, r)
}
