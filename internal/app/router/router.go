// Package router wires the HTTP routes of the breed identification API.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "breed_backend/internal/feature/auth/transport/handler"
	cataloghandler "breed_backend/internal/feature/catalog/transport/handler"
	historyhandler "breed_backend/internal/feature/history/transport/handler"
	predictionhandler "breed_backend/internal/feature/prediction/transport/handler"
	platformhandler "breed_backend/internal/platform/http/handler"
	jwtmw "breed_backend/internal/platform/jwt"
)

func NewRouter(auth *authhandler.AuthHandler, catalog *cataloghandler.CatalogHandler,
	prediction *predictionhandler.PredictionHandler, history *historyhandler.HistoryHandler) *gin.Engine {
	r := gin.Default()

	// Public routes
	// Liveness probe
	r.GET("/healthz", platformhandler.Health)
	// Field worker registration
	r.POST("/signup", auth.Signup)
	// Login (issues a JWT)
	r.POST("/login", auth.Login)
	// Breed catalog
	r.GET("/breeds", catalog.List)
	r.GET("/breeds/:name", catalog.Get)

	// Routes requiring authentication
	authGroup := r.Group("/")
	authGroup.Use(jwtmw.AuthRequired())
	{
		authGroup.POST("/predict", prediction.Predict)
		authGroup.GET("/history", history.List)
		authGroup.POST("/advice", catalog.Advise)
	}

	return r
}
