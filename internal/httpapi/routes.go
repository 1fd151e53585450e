package httpapi

import "github.com/gin-gonic/gin"

func SetupRoutes(r *gin.Engine, h *Handler) *gin.Engine {
	api := r.Group("/api")
	{
		api.GET("/state", h.State)
		api.GET("/dashboard", h.Dashboard)
		api.GET("/agenda", h.Agenda)

		api.POST("/tasks", h.CreateTask)
		api.POST("/tasks/:id/toggle", h.ToggleTask)
		api.POST("/events", h.CreateEvent)
		api.GET("/notes", h.ListNotes)
		api.POST("/notes", h.CreateNote)
		api.POST("/categories", h.CreateCategory)

		api.GET("/assistant/messages", h.Messages)
		api.POST("/assistant/messages", h.SendMessage)
	}
	return r
}

// NewRouter builds an engine with recovery and request logging.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	return SetupRoutes(r, h)
}
