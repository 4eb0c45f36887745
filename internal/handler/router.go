package handler

import (
	"github.com/gin-gonic/gin"
)

// managedTables are the simple tables served through the generic CRUD
// handler. Teachers and notes have dedicated route sets.
var managedTables = []string{"timetables", "schedules", "events", "contacts"}

// Handlers bundles every HTTP handler group for route registration.
type Handlers struct {
	Auth     *AuthHandler
	Chat     *ChatHandler
	Entities *EntityHandler
	Teachers *TeacherHandler
	Notes    *NoteHandler
	Metrics  *MetricsHandler
}

// Register mounts the API routes on the engine. prefix is the API
// base path ("/api"); signup, login and chat live at the root for
// compatibility with existing clients.
func Register(r *gin.Engine, prefix string, h Handlers) {
	r.POST("/signup", h.Auth.Signup)
	r.POST("/login", h.Auth.Login)
	r.POST("/ask", h.Chat.Ask)

	api := r.Group(prefix)
	for _, table := range managedTables {
		api.GET("/"+table, h.Entities.List(table))
		api.POST("/"+table, h.Entities.Create(table))
		api.GET("/"+table+"/:id", h.Entities.Get(table))
		api.PUT("/"+table+"/:id", h.Entities.Update(table))
		api.DELETE("/"+table+"/:id", h.Entities.Delete(table))
	}

	api.GET("/teachers", h.Teachers.List)
	api.POST("/teachers", h.Teachers.Create)
	api.GET("/teachers/:id", h.Teachers.Get)
	api.PUT("/teachers/:id", h.Teachers.Update)
	api.DELETE("/teachers/:id", h.Teachers.Delete)

	api.GET("/notes", h.Notes.List)
	api.POST("/notes", h.Notes.Upload)
	api.DELETE("/notes/:id", h.Notes.Delete)

	r.GET("/metrics", h.Metrics.Prometheus)
}
