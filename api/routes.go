package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read surface and the admin mutation gateway.
func setupRoutes(r chi.Router, handlers *routeHandlers, adminAuth adminAuthMiddleware) {
	// Public read surface: fail-soft, no auth
	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{slug}", handlers.projectHandler.getProjectBySlug())
		r.Get("/slugs", handlers.projectHandler.listSlugs())
		r.Get("/skills", handlers.skillHandler.listSkills())

		r.Post("/contact", handlers.contactHandler.submitMessage())
	})

	// Admin mutation gateway; PUT/DELETE take the target ID as a query param
	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)
		r.Use(adminAuth.authenticate)

		r.Get("/admin/projects", handlers.projectHandler.listAllProjects())
		r.Post("/admin/projects", handlers.projectHandler.createProject())
		r.Put("/admin/projects", handlers.projectHandler.updateProject())
		r.Delete("/admin/projects", handlers.projectHandler.deleteProject())

		r.Post("/admin/skills", handlers.skillHandler.createSkill())
		r.Put("/admin/skills", handlers.skillHandler.updateSkill())
		r.Delete("/admin/skills", handlers.skillHandler.deleteSkill())

		r.Post("/admin/upload", handlers.uploadHandler.uploadFile())
	})
}
