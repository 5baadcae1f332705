package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/public/forms/{id}", h.getPublishedForm)
		r.Post("/api/public/forms/{id}/submissions", h.submitForm)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Mount("/api/clients", recordRoutes(h, h.services.ClientService))
		r.Mount("/api/farmers", recordRoutes(h, h.services.FarmerService))
		r.Mount("/api/tasks", recordRoutes(h, h.services.TaskService))
		r.Mount("/api/complaints", recordRoutes(h, h.services.ComplaintService))

		r.Route("/api/forms", func(r chi.Router) {
			r.Get("/", h.listForms)
			r.Post("/", h.createForm)
			r.Get("/{id}", h.getForm)
			r.Put("/{id}", h.updateForm)
			r.Delete("/{id}", h.deleteForm)
			r.Get("/{id}/submissions", h.listSubmissions)
		})

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
			r.Get("/{id}/dependents", h.userDependents)
			r.Post("/{id}/reassign", h.reassignUser)
		})

		r.Route("/api/roles", func(r chi.Router) {
			r.Get("/", h.listRoles)
			r.Post("/", h.createRole)
			r.Get("/{id}", h.getRole)
			r.Put("/{id}", h.updateRole)
			r.Delete("/{id}", h.deleteRole)
		})
	})

	return router
}
