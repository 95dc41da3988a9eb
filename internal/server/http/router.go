package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// StaticDirs 前端资源目录；都为空时不挂静态路由
type StaticDirs struct {
	Desktop string
	Mobile  string
}

// NewRouter 组装 /api 路由和静态资源
func NewRouter(h *Handler, static StaticDirs) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.Ping)
		r.Post("/games", h.CreateGame)
		r.Route("/games/{id}", func(r chi.Router) {
			r.Get("/", h.GetGame)
			r.Delete("/", h.DeleteGame)
			r.Post("/restart", h.RestartGame)
			r.Post("/moves", h.PlayMove)
			r.Post("/peer", h.PeerMove)
			r.Post("/ai", h.AIMove)
			r.Get("/ws", h.ServeWS)
		})
	})

	if static.Desktop != "" || static.Mobile != "" {
		mountFrontend(r, static)
	}
	return r
}
