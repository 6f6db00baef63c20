package router

import (
	"frontdesk/internal/handlers/addon"
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/invoice"
	"frontdesk/internal/handlers/room"
	"frontdesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Room    room.Handler
	Guest   guest.Handler
	Booking booking.Handler
	Invoice invoice.Handler
	Addon   addon.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.Auth
}

// SetupRoutes mounts every domain router under /v1. Auth routes are public;
// everything else sits behind the access-token middleware.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.CORS)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.AuthMiddleware.Auth)

			r.DomainHandlers.Room.Router(protected)
			r.DomainHandlers.Guest.Router(protected)
			r.DomainHandlers.Booking.Router(protected)
			r.DomainHandlers.Invoice.Router(protected)
			r.DomainHandlers.Addon.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}
