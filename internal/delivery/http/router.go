package http

import (
	"net/http"

	"salon-booking-api/internal/delivery/http/handler"
	"salon-booking-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	categoryHandler     *handler.CategoryHandler
	serviceHandler      *handler.ServiceHandler
	staffHandler        *handler.StaffHandler
	availabilityHandler *handler.AvailabilityHandler
	bookingHandler      *handler.BookingHandler
	appointmentHandler  *handler.AppointmentHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	serviceHandler *handler.ServiceHandler,
	staffHandler *handler.StaffHandler,
	availabilityHandler *handler.AvailabilityHandler,
	bookingHandler *handler.BookingHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		categoryHandler:     categoryHandler,
		serviceHandler:      serviceHandler,
		staffHandler:        staffHandler,
		availabilityHandler: availabilityHandler,
		bookingHandler:      bookingHandler,
		appointmentHandler:  appointmentHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public catalog
	api.HandleFunc("/categories", r.categoryHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}", r.categoryHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/services", r.serviceHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", r.serviceHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/staff", r.staffHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/staff/{id}", r.staffHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/staff/{id}/hours", r.staffHandler.GetHours).Methods(http.MethodGet)

	// Public availability
	api.HandleFunc("/staff/{id}/slots", r.availabilityHandler.GetSlots).Methods(http.MethodGet)
	api.HandleFunc("/staff/{id}/next-open-day", r.availabilityHandler.GetNextOpenDay).Methods(http.MethodGet)

	// Public bookings
	api.HandleFunc("/bookings", r.bookingHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/bookings/can-book", r.bookingHandler.CanBook).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Back-office accounts (admin)
	admin.HandleFunc("/users", r.authHandler.Register).Methods(http.MethodPost)

	// Catalog management (admin)
	admin.HandleFunc("/categories", r.categoryHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/categories/{id}", r.categoryHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/categories/{id}", r.categoryHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/services", r.serviceHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", r.serviceHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", r.serviceHandler.Delete).Methods(http.MethodDelete)

	// Staff management (admin)
	admin.HandleFunc("/staff", r.staffHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/staff/{id}", r.staffHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/staff/{id}", r.staffHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/staff/{id}/hours/{weekday}", r.staffHandler.UpsertHours).Methods(http.MethodPut)
	admin.HandleFunc("/staff/{id}/hours/{weekday}", r.staffHandler.DeleteHours).Methods(http.MethodDelete)

	// Appointment book (admin and receptionist)
	book := api.PathPrefix("/admin").Subrouter()
	book.Use(r.authMiddleware.Authenticate)
	book.Use(middleware.RequireStaffPanel)
	book.HandleFunc("/appointments", r.appointmentHandler.GetByDay).Methods(http.MethodGet)
	book.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	book.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
