package http

import (
	"net/http"

	"healthcare-appointment-api/internal/delivery/http/handler"
	"healthcare-appointment-api/internal/delivery/http/middleware"
	"healthcare-appointment-api/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	adminHandler       *handler.AdminHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	adminHandler *handler.AdminHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		appointmentHandler: appointmentHandler,
		doctorHandler:      doctorHandler,
		patientHandler:     patientHandler,
		adminHandler:       adminHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Appointment routes (protected, per-route roles)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Handle("",
		middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.CreateAppointment))).Methods(http.MethodPost)
	appointments.Handle("",
		middleware.RequireRole(entity.RolePatient, entity.RoleDoctor, entity.RoleAdmin)(
			http.HandlerFunc(r.appointmentHandler.GetAppointments))).Methods(http.MethodGet)
	appointments.Handle("/{id}/approve",
		middleware.RequireDoctor(http.HandlerFunc(r.appointmentHandler.ApproveAppointment))).Methods(http.MethodPatch)
	appointments.Handle("/{id}/reject",
		middleware.RequireDoctor(http.HandlerFunc(r.appointmentHandler.RejectAppointment))).Methods(http.MethodPatch)
	appointments.Handle("/{id}",
		middleware.RequireAdmin(http.HandlerFunc(r.appointmentHandler.DeleteAppointment))).Methods(http.MethodDelete)

	// Doctor profile routes (protected - doctor only)
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.Use(middleware.RequireDoctor)
	doctors.HandleFunc("/profile", r.doctorHandler.UpsertProfile).Methods(http.MethodPost)
	doctors.HandleFunc("/profile", r.doctorHandler.GetProfile).Methods(http.MethodGet)

	// Patient profile routes (protected - patient only)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequirePatient)
	patients.HandleFunc("/profile", r.patientHandler.UpsertProfile).Methods(http.MethodPost)
	patients.HandleFunc("/profile", r.patientHandler.GetProfile).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/dashboard", r.adminHandler.GetDashboard).Methods(http.MethodGet)
	admin.HandleFunc("/users", r.adminHandler.GetAllUsers).Methods(http.MethodGet)
	admin.HandleFunc("/doctors", r.adminHandler.GetAllDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/patients", r.adminHandler.GetAllPatients).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}/approve", r.adminHandler.ApproveDoctor).Methods(http.MethodPatch)
	admin.HandleFunc("/doctors/{id}/reject", r.adminHandler.RejectDoctor).Methods(http.MethodPatch)
	admin.HandleFunc("/doctors/{id}/block", r.adminHandler.BlockDoctor).Methods(http.MethodPatch)
	admin.HandleFunc("/doctors/{id}/unblock", r.adminHandler.UnblockDoctor).Methods(http.MethodPatch)
	admin.HandleFunc("/patients/{id}/block", r.adminHandler.BlockPatient).Methods(http.MethodPatch)
	admin.HandleFunc("/patients/{id}/unblock", r.adminHandler.UnblockPatient).Methods(http.MethodPatch)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
