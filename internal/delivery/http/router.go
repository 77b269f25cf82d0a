package http

import (
	"net/http"
	"strings"

	"healthcare-management-system/internal/delivery/http/handler"
	"healthcare-management-system/internal/delivery/http/middleware"
	"healthcare-management-system/internal/domain/entity"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const uuidPattern = "[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}"

// Handlers groups every HTTP handler served by the router
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Appointment  *handler.AppointmentHandler
	Notification *handler.NotificationHandler
	Prescription *handler.PrescriptionHandler
	Vitals       *handler.VitalsHandler
	HealthRecord *handler.HealthRecordHandler
	HeartData    *handler.HeartDataHandler
	Search       *handler.SearchHandler
	AuditLog     *handler.AuditLogHandler
	File         *handler.FileHandler
}

type Router struct {
	router         *mux.Router
	handlers       Handlers
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
	observer       middleware.RequestObserver
	metrics        http.Handler
	filesBaseURL   string
	log            *logrus.Logger
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	observer middleware.RequestObserver,
	metrics http.Handler,
	filesBaseURL string,
	log *logrus.Logger,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		handlers:       handlers,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
		observer:       observer,
		metrics:        metrics,
		filesBaseURL:   "/" + strings.Trim(filesBaseURL, "/"),
		log:            log,
	}
}

func (r *Router) Setup() *mux.Router {
	h := r.handlers
	auth := r.authMiddleware

	r.router.Use(middleware.Recover(r.log))
	r.router.Use(middleware.Observe(r.log, r.observer))

	if r.metrics != nil {
		r.router.Handle("/metrics", r.metrics).Methods(http.MethodGet)
	}
	if h.File != nil {
		r.router.HandleFunc(r.filesBaseURL+"/{folder}/{name}", h.File.Serve).Methods(http.MethodGet)
	}

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Users and sessions
	user := api.PathPrefix("/user").Subrouter()
	user.HandleFunc("/patient/register", h.Auth.RegisterPatient).Methods(http.MethodPost)
	user.HandleFunc("/doctor/register", h.Auth.RegisterDoctor).Methods(http.MethodPost)
	user.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	user.Handle("/admin/logout", auth.RequireAdmin(h.Auth.Logout(entity.RoleAdmin, "Admin Logged Out Successfully."))).Methods(http.MethodGet)
	user.Handle("/patient/logout", auth.RequirePatient(h.Auth.Logout(entity.RolePatient, "User Logged Out Successfully."))).Methods(http.MethodGet)
	user.Handle("/doctor/logout", auth.RequireDoctor(h.Auth.Logout(entity.RoleDoctor, "Doctor Logged Out Successfully."))).Methods(http.MethodGet)
	user.Handle("/admin/me", auth.RequireAdmin(http.HandlerFunc(h.Auth.Me))).Methods(http.MethodGet)
	user.Handle("/patient/me", auth.RequirePatient(http.HandlerFunc(h.Auth.Me))).Methods(http.MethodGet)
	user.Handle("/doctor/me", auth.RequireDoctor(http.HandlerFunc(h.Auth.Me))).Methods(http.MethodGet)
	user.Handle("/admin/addnew", auth.RequireAdmin(http.HandlerFunc(h.User.AddAdmin))).Methods(http.MethodPost)
	user.Handle("/doctor/addnew", auth.RequireAdmin(http.HandlerFunc(h.User.AddDoctor))).Methods(http.MethodPost)
	user.HandleFunc("/doctors", h.User.GetDoctors).Methods(http.MethodGet)
	user.Handle("/doctors/unverified", auth.RequireAdmin(http.HandlerFunc(h.User.GetUnverifiedDoctors))).Methods(http.MethodGet)
	user.HandleFunc("/doctors/{department}", h.User.GetDoctorsByDepartment).Methods(http.MethodGet)
	user.Handle("/patients", auth.RequireAdminOrDoctor(http.HandlerFunc(h.User.GetPatients))).Methods(http.MethodGet)
	user.Handle("/doctor/verify/{doctorId}", auth.RequireAdmin(http.HandlerFunc(h.User.VerifyDoctor))).Methods(http.MethodPut)
	user.Handle("/patient/delete/{patientId}", auth.RequireAdmin(http.HandlerFunc(h.User.DeletePatient))).Methods(http.MethodDelete)
	user.Handle("/doctor/delete/{doctorId}", auth.RequireAdmin(http.HandlerFunc(h.User.DeleteDoctor))).Methods(http.MethodDelete)
	user.Handle("/avatar", auth.RequireAny(http.HandlerFunc(h.User.UpdateAvatar))).Methods(http.MethodPut)

	// Appointments; fixed paths are registered before the {patientId} catch-all
	appointment := api.PathPrefix("/appointment").Subrouter()
	appointment.Handle("/book", auth.RequirePatient(http.HandlerFunc(h.Appointment.Book))).Methods(http.MethodPost)
	appointment.Handle("/update/patient/{patientId}", auth.RequireAdmin(http.HandlerFunc(h.Appointment.UpdateStatusForPatient))).Methods(http.MethodPut)
	appointment.Handle("/update/{appointmentId}", auth.RequireAdmin(http.HandlerFunc(h.Appointment.UpdateStatus))).Methods(http.MethodPut)
	appointment.Handle("/delete/{patientId}", auth.RequireAdmin(http.HandlerFunc(h.Appointment.DeleteForPatient))).Methods(http.MethodDelete)
	appointment.Handle("/single/{appointmentId}", auth.RequireAdmin(http.HandlerFunc(h.Appointment.Delete))).Methods(http.MethodDelete)
	appointment.Handle("/getall", auth.RequireAdmin(http.HandlerFunc(h.Appointment.GetAll))).Methods(http.MethodGet)
	appointment.Handle("/patient", auth.RequirePatient(http.HandlerFunc(h.Appointment.GetMine))).Methods(http.MethodGet)
	appointment.Handle("/doctor/stats/me", auth.RequireDoctor(http.HandlerFunc(h.Appointment.GetDoctorStats))).Methods(http.MethodGet)
	appointment.Handle("/doctor/me", auth.RequireDoctor(http.HandlerFunc(h.Appointment.GetMineAsDoctor))).Methods(http.MethodGet)
	appointment.Handle("/doctor/{doctorId}", auth.RequireAdminOrDoctor(http.HandlerFunc(h.Appointment.GetByDoctor))).Methods(http.MethodGet)
	appointment.Handle("/notes/{appointmentId}", auth.RequireDoctor(http.HandlerFunc(h.Appointment.AddNotes))).Methods(http.MethodPost)
	appointment.Handle("/{patientId:"+uuidPattern+"}", auth.RequireAdminOrDoctor(http.HandlerFunc(h.Appointment.GetByPatient))).Methods(http.MethodGet)

	// Notifications
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Handle("/create", auth.RequireAdmin(http.HandlerFunc(h.Notification.Create))).Methods(http.MethodPost)
	notificationsAny := notifications.NewRoute().Subrouter()
	notificationsAny.Use(auth.RequireAny)
	notificationsAny.HandleFunc("/user", h.Notification.GetMine).Methods(http.MethodGet)
	notificationsAny.HandleFunc("/read-all", h.Notification.MarkAllRead).Methods(http.MethodPut)
	notificationsAny.HandleFunc("/read/{id}", h.Notification.MarkRead).Methods(http.MethodPut)
	notificationsAny.HandleFunc("/delete/{id}", h.Notification.Delete).Methods(http.MethodDelete)

	// Prescriptions
	prescriptions := api.PathPrefix("/prescriptions").Subrouter()
	prescriptions.Handle("/add", auth.RequireDoctor(http.HandlerFunc(h.Prescription.Create))).Methods(http.MethodPost)
	prescriptions.Handle("/update/{id}", auth.RequireDoctor(http.HandlerFunc(h.Prescription.Update))).Methods(http.MethodPut)
	prescriptions.Handle("/delete/{id}", auth.RequirePatient(http.HandlerFunc(h.Prescription.Delete))).Methods(http.MethodDelete)
	prescriptions.Handle("/patient/{patientId}", auth.RequireAdminOrDoctor(h.Prescription.GetByPatient(false))).Methods(http.MethodGet)
	prescriptions.Handle("/active/patient/{patientId}", auth.RequireAdminOrDoctor(h.Prescription.GetByPatient(true))).Methods(http.MethodGet)
	prescriptions.Handle("/me", auth.RequirePatient(h.Prescription.GetMine(false))).Methods(http.MethodGet)
	prescriptions.Handle("/active/me", auth.RequirePatient(h.Prescription.GetMine(true))).Methods(http.MethodGet)
	prescriptions.Handle("/all", auth.RequireAdmin(http.HandlerFunc(h.Prescription.GetAll))).Methods(http.MethodGet)
	prescriptions.Handle("/pdf", auth.RequireAny(http.HandlerFunc(h.Prescription.PDF))).Methods(http.MethodGet)
	prescriptions.Handle("/{id:"+uuidPattern+"}", auth.RequireAny(http.HandlerFunc(h.Prescription.Get))).Methods(http.MethodGet)

	// Vitals
	vitals := api.PathPrefix("/vitals").Subrouter()
	vitals.Handle("/add", auth.RequireDoctor(http.HandlerFunc(h.Vitals.Add))).Methods(http.MethodPost)
	vitals.Handle("/delete/{id}", auth.RequireDoctor(http.HandlerFunc(h.Vitals.Delete))).Methods(http.MethodDelete)
	vitals.Handle("/history", auth.RequirePatient(http.HandlerFunc(h.Vitals.History))).Methods(http.MethodGet)
	vitals.Handle("/summarize", auth.RequirePatient(http.HandlerFunc(h.Vitals.Summarize))).Methods(http.MethodPost)
	vitals.Handle("/ask-ai", auth.RequirePatient(http.HandlerFunc(h.Vitals.Ask))).Methods(http.MethodPost)
	vitals.Handle("/framingham", auth.RequirePatient(http.HandlerFunc(h.Vitals.Framingham))).Methods(http.MethodGet)
	vitals.Handle("/{id:"+uuidPattern+"}", auth.RequirePatient(http.HandlerFunc(h.Vitals.Get))).Methods(http.MethodGet)

	// Health records
	records := api.PathPrefix("/health-records").Subrouter()
	records.Handle("/upload", auth.RequireAdminOrDoctor(http.HandlerFunc(h.HealthRecord.Upload))).Methods(http.MethodPost)
	records.Handle("/update/{id}", auth.RequireAdminOrDoctor(http.HandlerFunc(h.HealthRecord.Update))).Methods(http.MethodPut)
	records.Handle("/delete/{id}", auth.RequireAdminOrDoctor(http.HandlerFunc(h.HealthRecord.Delete))).Methods(http.MethodDelete)
	records.Handle("/patient/{patientId}", auth.RequireAdminOrDoctor(http.HandlerFunc(h.HealthRecord.GetByPatient))).Methods(http.MethodGet)
	records.Handle("/me", auth.RequirePatient(http.HandlerFunc(h.HealthRecord.GetMine))).Methods(http.MethodGet)
	records.Handle("/{id:"+uuidPattern+"}", auth.RequireAny(http.HandlerFunc(h.HealthRecord.Get))).Methods(http.MethodGet)

	// Heart data and advice
	api.Handle("/heart-data/add", auth.RequireDoctor(http.HandlerFunc(h.HeartData.Add))).Methods(http.MethodPost)
	api.Handle("/heart-data/me", auth.RequirePatient(http.HandlerFunc(h.HeartData.GetMine))).Methods(http.MethodGet)
	api.Handle("/advice/heart", auth.RequirePatient(http.HandlerFunc(h.HeartData.Advice))).Methods(http.MethodPost)
	api.Handle("/advice/heart/ask", auth.RequirePatient(http.HandlerFunc(h.HeartData.Ask))).Methods(http.MethodPost)

	// Search
	search := api.PathPrefix("/search").Subrouter()
	search.Handle("/patients", auth.RequireAdminOrDoctor(http.HandlerFunc(h.Search.Patients))).Methods(http.MethodGet)
	search.Handle("/doctors", auth.RequireAny(http.HandlerFunc(h.Search.Doctors))).Methods(http.MethodGet)
	search.Handle("/users", auth.RequireAdmin(http.HandlerFunc(h.Search.Users))).Methods(http.MethodGet)
	search.Handle("/advanced", auth.RequireAny(http.HandlerFunc(h.Search.Advanced))).Methods(http.MethodGet)

	// Audit logs (admin only)
	audit := api.PathPrefix("/audit-logs").Subrouter()
	audit.Use(auth.RequireAdmin)
	audit.HandleFunc("", h.AuditLog.GetAllAuditLogs).Methods(http.MethodGet)
	audit.HandleFunc("/{id:[0-9]+}", h.AuditLog.GetAuditLog).Methods(http.MethodGet)

	return r.router
}

// Handler is the routed API behind CORS. CORS sits outside mux so preflight
// requests are answered before any route matching.
func (r *Router) Handler() http.Handler {
	return r.corsMiddleware.Handle(r.Setup())
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
