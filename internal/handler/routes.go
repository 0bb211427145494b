package handler

import (
	"net/http"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
	"github.com/SANTHOSHG-WEB/disaster/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	sessions *service.SessionManager,
	contacts *service.ContactService,
	shelters *service.ShelterService,
	certificates *service.CertificateService,
	alerts domain.AlertProvider,
	alertRegion string,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, sessions, cookieSecure)
	progressHandler := NewProgressHandler(sessions)
	moduleHandler := NewModuleHandler(sessions)
	contactHandler := NewContactHandler(contacts)
	shelterHandler := NewShelterHandler(shelters)
	certificateHandler := NewCertificateHandler(certificates)
	alertHandler := NewAlertHandler(alerts, alertRegion)

	protected := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(auth, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.Handle("POST /api/auth/logout", protected(authHandler.HandleLogout))
	mux.Handle("GET /api/auth/me", protected(authHandler.HandleMe))

	mux.Handle("GET /api/progress", protected(progressHandler.HandleGet))
	mux.Handle("POST /api/progress/modules/{moduleID}", protected(progressHandler.HandleUpdate))
	mux.Handle("POST /api/progress/refresh", protected(progressHandler.HandleRefresh))

	mux.Handle("GET /api/modules", protected(moduleHandler.HandleList))
	mux.Handle("GET /api/modules/{moduleID}", protected(moduleHandler.HandleGet))
	mux.Handle("POST /api/modules/{moduleID}/quiz", protected(moduleHandler.HandleQuizSubmit))

	mux.Handle("GET /api/contacts", protected(contactHandler.HandleList))
	mux.Handle("POST /api/contacts", protected(contactHandler.HandleCreate))
	mux.Handle("PUT /api/contacts/{contactID}", protected(contactHandler.HandleUpdate))
	mux.Handle("DELETE /api/contacts/{contactID}", protected(contactHandler.HandleDelete))

	mux.HandleFunc("GET /api/shelters", shelterHandler.HandleList)
	mux.HandleFunc("GET /api/shelters/nearest", shelterHandler.HandleNearest)
	mux.HandleFunc("GET /api/alerts", alertHandler.HandleList)

	mux.Handle("POST /api/certificate", protected(certificateHandler.HandleIssue))
	mux.Handle("GET /api/certificate", protected(certificateHandler.HandleGet))
}
