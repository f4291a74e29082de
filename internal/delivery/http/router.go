package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"communitysite/internal/delivery/http/controllers"
	"communitysite/internal/delivery/http/middleware"
	"communitysite/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	SiteName   string
	Events     *controllers.EventController
	Gallery    *controllers.GalleryController
	Teachers   *controllers.TeacherController
	Contacts   *controllers.ContactController
	Admissions *controllers.AdmissionController
	Users      *controllers.UserController
	Drafts     *controllers.DraftController
}

// NewRouter initializes the HTTP router with all application routes.
// Admin routes require a Bearer token accepted by verifier.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.RequireAuth(verifier, logger)

	mux.HandleFunc("GET /{$}", controllers.Liveness(c.SiteName))

	// Auth
	mux.HandleFunc("POST /login", c.Users.Login)

	// Events
	mux.HandleFunc("GET /events", c.Events.ListEvents)
	mux.HandleFunc("GET /notifications", c.Events.ListHomeEvents)
	mux.HandleFunc("GET /events.ics", c.Events.Calendar)
	mux.HandleFunc("POST /events", admin(c.Events.CreateEvent))
	mux.HandleFunc("DELETE /events/{id}", admin(c.Events.DeleteEvent))

	// Gallery
	mux.HandleFunc("GET /members", c.Gallery.ListMembers)
	mux.HandleFunc("POST /gallery", admin(c.Gallery.CreateMember))
	mux.HandleFunc("PUT /members/{id}", admin(c.Gallery.UpdateMember))
	mux.HandleFunc("DELETE /members/{id}", admin(c.Gallery.DeleteMember))

	// Teachers
	mux.HandleFunc("GET /teacher", c.Teachers.ListTeachers)
	mux.HandleFunc("POST /teacher", admin(c.Teachers.CreateTeacher))
	mux.HandleFunc("PUT /teacher/{id}", admin(c.Teachers.UpdateTeacher))
	mux.HandleFunc("DELETE /teacher/{id}", admin(c.Teachers.DeleteTeacher))

	// Contacts
	mux.HandleFunc("POST /contacts", c.Contacts.SubmitContact)
	mux.HandleFunc("GET /contactsview", admin(c.Contacts.ListContacts))
	mux.HandleFunc("GET /viewcontacts", admin(c.Contacts.ListContacts))
	mux.HandleFunc("PUT /contacts/{id}", admin(c.Contacts.SetRespond))
	mux.HandleFunc("POST /sent-reply", admin(c.Contacts.Reply))

	// Admissions
	mux.HandleFunc("POST /send-data", c.Admissions.SubmitAdmission)
	mux.HandleFunc("GET /admissionsform", admin(c.Admissions.ListAdmissions))
	mux.HandleFunc("PUT /admission/{id}", admin(c.Admissions.SetRespond))

	// Admin accounts
	mux.HandleFunc("GET /users", admin(c.Users.ListUsers))
	mux.HandleFunc("POST /users", admin(c.Users.CreateUser))
	mux.HandleFunc("DELETE /users/{id}", admin(c.Users.DeleteUser))

	// Drafting
	mux.HandleFunc("POST /generate", admin(c.Drafts.Generate))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// Handler wraps the router with the shared middleware chain.
func Handler(mux http.Handler, allowedOrigins []string, logger *slog.Logger) http.Handler {
	return middleware.LoggingMiddleware(logger,
		middleware.Recover(logger,
			middleware.CORS(allowedOrigins, mux)))
}
