package http

import (
	"net/http"
	"strings"
)

// RouterConfig collects the handlers and middleware chain for the API router.
type RouterConfig struct {
	Assignments *AssignmentHandler
	Requests    *RequestHandler
	Catalog     *CatalogHandler
	Blackouts   *BlackoutHandler
	Auth        *AuthHandler
	Middleware  []func(http.Handler) http.Handler
}

// NewRouter builds the /api route table.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	if cfg.Assignments != nil {
		mux.HandleFunc("/api/assignments", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Assignments.List(w, r)
			case http.MethodPost:
				cfg.Assignments.Create(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
	}

	if cfg.Requests != nil {
		mux.HandleFunc("/api/requests", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Requests.List(w, r)
			case http.MethodPost:
				cfg.Requests.Create(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
	}

	if cfg.Catalog != nil {
		mux.HandleFunc("/api/departments", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Catalog.ListDepartments(w, r)
		})
		mux.HandleFunc("/api/rooms", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Catalog.ListRooms(w, r)
		})
	}

	if cfg.Blackouts != nil {
		mux.HandleFunc("/api/blackouts", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Blackouts.Create(w, r)
		})
	}

	if cfg.Auth != nil {
		mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Auth.Login(w, r)
		})
	}

	var handler http.Handler = mux
	for i := len(cfg.Middleware) - 1; i >= 0; i-- {
		if cfg.Middleware[i] != nil {
			handler = cfg.Middleware[i](handler)
		}
	}

	return handler
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
