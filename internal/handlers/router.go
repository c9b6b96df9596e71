package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/logging"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/middleware"
	"github.com/gorilla/mux"
)

// Page routes served behind the access gate.
var pages = map[string]string{
	"/":        "index.html",
	"/signin":  "signin.html",
	"/signup":  "signup.html",
	"/profile": "profile.html",
}

type RouterConfig struct {
	Profiles  ProfileService
	Verifier  middleware.TokenVerifier
	Logger    logging.Logger
	StaticDir string
}

func NewRouter(cfg RouterConfig) *mux.Router {
	authHandler := &AuthHandler{Profiles: cfg.Profiles}
	profileHandler := &ProfileHandler{Profiles: cfg.Profiles}

	r := mux.NewRouter()
	r.Use(middleware.Logging(cfg.Logger))

	// API Endpoints
	r.HandleFunc("/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	r.HandleFunc("/userinfo", profileHandler.UserInfo).Methods("GET")
	r.HandleFunc("/updateuser", profileHandler.UpdateUser).Methods("POST")

	// Pages
	gate := middleware.NewGate(cfg.Verifier)
	pageRouter := r.Methods("GET").Subrouter()
	pageRouter.Use(gate.Middleware)
	for path, file := range pages {
		pageRouter.Handle(path, servePage(cfg.StaticDir, file))
	}

	// Static assets stay public so the sign-in page can load them.
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	return r
}

func servePage(dir, file string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		http.ServeFile(w, r, filepath.Join(dir, file))
	})
}
