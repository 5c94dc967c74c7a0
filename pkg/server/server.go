package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"tenantgate/pkg/config"
	"tenantgate/pkg/server/store"
	gormstore "tenantgate/pkg/server/store/gorm"
	"tenantgate/pkg/token"
)

type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Config
	Signer *token.Signer

	CompaniesStore    store.CompaniesStore
	UsersStore        store.UsersStore
	AuthenticateStore store.AuthenticateStore
	HealthStore       store.HealthStore

	srv *http.Server
}

func NewServer(
	db *gorm.DB,
	cfg *config.Config,
	signer *token.Signer,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    cfg.Addr(),
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	users := gormstore.NewUsersStore(db)

	return &Server{
		Router: router,
		DB:     db,
		Config: cfg,
		Signer: signer,

		CompaniesStore:    gormstore.NewCompaniesStore(db),
		UsersStore:        users,
		AuthenticateStore: users,
		HealthStore:       gormstore.NewHealthStore(db),

		srv: srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
