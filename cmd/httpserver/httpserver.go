// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/threejars/ledger/internal/charityservice"
	"github.com/threejars/ledger/internal/jardelivery"
	"github.com/threejars/ledger/internal/jarrepo"
	"github.com/threejars/ledger/internal/jarservice"
	"github.com/threejars/ledger/internal/ledgerdelivery"
	"github.com/threejars/ledger/internal/ledgerrepo"
	"github.com/threejars/ledger/internal/ledgerservice"
	"github.com/threejars/ledger/internal/middleware"
	"github.com/threejars/ledger/internal/profiledelivery"
	"github.com/threejars/ledger/internal/profilerepo"
	"github.com/threejars/ledger/internal/profileservice"
	"github.com/threejars/ledger/internal/transactionrepo"
	"github.com/threejars/ledger/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	profileRepo := profilerepo.NewRepoPGS(conn)
	jarRepo := jarrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)
	ledgerRepo := ledgerrepo.NewRepoPGS(conn)

	profileService := profileservice.New(profileRepo)
	jarService := jarservice.New(jarRepo)
	charityService := charityservice.New(transactionRepo)
	ledgerService := ledgerservice.New(ledgerRepo, transactionRepo, jarService, charityService)

	profileHandler := profiledelivery.NewHandler(profileService)
	jarHandler := jardelivery.NewHandler(jarService)
	ledgerHandler := ledgerdelivery.NewHandler(ledgerService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/profiles", profileHandler.Create)
	engine.GET("/profiles", profileHandler.List)
	engine.GET("/profiles/:id", profileHandler.Get)
	engine.GET("/profiles/:id/overview", profileHandler.GetOverview)

	engine.GET("/profiles/:id/jars", jarHandler.List)
	engine.PATCH("/jars/:id/goal", jarHandler.SetGoal)

	engine.POST("/profiles/:id/deposits", ledgerHandler.Deposit)
	engine.POST("/profiles/:id/withdrawals", ledgerHandler.Withdraw)
	engine.POST("/profiles/:id/interest", ledgerHandler.RunInterest)
	engine.POST("/profiles/:id/donations", ledgerHandler.RecordDonation)

	engine.GET("/profiles/:id/balances", ledgerHandler.GetBalances)
	engine.GET("/profiles/:id/transactions", ledgerHandler.GetHistory)
	engine.GET("/profiles/:id/donations", ledgerHandler.GetDonations)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("jarkind", jardelivery.ValidJarKind); err != nil {
			return nil, err
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
