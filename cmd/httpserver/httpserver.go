// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/account-ledger/internal/accountdelivery"
	"github.com/go-petr/account-ledger/internal/accountrepo"
	"github.com/go-petr/account-ledger/internal/accountservice"
	"github.com/go-petr/account-ledger/internal/middleware"
	"github.com/go-petr/account-ledger/internal/persondelivery"
	"github.com/go-petr/account-ledger/internal/personrepo"
	"github.com/go-petr/account-ledger/internal/personservice"
	"github.com/go-petr/account-ledger/internal/transactiondelivery"
	"github.com/go-petr/account-ledger/internal/transactionrepo"
	"github.com/go-petr/account-ledger/internal/transactionservice"
	"github.com/go-petr/account-ledger/pkg/clockpkg"
	"github.com/go-petr/account-ledger/pkg/configpkg"
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
	personRepo := personrepo.NewRepoPGS(conn)
	accountRepo := accountrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)

	personService := personservice.New(personRepo)
	accountService := accountservice.New(accountRepo)
	transactionService := transactionservice.New(transactionRepo, clockpkg.Real())

	personHandler := persondelivery.NewHandler(personService)
	accountHandler := accountdelivery.NewHandler(accountService)
	transactionHandler := transactiondelivery.NewHandler(transactionService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/persons", personHandler.Create)
	engine.GET("/persons/:id", personHandler.Get)

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts/:id/balance", accountHandler.GetBalance)
	engine.PUT("/accounts/:id/block", accountHandler.Block)

	engine.POST("/accounts/:id/deposits", transactionHandler.Deposit)
	engine.POST("/accounts/:id/withdrawals", transactionHandler.Withdraw)
	engine.GET("/accounts/:id/transactions", transactionHandler.List)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("amount", transactiondelivery.ValidAmount); err != nil {
			return nil, errors.New("cannot register amount validator")
		}

		if err := v.RegisterValidation("limit", accountdelivery.ValidLimit); err != nil {
			return nil, errors.New("cannot register limit validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
