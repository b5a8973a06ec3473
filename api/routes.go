package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/authv1"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/budget"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/category"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/suggestion"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Storage  *storage.Storage
	Service  *service.Service
	Operator *operator.OperatorDelegator
	Tokens   *auth.Tokens
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaConfig := huma.DefaultConfig("finance-tracker", "1.0.0")
	humaAPI := humago.New(mux, humaConfig)
	humaAPI.UseMiddleware(
		logging.Middleware(r.Logger),
		auth.Middleware(humaAPI, r.Tokens),
	)

	registerV1(humaAPI, r)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

func registerV1(humaAPI huma.API, r *Rest) {
	authv1.NewRegisterHandler(r.Service.Auth).Register(humaAPI)
	authv1.NewLoginHandler(r.Service.Auth).Register(humaAPI)
	authv1.NewRefreshHandler(r.Service.Auth).Register(humaAPI)
	authv1.NewLogoutHandler(r.Service.Auth).Register(humaAPI)
	authv1.NewProfileHandler(r.Service.Auth).Register(humaAPI)
	authv1.NewUpdateProfileHandler(r.Service.Auth).Register(humaAPI)
	authv1.NewChangePasswordHandler(r.Service.Auth).Register(humaAPI)
	authv1.NewRequestEmailChangeHandler(r.Service.Auth).Register(humaAPI)
	authv1.NewConfirmEmailChangeHandler(r.Service.Auth).Register(humaAPI)
	authv1.NewRequestPasswordResetHandler(r.Service.Auth).Register(humaAPI)
	authv1.NewConfirmPasswordResetHandler(r.Service.Auth).Register(humaAPI)

	category.NewCreateCategoryHandler(r.Operator).Register(humaAPI)
	category.NewListCategoriesHandler(r.Storage.Categories).Register(humaAPI)
	category.NewUpdateCategoryHandler(r.Operator).Register(humaAPI)
	category.NewDeleteCategoryHandler(r.Operator).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transactions).Register(humaAPI)
	transaction.NewCheckImpactHandler(r.Service.BudgetTracking).Register(humaAPI)
	transaction.NewAssignCategoryHandler(r.Operator).Register(humaAPI)

	budget.NewCreateBudgetHandler(r.Operator).Register(humaAPI)
	budget.NewListBudgetsHandler(r.Storage.Budgets).Register(humaAPI)
	budget.NewUpdateBudgetHandler(r.Operator).Register(humaAPI)
	budget.NewDeleteBudgetHandler(r.Operator).Register(humaAPI)
	budget.NewMonthlySummaryHandler(r.Service.BudgetTracking).Register(humaAPI)
	budget.NewBudgetAlertsHandler(r.Service.BudgetTracking).Register(humaAPI)

	suggestion.NewSuggestCategoryHandler(r.Service.Suggestions).Register(humaAPI)
	suggestion.NewPendingSuggestionsHandler(r.Service.Suggestions).Register(humaAPI)
}
