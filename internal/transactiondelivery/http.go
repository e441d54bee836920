// Package transactiondelivery manages delivery layer of transactions.
package transactiondelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/account-ledger/internal/domain"
	"github.com/go-petr/account-ledger/pkg/errorspkg"
	"github.com/go-petr/account-ledger/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Deposit(ctx context.Context, accountID int32, amount string) (domain.Account, error)
	Withdraw(ctx context.Context, accountID int32, amount string) (domain.Account, error)
	List(ctx context.Context, accountID, pageSize, pageID int32) ([]domain.Transaction, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
}

type uriRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

type amountRequest struct {
	Amount string `json:"amount" binding:"required,amount"`
}

type data struct {
	Account domain.Account `json:"account"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

func bindOperation(gctx *gin.Context) (int32, string, bool) {
	l := zerolog.Ctx(gctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return 0, "", false
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return 0, "", false
	}

	return uri.ID, req.Amount, true
}

func writeOperationError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrAccountNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case domain.ErrAccountBlocked,
		domain.ErrWithdrawalLimitExceeded,
		domain.ErrInvalidAmount,
		domain.ErrNegativeAmount:
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

// Deposit handles http request to credit an account.
func (h *Handler) Deposit(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	accountID, amount, ok := bindOperation(gctx)
	if !ok {
		return
	}

	account, err := h.service.Deposit(ctx, accountID, amount)
	if err != nil {
		writeOperationError(gctx, err)
		return
	}

	res := response{
		Data: data{account},
	}

	gctx.JSON(http.StatusOK, res)
}

// Withdraw handles http request to debit an account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	accountID, amount, ok := bindOperation(gctx)
	if !ok {
		return
	}

	account, err := h.service.Withdraw(ctx, accountID, amount)
	if err != nil {
		writeOperationError(gctx, err)
		return
	}

	res := response{
		Data: data{account},
	}

	gctx.JSON(http.StatusOK, res)
}

type listRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

type dataTransactions struct {
	Transactions []domain.Transaction `json:"transactions"`
}
type responseTransactions struct {
	Data dataTransactions `json:"data,omitempty"`
}

// List handles http request to page through an account's transaction log.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	transactions, err := h.service.List(ctx, uri.ID, req.PageSize, req.PageID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responseTransactions{
		Data: dataTransactions{transactions},
	}

	gctx.JSON(http.StatusOK, res)
}
