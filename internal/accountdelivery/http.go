// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

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

// BlockedMsg confirms that the account has been blocked.
const BlockedMsg = "The account has been blocked!"

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	GetBalance(ctx context.Context, id int32) (string, error)
	Block(ctx context.Context, id int32) error
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type data struct {
	Account domain.Account `json:"account"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	PersonID             int32  `json:"person_id" binding:"required,min=1"`
	DailyWithdrawalLimit string `json:"daily_withdrawal_limit" binding:"required,limit"`
	AccountType          int32  `json:"account_type" binding:"required,min=1"`
}

// Create handles http request to create account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
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

		return
	}

	arg := domain.CreateAccountParams{
		PersonID:             req.PersonID,
		DailyWithdrawalLimit: req.DailyWithdrawalLimit,
		AccountType:          req.AccountType,
	}

	createdAccount, err := h.service.Create(ctx, arg)
	if err != nil {
		switch err {
		case domain.ErrPersonNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrInvalidAmount, domain.ErrNegativeLimit:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{createdAccount},
	}

	gctx.JSON(http.StatusOK, res)
}

type uriRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

type balanceData struct {
	Balance string `json:"balance"`
}
type balanceResponse struct {
	Data balanceData `json:"data,omitempty"`
}

// GetBalance handles http request to get the account's balance.
func (h *Handler) GetBalance(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
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

	balance, err := h.service.GetBalance(ctx, req.ID)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := balanceResponse{
		Data: balanceData{balance},
	}

	gctx.JSON(http.StatusOK, res)
}

type messageData struct {
	Message string `json:"message"`
}
type messageResponse struct {
	Data messageData `json:"data,omitempty"`
}

// Block handles http request to block account.
func (h *Handler) Block(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
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

	if err := h.service.Block(ctx, req.ID); err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := messageResponse{
		Data: messageData{BlockedMsg},
	}

	gctx.JSON(http.StatusOK, res)
}
