// Package persondelivery manages delivery layer of persons.
package persondelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/account-ledger/internal/domain"
	"github.com/go-petr/account-ledger/pkg/errorspkg"
	"github.com/go-petr/account-ledger/pkg/web"
)

// Service provides service layer interface needed by person delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package persondelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreatePersonParams) (domain.Person, error)
	Get(ctx context.Context, id int32) (domain.Person, error)
}

// Handler facilitates person delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns person handler.
func NewHandler(ps Service) Handler {
	return Handler{service: ps}
}

type data struct {
	Person domain.Person `json:"person"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	Name      string    `json:"name" binding:"required"`
	Document  string    `json:"document" binding:"required,numeric,len=11"`
	BirthDate time.Time `json:"birth_date" binding:"required"`
}

// Create handles http request to create person.
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

	arg := domain.CreatePersonParams{
		Name:      req.Name,
		Document:  req.Document,
		BirthDate: req.BirthDate,
	}

	createdPerson, err := h.service.Create(ctx, arg)
	if err != nil {
		if err == domain.ErrDocumentAlreadyExists {
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{createdPerson},
	}

	gctx.JSON(http.StatusOK, res)
}

type getRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get person.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
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

	person, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrPersonNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{person},
	}

	gctx.JSON(http.StatusOK, res)
}
