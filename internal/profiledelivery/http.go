// Package profiledelivery manages delivery layer of profiles.
package profiledelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/threejars/ledger/internal/domain"
	"github.com/threejars/ledger/pkg/errorspkg"
	"github.com/threejars/ledger/pkg/jsonresponse"
)

// Service provides service layer interface needed by profile delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package profiledelivery
type Service interface {
	Create(ctx context.Context, name string, age int32, avatarColor string) (domain.Profile, error)
	Get(ctx context.Context, id string) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	GetOverview(ctx context.Context, id string) (domain.ProfileOverview, error)
}

// Handler facilitates profile delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns profile handler.
func NewHandler(ps Service) *Handler {
	return &Handler{service: ps}
}

type createRequest struct {
	Name        string `json:"name" binding:"required"`
	Age         int32  `json:"age" binding:"omitempty,min=1,max=18"`
	AvatarColor string `json:"avatar_color" binding:"required"`
}

type dataProfile struct {
	Profile domain.Profile `json:"profile"`
}

type responseProfile struct {
	Data dataProfile `json:"data"`
}

// Create handles http request to create a profile with its three jars.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, jsonresponse.Message(jsonresponse.BindErrorMsg(ve)))
			return
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	profile, err := h.service.Create(ctx, req.Name, req.Age, req.AvatarColor)
	if err != nil {
		if err == domain.ErrProfileNameRequired {
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseProfile{Data: dataProfile{profile}})
}

type getRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Get handles http request to get a profile.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	profile, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseProfile{Data: dataProfile{profile}})
}

type dataProfiles struct {
	Profiles []domain.Profile `json:"profiles"`
}

type responseProfiles struct {
	Data dataProfiles `json:"data"`
}

// List handles http request to list all profiles.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	profiles, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseProfiles{Data: dataProfiles{profiles}})
}

type dataOverview struct {
	Overview domain.ProfileOverview `json:"overview"`
}

type responseOverview struct {
	Data dataOverview `json:"data"`
}

// GetOverview handles http request to get a profile with its jar balances.
func (h *Handler) GetOverview(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	overview, err := h.service.GetOverview(ctx, req.ID)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseOverview{Data: dataOverview{overview}})
}
