// Package jardelivery manages delivery layer of jars.
package jardelivery

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

// Service provides service layer interface needed by jar delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package jardelivery
type Service interface {
	GetByKind(ctx context.Context, profileID, kind string) (domain.Jar, error)
	ListForProfile(ctx context.Context, profileID string) ([]domain.Jar, error)
	SetGoal(ctx context.Context, jarID, amount, description string) (domain.Jar, error)
}

// Handler facilitates jar delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns jar handler.
func NewHandler(js Service) *Handler {
	return &Handler{service: js}
}

type listRequest struct {
	ProfileID string `uri:"id" binding:"required,uuid"`
}

type dataJars struct {
	Jars []domain.Jar `json:"jars"`
}

type responseJars struct {
	Data dataJars `json:"data"`
}

// List handles http request to list the profile's jars.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req listRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	jars, err := h.service.ListForProfile(ctx, req.ProfileID)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseJars{Data: dataJars{jars}})
}

type setGoalURI struct {
	JarID string `uri:"id" binding:"required,uuid"`
}

type setGoalRequest struct {
	GoalAmount      string `json:"goal_amount" binding:"required"`
	GoalDescription string `json:"goal_description"`
}

type dataJar struct {
	Jar domain.Jar `json:"jar"`
}

type responseJar struct {
	Data dataJar `json:"data"`
}

// SetGoal handles http request to update a jar's savings goal.
func (h *Handler) SetGoal(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri setGoalURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	var req setGoalRequest
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

	jar, err := h.service.SetGoal(ctx, uri.JarID, req.GoalAmount, req.GoalDescription)
	if err != nil {
		switch err {
		case domain.ErrJarNotFound:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		case domain.ErrInvalidAmount, domain.ErrNonPositiveAmount:
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseJar{Data: dataJar{jar}})
}
