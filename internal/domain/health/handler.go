package health

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/OdairGSoares/care-idosos-sub000/internal/platform/auth"
	"github.com/OdairGSoares/care-idosos-sub000/pkg/pagination"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/health-records", h.list)
	g.POST("/health-records", h.create)
	g.GET("/health-records/:id", h.get)
	g.DELETE("/health-records/:id", h.delete)
}

type recordRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

func callerID(c echo.Context) (uuid.UUID, error) {
	userID := auth.UserIDFromContext(c.Request().Context())
	if userID == uuid.Nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return userID, nil
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "health record not found")
	case errors.Is(err, ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) list(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	p := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), userID,
		RecordType(c.QueryParam("type")), p.Limit, p.Offset)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

func (h *Handler) create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req recordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	rec, err := h.svc.Create(c.Request().Context(), userID, Input{
		Type:  RecordType(req.Type),
		Value: req.Value,
		Unit:  req.Unit,
		Date:  req.Date,
		Time:  req.Time,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}
	rec, err := h.svc.Get(c.Request().Context(), userID, id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}
	if err := h.svc.Delete(c.Request().Context(), userID, id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
