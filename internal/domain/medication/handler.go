package medication

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/OdairGSoares/care-idosos-sub000/internal/platform/auth"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/medications", h.list)
	g.POST("/medications", h.create)
	g.GET("/medications/:id", h.get)
	g.PUT("/medications/:id", h.update)
	g.DELETE("/medications/:id", h.delete)
	g.PUT("/medications/reminder/:id", h.setReminder)
}

type medicationRequest struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	ScheduleTime string `json:"scheduleTime"`
	Reminder     bool   `json:"reminder"`
}

type reminderRequest struct {
	Reminder *bool `json:"reminder"`
}

func callerID(c echo.Context) (uuid.UUID, error) {
	userID := auth.UserIDFromContext(c.Request().Context())
	if userID == uuid.Nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return userID, nil
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid medication id")
	}
	return id, nil
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "medication not found")
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
	items, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req medicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	m, err := h.svc.Create(c.Request().Context(), userID, Input{
		Name:         req.Name,
		Dosage:       req.Dosage,
		ScheduleTime: req.ScheduleTime,
		Reminder:     req.Reminder,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	m, err := h.svc.Get(c.Request().Context(), userID, id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req medicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	m, err := h.svc.Update(c.Request().Context(), userID, id, Input{
		Name:         req.Name,
		Dosage:       req.Dosage,
		ScheduleTime: req.ScheduleTime,
		Reminder:     req.Reminder,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) setReminder(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req reminderRequest
	if err := c.Bind(&req); err != nil || req.Reminder == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "reminder flag is required")
	}
	m, err := h.svc.SetReminder(c.Request().Context(), userID, id, *req.Reminder)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), userID, id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
