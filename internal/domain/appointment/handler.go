package appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/OdairGSoares/care-idosos-sub000/internal/platform/auth"
)

type Handler struct {
	svc *Service
	now func() time.Time
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/appointments", h.list)
	g.POST("/appointments", h.create)
	g.GET("/appointments/next", h.next)
	g.GET("/appointments/:id", h.get)
	g.PUT("/appointments/:id", h.reschedule)
	g.DELETE("/appointments/:id", h.cancel)
	g.PUT("/appointments/confirmed/:id", h.confirm)
}

type createRequest struct {
	DoctorID   string `json:"doctorId"`
	LocationID string `json:"locationId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

type rescheduleRequest struct {
	DoctorID   *string `json:"doctorId,omitempty"`
	LocationID *string `json:"locationId,omitempty"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
}

type confirmRequest struct {
	Confirmed *bool `json:"confirmed"`
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
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	case errors.Is(err, ErrSlotTaken):
		return echo.NewHTTPError(http.StatusConflict, "slot already taken")
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
	switch filter := c.QueryParam("filter"); filter {
	case "":
	case "upcoming":
		items, _ = Partition(items, h.now())
	case "past":
		_, items = Partition(items, h.now())
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "filter must be upcoming or past")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) next(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	items, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}
	d := Next(items, h.now())
	if d == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no upcoming appointment")
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor id")
	}
	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid location id")
	}
	d, err := h.svc.Create(c.Request().Context(), userID, CreateInput{
		DoctorID:   doctorID,
		LocationID: locationID,
		Date:       req.Date,
		Time:       req.Time,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}
	d, err := h.svc.Get(c.Request().Context(), userID, id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) reschedule(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}
	var req rescheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	in := RescheduleInput{Date: req.Date, Time: req.Time}
	if req.DoctorID != nil {
		doctorID, err := uuid.Parse(*req.DoctorID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor id")
		}
		in.DoctorID = &doctorID
	}
	if req.LocationID != nil {
		locationID, err := uuid.Parse(*req.LocationID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid location id")
		}
		in.LocationID = &locationID
	}
	d, err := h.svc.Reschedule(c.Request().Context(), userID, id, in)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) confirm(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}
	// Absent body defaults to confirming.
	confirmed := true
	var req confirmRequest
	if err := c.Bind(&req); err == nil && req.Confirmed != nil {
		confirmed = *req.Confirmed
	}
	d, err := h.svc.SetConfirmed(c.Request().Context(), userID, id, confirmed)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) cancel(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}
	if err := h.svc.Cancel(c.Request().Context(), userID, id); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "appointment cancelled"})
}
