package account

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/OdairGSoares/care-idosos-sub000/internal/platform/auth"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterPublicRoutes mounts the routes that work without a token.
func (h *Handler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/users", h.signUp)
	g.POST("/users/login", h.login)
}

// RegisterRoutes mounts the routes behind authentication.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/users/me", h.me)
}

type signUpRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Password  string  `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"userId"`
}

func (h *Handler) signUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	u, err := h.svc.SignUp(c.Request().Context(), SignUpInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, "email already registered")
	case errors.Is(err, ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *Handler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	token, u, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token, UserID: u.ID})
}

func (h *Handler) me(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	if userID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	u, err := h.svc.Get(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, u)
}
