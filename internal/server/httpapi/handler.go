// Package httpapi exposes the task tracker over HTTP/JSON using echo.
package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"taskboard/internal/common"
	"taskboard/internal/logging"
	"taskboard/internal/server/services"
)

type Handler struct {
	users  *services.UserService
	tasks  *services.TaskService
	logger logging.Logger
}

func NewHandler(us *services.UserService, ts *services.TaskService, l logging.Logger) *Handler {
	return &Handler{users: us, tasks: ts, logger: l.With("module", "httpapi")}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type userBody struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type authBody struct {
	Token string   `json:"token"`
	User  userBody `json:"user"`
}

// writeError maps service-layer errors onto HTTP statuses. Anything outside
// the taxonomy is logged and surfaced as a generic 500.
func (h *Handler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return c.JSON(http.StatusBadRequest, errorBody{Error: "Validation failed", Message: err.Error()})
	case errors.Is(err, common.ErrorAlreadyExists):
		return c.JSON(http.StatusBadRequest, errorBody{Error: "User exists", Message: "Username already taken"})
	case errors.Is(err, common.ErrorUnauthorized):
		return c.JSON(http.StatusUnauthorized, errorBody{Error: "Invalid credentials", Message: "Username or password incorrect"})
	case errors.Is(err, common.ErrorNotFound):
		return c.JSON(http.StatusNotFound, errorBody{Error: "Not found", Message: "Resource not found"})
	default:
		h.logger.Error(c.Request().Context(), "request failed", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, errorBody{Error: "Server error", Message: "Something went wrong"})
	}
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(c echo.Context) error {
	req := &credentialsRequest{}
	if err := c.Bind(req); err != nil {
		return h.writeError(c, newValidationError("Invalid request payload"))
	}
	if err := validateCredentials(req); err != nil {
		return h.writeError(c, err)
	}

	res, err := h.users.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.writeError(c, err)
	}

	h.logger.Info(c.Request().Context(), "user registered", "username", res.User.Username)
	return c.JSON(http.StatusCreated, authBody{
		Token: res.AccessToken,
		User:  userBody{ID: res.User.ID, Username: res.User.Username},
	})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c echo.Context) error {
	req := &credentialsRequest{}
	if err := c.Bind(req); err != nil {
		return h.writeError(c, newValidationError("Invalid request payload"))
	}
	if err := validateCredentials(req); err != nil {
		return h.writeError(c, err)
	}

	res, err := h.users.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, authBody{
		Token: res.AccessToken,
		User:  userBody{ID: res.User.ID, Username: res.User.Username},
	})
}

// Me handles GET /api/auth/me.
func (h *Handler) Me(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return h.writeError(c, common.ErrorUnauthorized)
	}

	user, err := h.users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"username": user.Username})
}

// ListTasks handles GET /api/tasks.
func (h *Handler) ListTasks(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return h.writeError(c, common.ErrorUnauthorized)
	}

	tasks, err := h.tasks.List(c.Request().Context(), userID)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, tasks)
}

// CreateTask handles POST /api/tasks.
func (h *Handler) CreateTask(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return h.writeError(c, common.ErrorUnauthorized)
	}

	req := &taskCreateRequest{}
	if err := c.Bind(req); err != nil {
		return h.writeError(c, newValidationError("Invalid request payload"))
	}
	if err := validateTaskCreate(req); err != nil {
		return h.writeError(c, err)
	}

	task, err := h.tasks.Create(c.Request().Context(), userID, req.Title, req.Description, req.Status)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /api/tasks/:id.
func (h *Handler) UpdateTask(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return h.writeError(c, common.ErrorUnauthorized)
	}

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return h.writeError(c, newValidationError("Invalid task ID"))
	}

	req := &taskUpdateRequest{}
	if err := c.Bind(req); err != nil {
		return h.writeError(c, newValidationError("Invalid request payload"))
	}
	if err := validateTaskUpdate(req); err != nil {
		return h.writeError(c, err)
	}

	task, err := h.tasks.Update(c.Request().Context(), taskID, userID, services.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id.
func (h *Handler) DeleteTask(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return h.writeError(c, common.ErrorUnauthorized)
	}

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return h.writeError(c, newValidationError("Invalid task ID"))
	}

	if err := h.tasks.Delete(c.Request().Context(), taskID, userID); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
