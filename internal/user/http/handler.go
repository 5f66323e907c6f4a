package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	commonerrors "github.com/technotes/backend/internal/common/errors"
	commonhttp "github.com/technotes/backend/internal/common/http"
	"github.com/technotes/backend/internal/common/logger"
	"github.com/technotes/backend/internal/user/domain"
	"github.com/technotes/backend/internal/user/service"
)

type createUserRequest struct {
	Username string   `json:"username" validate:"required"`
	Password string   `json:"password" validate:"required"`
	Roles    []string `json:"roles" validate:"required,min=1,dive,required"`
}

type updateUserRequest struct {
	ID       string   `json:"id" validate:"required"`
	Username string   `json:"username" validate:"required"`
	Password string   `json:"password"`
	Roles    []string `json:"roles" validate:"required,min=1,dive,required"`
	Active   *bool    `json:"active" validate:"required"`
}

type deleteUserRequest struct {
	ID string `json:"id"`
}

type userResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Active   bool     `json:"active"`
}

// Handler serves the users resource on a single path with method dispatch.
// Every failure is routed through the error funnel.
type Handler struct {
	users          *service.UsersService
	errors         *commonhttp.ErrorHandler
	validate       *validator.Validate
	log            *logger.Logger
	requestTimeout time.Duration
}

func NewHandler(
	users *service.UsersService,
	errors *commonhttp.ErrorHandler,
	requestTimeout time.Duration,
	log *logger.Logger,
) *Handler {
	return &Handler{
		users:          users,
		errors:         errors,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		log:            log,
		requestTimeout: requestTimeout,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	case http.MethodPatch:
		h.update(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		commonhttp.WriteMessage(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	users, err := h.users.List(ctx)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{
			ID:       string(u.ID),
			Username: u.Username,
			Roles:    u.Roles,
			Active:   u.Active,
		})
	}

	commonhttp.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("create user failed: invalid json: %v", err)
		h.errors.HandleError(w, r, commonerrors.ErrInvalidJSON.WithCause(err))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.errors.HandleError(w, r, commonerrors.ErrAllFieldsRequired.WithCause(err))
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.users.Create(ctx, service.CreateInput{
		Username: req.Username,
		Password: req.Password,
		Roles:    req.Roles,
	}); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	// The created fields are not echoed back, only a confirmation.
	commonhttp.WriteMessage(w, http.StatusCreated, fmt.Sprintf("New User %s created.", req.Username))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("update user failed: invalid json: %v", err)
		h.errors.HandleError(w, r, commonerrors.ErrInvalidJSON.WithCause(err))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.errors.HandleError(w, r, commonerrors.ErrAllFieldsRequired.WithCause(err))
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	username, err := h.users.Update(ctx, service.UpdateInput{
		ID:       domain.ID(req.ID),
		Username: req.Username,
		Password: req.Password,
		Roles:    req.Roles,
		Active:   *req.Active,
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteMessage(w, http.StatusOK, fmt.Sprintf("%s updated.", username))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	var req deleteUserRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("delete user failed: invalid json: %v", err)
		h.errors.HandleError(w, r, commonerrors.ErrInvalidJSON.WithCause(err))
		return
	}

	if req.ID == "" {
		h.errors.HandleError(w, r, commonerrors.ErrUserIDRequired)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	reply, err := h.users.Delete(ctx, domain.ID(req.ID))
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteMessage(w, http.StatusOK, reply)
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.requestTimeout)
}
