package handlers

import (
	"errors"
	"net/http"

	"userdir/internal/dto"
	"userdir/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgSignupRequired     = "Name, email and password are required"
	msgLoginRequired      = "Email and password are required"
	msgEmailParamRequired = "Email parameter is required"
	msgEmailTaken         = "Email already registered"
	msgInvalidCredentials = "Invalid email or password"
	msgUserNotFound       = "User not found"

	// MsgInternal is the only thing a client ever learns about an unexpected failure.
	MsgInternal = "Internal server error"
)

// AuthHandler handles signup, login and user lookups.
type AuthHandler struct {
	userSvc *service.UserService
	log     *zap.Logger
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(userSvc *service.UserService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{userSvc: userSvc, log: log}
}

// Signup godoc
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SignupRequest  true  "New user"
// @Success      201   {object}  dto.DataResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	// Malformed JSON and wrong-typed fields are client errors here: 400 with the
	// required-fields message, where the Express server answered 500.
	if err := c.ShouldBindJSON(&req); err != nil {
		message(c, http.StatusBadRequest, msgSignupRequired)
		return
	}
	user, err := h.userSvc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			message(c, http.StatusBadRequest, msgSignupRequired)
		case errors.Is(err, service.ErrEmailTaken):
			message(c, http.StatusBadRequest, msgEmailTaken)
		default:
			internalError(c, h.log, err)
		}
		return
	}
	c.JSON(http.StatusCreated, dto.DataResponse{Data: dto.UserToResponse(user.Public())})
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.DataResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      401   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	// Same 400 for unparsable bodies as Signup.
	if err := c.ShouldBindJSON(&req); err != nil {
		message(c, http.StatusBadRequest, msgLoginRequired)
		return
	}
	user, err := h.userSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			message(c, http.StatusBadRequest, msgLoginRequired)
		case errors.Is(err, service.ErrInvalidCredentials):
			message(c, http.StatusUnauthorized, msgInvalidCredentials)
		default:
			internalError(c, h.log, err)
		}
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.UserToResponse(user.Public())})
}

// CheckEmail godoc
// @Summary      Check whether an email is registered
// @Tags         auth
// @Produce      json
// @Param        email  query     string  true  "Email"
// @Success      200    {object}  dto.CheckEmailResponse
// @Failure      400    {object}  dto.MessageResponse
// @Router       /auth/check-email [get]
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	exists, err := h.userSvc.EmailExists(c.Request.Context(), c.Query("email"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			message(c, http.StatusBadRequest, msgEmailParamRequired)
			return
		}
		internalError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckEmailResponse{Exists: exists})
}

// GetUser godoc
// @Summary      Get a user by email
// @Tags         auth
// @Produce      json
// @Param        email  path      string  true  "Email"
// @Success      200    {object}  dto.DataResponse
// @Failure      404    {object}  dto.MessageResponse
// @Router       /auth/user/{email} [get]
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.userSvc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			message(c, http.StatusNotFound, msgUserNotFound)
			return
		}
		internalError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.UserToResponse(user.Public())})
}

func message(c *gin.Context, code int, msg string) {
	c.JSON(code, dto.MessageResponse{Message: msg})
}

// internalError logs err and replies with a fixed 500 body.
func internalError(c *gin.Context, log *zap.Logger, err error) {
	_ = c.Error(err)
	log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	message(c, http.StatusInternalServerError, MsgInternal)
}
