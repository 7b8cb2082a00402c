package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/docflow/internal/application"
	"github.com/linskybing/docflow/internal/config"
	"github.com/linskybing/docflow/internal/domain/user"
	"github.com/linskybing/docflow/pkg/response"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterInput true "User registration info"
// @Success 201 {object} user.UserDTO "User registered successfully"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Failure 500 {object} response.ErrorResponse "Failed to create user"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorResponse(err))
		return
	}

	usr, err := h.svc.RegisterUser(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user.ToDTO(usr))
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorResponse(err))
		return
	}

	usr, token, err := h.svc.LoginUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid email or password"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		int(config.TokenTTL.Seconds()),
		"/",
		"",
		config.IsProduction,
		true,
	)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      usr.ID,
		Email:    usr.Email,
		Name:     usr.Name,
		Elevated: usr.CanAccessFolders,
	})
}

// Logout godoc
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// Me godoc
// @Summary Current user profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.UserDTO
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	usr, err := h.svc.FindUserByID(actor.ID)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTO(usr))
}

// GetUsers godoc
// @Summary List all users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} user.UserDTO
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.svc.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]user.UserDTO, 0, len(users))
	for _, u := range users {
		if u.Placeholder {
			continue
		}
		out = append(out, user.ToDTO(u))
	}
	c.JSON(http.StatusOK, out)
}
