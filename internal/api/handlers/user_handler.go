package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clientdesk/internal/application"
	"github.com/linskybing/clientdesk/internal/domain/user"
	"github.com/linskybing/clientdesk/pkg/response"
	"github.com/linskybing/clientdesk/pkg/utils"
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
// @Param input body user.CreateUserInput true "User registration info"
// @Success 201 {object} user.UserDTO
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Username already taken"
// @Failure 500 {object} response.ErrorResponse
// @Router /register/ [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateUserInput
	if !bindBody(c, &input, false) {
		return
	}

	created, err := h.svc.RegisterUser(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user.ToDTO(created))
}

// ObtainToken godoc
// @Summary Exchange credentials for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.TokenRequest true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Failure 500 {object} response.ErrorResponse
// @Router /api-token-auth/ [post]
func (h *UserHandler) ObtainToken(c *gin.Context) {
	var req user.TokenRequest
	if !bindBody(c, &req, false) {
		return
	}

	token, err := h.svc.ObtainToken(req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.TokenResponse{Token: token})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.UserDTO
// @Failure 401 {object} response.ErrorResponse
// @Router /me/ [get]
func (h *UserHandler) Me(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	u, err := h.svc.FindUserByID(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTO(u))
}
