package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clientdesk/internal/application"
	"github.com/linskybing/clientdesk/internal/domain/client"
	"github.com/linskybing/clientdesk/pkg/response"
	"github.com/linskybing/clientdesk/pkg/utils"
)

type ClientHandler struct {
	svc *application.ClientService
}

func NewClientHandler(svc *application.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// ListClients godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {array} client.ClientDTO
// @Failure 500 {object} response.ErrorResponse
// @Router /clients/ [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.svc.ListClients()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClient godoc
// @Summary Get client with its projects
// @Tags clients
// @Produce json
// @Param id path uint true "Client ID"
// @Success 200 {object} client.ClientDetailDTO
// @Failure 400 {object} response.ErrorResponse "Invalid client id"
// @Failure 404 {object} response.ErrorResponse "Client not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /clients/{id}/ [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}
	detail, err := h.svc.GetClient(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateClient godoc
// @Summary Create a client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body client.CreateClientDTO true "Client"
// @Success 201 {object} client.ClientDTO
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /clients/ [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var input client.CreateClientDTO
	if !bindBody(c, &input, true) {
		return
	}

	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.svc.CreateClient(c, uid, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateClient godoc
// @Summary Update a client
// @Description PUT requires client_name; PATCH leaves the client unchanged when it is absent.
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Client ID"
// @Param input body client.UpdateClientDTO true "Client"
// @Success 200 {object} client.ClientDetailDTO
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Client not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /clients/{id}/ [put]
// @Router /clients/{id}/ [patch]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	var input client.UpdateClientDTO
	if !bindBody(c, &input, true) {
		return
	}

	partial := c.Request.Method == http.MethodPatch
	updated, err := h.svc.UpdateClient(c, id, input, partial)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteClient godoc
// @Summary Delete a client and its projects
// @Tags clients
// @Security BearerAuth
// @Param id path uint true "Client ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid client id"
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Client not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /clients/{id}/ [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteClient(c, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// clientID reads the :id path parameter. An id too large to be stored cannot
// name a client, so it is reported as not found.
func clientID(c *gin.Context) (uint, bool) {
	id, err := utils.ParseIDParam(c, "id")
	if errors.Is(err, utils.ErrIDOutOfRange) {
		writeError(c, application.ErrClientNotFound)
		return 0, false
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid client id"})
		return 0, false
	}
	return id, true
}
