package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clientdesk/internal/application"
	"github.com/linskybing/clientdesk/internal/domain/project"
	"github.com/linskybing/clientdesk/pkg/response"
	"github.com/linskybing/clientdesk/pkg/utils"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// CreateProject godoc
// @Summary Create a project under a client
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Client ID"
// @Param input body project.CreateProjectDTO true "Project"
// @Success 201 {object} project.ProjectDTO
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Client not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /clients/{id}/projects/ [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	cid, ok := clientID(c)
	if !ok {
		return
	}

	var input project.CreateProjectDTO
	if !bindBody(c, &input, true) {
		return
	}

	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.svc.CreateProject(c, cid, uid, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListMyProjects godoc
// @Summary List projects assigned to the current user
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Success 200 {array} project.ProjectDTO
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /projects/ [get]
func (h *ProjectHandler) ListMyProjects(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	projects, err := h.svc.ListProjectsForUser(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}
