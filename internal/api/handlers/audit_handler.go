package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clientdesk/internal/application"
	"github.com/linskybing/clientdesk/internal/repository"
	"github.com/linskybing/clientdesk/pkg/response"
	"github.com/linskybing/clientdesk/pkg/utils"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary      Query audit logs
// @Description  Newest first, filtered by the optional parameters.
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        user_id       query     uint     false  "User ID"                                   example(1)
// @Param        resource_type query     string   false  "Resource type (client, project)"           example("client")
// @Param        resource_id   query     string   false  "Resource id as logged"                     example("id=1")
// @Param        action        query     string   false  "Action (create, update, delete)"           example("create")
// @Param        limit         query     int      false  "Max records (default 100, max 1000)"       example(100)
// @Param        offset        query     int      false  "Offset"                                    example(0)
// @Success      200 {array}   audit.AuditLog
// @Failure      400 {object}  response.ErrorResponse "Invalid query parameters"
// @Failure      401 {object}  response.ErrorResponse
// @Failure      500 {object}  response.ErrorResponse
// @Router       /audit/logs/ [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repository.AuditQueryParams

	if uid, err := utils.ParseQueryUintParam(c, "user_id"); err != nil {
		if !errors.Is(err, utils.ErrEmptyParameter) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user_id"})
			return
		}
	} else {
		params.UserID = &uid
	}

	if rt := c.Query("resource_type"); rt != "" {
		params.ResourceType = &rt
	}
	if rid := c.Query("resource_id"); rid != "" {
		params.ResourceID = &rid
	}
	if act := c.Query("action"); act != "" {
		params.Action = &act
	}

	limit, err := utils.ParseQueryIntParam(c, "limit", application.DefaultAuditLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid limit"})
		return
	}
	offset, err := utils.ParseQueryIntParam(c, "offset", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid offset"})
		return
	}
	params.Limit = limit
	params.Offset = offset

	logs, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
