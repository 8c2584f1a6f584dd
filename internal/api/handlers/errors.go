package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/clientdesk/internal/application"
	"github.com/linskybing/clientdesk/pkg/response"
)

const msgInternal = "internal server error"

func init() {
	// Report validator failures under their json names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	}
}

// writeError maps service errors onto HTTP responses.
func writeError(c *gin.Context, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, application.ErrClientNotFound),
		errors.Is(err, application.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrUsernameTaken):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: msgInternal})
	}
}

// bindBody binds the request body into obj. allowEmpty lets an empty body
// through untouched, which PATCH relies on.
func bindBody(c *gin.Context, obj any, allowEmpty bool) bool {
	err := c.ShouldBind(obj)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}
	c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
	return false
}

func bindingErrorResponse(err error) response.ErrorResponse {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		fields := make(map[string]string, len(verr))
		for _, fe := range verr {
			fields[fe.Field()] = fieldMessage(fe)
		}
		return response.ErrorResponse{Error: "validation failed", Fields: fields}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return response.ErrorResponse{
			Error:  "validation failed",
			Fields: map[string]string{typeErr.Field: fmt.Sprintf("expected %s", typeErr.Type)},
		}
	}

	if errors.Is(err, io.EOF) {
		return response.ErrorResponse{Error: "request body is empty"}
	}
	return response.ErrorResponse{Error: "malformed request body"}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	default:
		return "This field is invalid."
	}
}
