package client

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/linskybing/clientdesk/internal/domain/project"
	"github.com/linskybing/clientdesk/internal/domain/user"
)

const MaxNameLength = 255

type CreateClientDTO struct {
	ClientName string `json:"client_name" form:"client_name" example:"Acme"`
}

func (d *CreateClientDTO) Validate() map[string]string {
	errs := map[string]string{}
	if msg := normalizeName(&d.ClientName); msg != "" {
		errs["client_name"] = msg
	}
	return errs
}

// UpdateClientDTO carries a PUT or PATCH body; a nil ClientName means "absent".
type UpdateClientDTO struct {
	ClientName *string `json:"client_name" form:"client_name" example:"Acme Corp"`
}

// Validate enforces the PUT/PATCH difference: a full update requires client_name.
func (d *UpdateClientDTO) Validate(partial bool) map[string]string {
	errs := map[string]string{}
	if d.ClientName == nil {
		if !partial {
			errs["client_name"] = "This field is required."
		}
		return errs
	}
	if msg := normalizeName(d.ClientName); msg != "" {
		errs["client_name"] = msg
	}
	return errs
}

func normalizeName(name *string) string {
	*name = strings.TrimSpace(*name)
	switch {
	case *name == "":
		return "This field may not be blank."
	case utf8.RuneCountInString(*name) > MaxNameLength:
		return "Ensure this field has no more than 255 characters."
	}
	return ""
}

type ClientDTO struct {
	ID         uint      `json:"id" example:"1"`
	ClientName string    `json:"client_name" example:"Acme"`
	CreatedBy  *string   `json:"created_by" example:"alice"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ClientDetailDTO is the retrieve/update shape with the nested project list.
type ClientDetailDTO struct {
	ClientDTO
	Projects []project.ProjectDTO `json:"projects"`
}

func ToDTO(c Client) ClientDTO {
	return ClientDTO{
		ID:         c.ID,
		ClientName: c.ClientName,
		CreatedBy:  user.UsernameOrNil(c.CreatedBy),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func ToDetailDTO(c Client, projects []project.Project) ClientDetailDTO {
	return ClientDetailDTO{
		ClientDTO: ToDTO(c),
		Projects:  project.ToDTOs(projects),
	}
}
