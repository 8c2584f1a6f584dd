package project

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/linskybing/clientdesk/internal/domain/user"
)

const MaxNameLength = 255

type CreateProjectDTO struct {
	ProjectName string `json:"project_name" form:"project_name" example:"Website"`
	UserIDs     []uint `json:"user_ids" form:"user_ids" example:"2,3"`
}

// Validate checks the fields that do not need the database and returns
// field → message pairs; an empty map means the payload is acceptable.
func (d *CreateProjectDTO) Validate() map[string]string {
	errs := map[string]string{}
	d.ProjectName = strings.TrimSpace(d.ProjectName)
	switch {
	case d.ProjectName == "":
		errs["project_name"] = "This field may not be blank."
	case utf8.RuneCountInString(d.ProjectName) > MaxNameLength:
		errs["project_name"] = "Ensure this field has no more than 255 characters."
	}
	return errs
}

// UniqueUserIDs returns the requested ids without duplicates, preserving order.
func (d CreateProjectDTO) UniqueUserIDs() []uint {
	seen := make(map[uint]struct{}, len(d.UserIDs))
	out := make([]uint, 0, len(d.UserIDs))
	for _, id := range d.UserIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

type ProjectDTO struct {
	ID            uint           `json:"id" example:"1"`
	ProjectName   string         `json:"project_name" example:"Website"`
	Client        string         `json:"client" example:"Acme"`
	AssignedUsers []user.UserDTO `json:"assigned_users"`
	CreatedBy     *string        `json:"created_by" example:"alice"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func ToDTO(p Project) ProjectDTO {
	return ProjectDTO{
		ID:            p.ID,
		ProjectName:   p.ProjectName,
		Client:        p.ClientName,
		AssignedUsers: user.ToDTOs(p.Users),
		CreatedBy:     user.UsernameOrNil(p.CreatedBy),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ToDTOs(projects []Project) []ProjectDTO {
	out := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToDTO(p))
	}
	return out
}
