package application

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clientdesk/internal/domain/audit"
	"github.com/linskybing/clientdesk/internal/domain/project"
	"github.com/linskybing/clientdesk/internal/domain/user"
	"github.com/linskybing/clientdesk/internal/repository"
	"github.com/linskybing/clientdesk/pkg/utils"
	"gorm.io/gorm"
)

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{
		Repos: repos,
	}
}

// CreateProject adds a project under clientID. Checks run in order: the client
// must exist, project_name must be present, and every user id must resolve.
// Nothing is written unless all of them pass.
func (s *ProjectService) CreateProject(c *gin.Context, clientID, createdBy uint, input project.CreateProjectDTO) (project.ProjectDTO, error) {
	var created project.Project

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if _, err := tx.Client.GetClientByID(clientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			return fmt.Errorf("get client %d: %w", clientID, err)
		}

		if errs := input.Validate(); len(errs) > 0 {
			return NewValidationError(errs)
		}

		users, err := resolveUsers(tx.User, input.UniqueUserIDs())
		if err != nil {
			return err
		}

		p := &project.Project{
			ProjectName: input.ProjectName,
			ClientID:    clientID,
			CreatedByID: &createdBy,
			Users:       users,
		}
		if err := tx.Project.CreateProject(p); err != nil {
			return fmt.Errorf("create project: %w", err)
		}

		created, err = tx.Project.GetProjectByID(p.ID)
		if err != nil {
			return fmt.Errorf("reload project %d: %w", p.ID, err)
		}
		return nil
	})
	if err != nil {
		return project.ProjectDTO{}, err
	}

	out := project.ToDTO(created)
	utils.LogAuditWithConsole(c, audit.ActionCreate, "project", fmt.Sprintf("id=%d", created.ID), nil, out, fmt.Sprintf("client_id=%d", clientID), s.Repos.Audit)
	return out, nil
}

// ListProjectsForUser returns every project the user is assigned to.
func (s *ProjectService) ListProjectsForUser(userID uint) ([]project.ProjectDTO, error) {
	projects, err := s.Repos.Project.ListProjectsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("list projects for user %d: %w", userID, err)
	}
	return project.ToDTOs(projects), nil
}

// resolveUsers loads ids and fails with a ValidationError naming every id that
// does not exist. Ids above utils.MaxID are never looked up.
func resolveUsers(repo repository.UserRepo, ids []uint) ([]user.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	storable := make([]uint, 0, len(ids))
	for _, id := range ids {
		if uint64(id) <= utils.MaxID {
			storable = append(storable, id)
		}
	}

	var users []user.User
	if len(storable) > 0 {
		var err error
		users, err = repo.GetUsersByIDs(storable)
		if err != nil {
			return nil, fmt.Errorf("resolve users: %w", err)
		}
	}

	found := make(map[uint]struct{}, len(users))
	for _, u := range users {
		found[u.ID] = struct{}{}
	}

	var missing []uint
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
		parts := make([]string, 0, len(missing))
		for _, id := range missing {
			parts = append(parts, strconv.FormatUint(uint64(id), 10))
		}
		return nil, NewValidationError(map[string]string{
			"user_ids": "Invalid user ids - object does not exist: " + strings.Join(parts, ", "),
		})
	}
	return users, nil
}
