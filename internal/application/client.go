package application

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clientdesk/internal/domain/audit"
	"github.com/linskybing/clientdesk/internal/domain/client"
	"github.com/linskybing/clientdesk/internal/repository"
	"github.com/linskybing/clientdesk/pkg/utils"
	"gorm.io/gorm"
)

type ClientService struct {
	Repos *repository.Repos
}

func NewClientService(repos *repository.Repos) *ClientService {
	return &ClientService{
		Repos: repos,
	}
}

func (s *ClientService) ListClients() ([]client.ClientDTO, error) {
	clients, err := s.Repos.Client.ListClients()
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	out := make([]client.ClientDTO, 0, len(clients))
	for _, c := range clients {
		out = append(out, client.ToDTO(c))
	}
	return out, nil
}

// GetClient returns the client with its projects nested.
func (s *ClientService) GetClient(id uint) (client.ClientDetailDTO, error) {
	c, err := s.getClient(id)
	if err != nil {
		return client.ClientDetailDTO{}, err
	}
	return s.detail(c)
}

func (s *ClientService) CreateClient(c *gin.Context, createdBy uint, input client.CreateClientDTO) (client.ClientDTO, error) {
	if errs := input.Validate(); len(errs) > 0 {
		return client.ClientDTO{}, NewValidationError(errs)
	}

	creator, err := s.Repos.User.GetUserByID(createdBy)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return client.ClientDTO{}, ErrUserNotFound
		}
		return client.ClientDTO{}, fmt.Errorf("load creator: %w", err)
	}

	cl := &client.Client{
		ClientName:  input.ClientName,
		CreatedByID: &creator.ID,
	}
	if err := s.Repos.Client.CreateClient(cl); err != nil {
		return client.ClientDTO{}, fmt.Errorf("create client: %w", err)
	}
	cl.CreatedBy = &creator

	out := client.ToDTO(*cl)
	utils.LogAuditWithConsole(c, audit.ActionCreate, "client", fmt.Sprintf("id=%d", cl.ID), nil, out, "", s.Repos.Audit)
	return out, nil
}

// UpdateClient replaces client_name. With partial set (PATCH) an absent
// client_name leaves the client unchanged.
func (s *ClientService) UpdateClient(c *gin.Context, id uint, input client.UpdateClientDTO, partial bool) (client.ClientDetailDTO, error) {
	cl, err := s.getClient(id)
	if err != nil {
		return client.ClientDetailDTO{}, err
	}
	if errs := input.Validate(partial); len(errs) > 0 {
		return client.ClientDetailDTO{}, NewValidationError(errs)
	}

	before := client.ToDTO(cl)
	if input.ClientName != nil {
		cl.ClientName = *input.ClientName
		if err := s.Repos.Client.UpdateClient(&cl); err != nil {
			return client.ClientDetailDTO{}, fmt.Errorf("update client: %w", err)
		}
		utils.LogAuditWithConsole(c, audit.ActionUpdate, "client", fmt.Sprintf("id=%d", cl.ID), before, client.ToDTO(cl), "", s.Repos.Audit)
	}

	return s.detail(cl)
}

// DeleteClient removes the client, its projects and their assignments.
func (s *ClientService) DeleteClient(c *gin.Context, id uint) error {
	cl, err := s.getClient(id)
	if err != nil {
		return err
	}

	if err := s.Repos.Client.DeleteClient(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("delete client: %w", err)
	}

	utils.LogAuditWithConsole(c, audit.ActionDelete, "client", fmt.Sprintf("id=%d", cl.ID), client.ToDTO(cl), nil, "", s.Repos.Audit)
	return nil
}

func (s *ClientService) getClient(id uint) (client.Client, error) {
	cl, err := s.Repos.Client.GetClientByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return client.Client{}, ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("get client %d: %w", id, err)
	}
	return cl, nil
}

func (s *ClientService) detail(cl client.Client) (client.ClientDetailDTO, error) {
	projects, err := s.Repos.Project.ListProjectsByClientID(cl.ID)
	if err != nil {
		return client.ClientDetailDTO{}, fmt.Errorf("list projects of client %d: %w", cl.ID, err)
	}
	return client.ToDetailDTO(cl, projects), nil
}
