package application

import (
	"github.com/linskybing/clientdesk/internal/repository"
)

type Services struct {
	Audit   *AuditService
	Client  *ClientService
	Project *ProjectService
	User    *UserService
}

func New(repos *repository.Repos, tokens TokenIssuer) *Services {
	return &Services{
		Audit:   NewAuditService(repos),
		Client:  NewClientService(repos),
		Project: NewProjectService(repos),
		User:    NewUserService(repos, tokens),
	}
}
