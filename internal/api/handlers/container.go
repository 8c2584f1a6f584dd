package handlers

import (
	"github.com/linskybing/clientdesk/internal/application"
)

type Handlers struct {
	Audit   *AuditHandler
	Client  *ClientHandler
	Health  *HealthHandler
	Project *ProjectHandler
	User    *UserHandler
}

func New(svc *application.Services, db Pinger) *Handlers {
	return &Handlers{
		Audit:   NewAuditHandler(svc.Audit),
		Client:  NewClientHandler(svc.Client),
		Health:  NewHealthHandler(db),
		Project: NewProjectHandler(svc.Project),
		User:    NewUserHandler(svc.User),
	}
}
