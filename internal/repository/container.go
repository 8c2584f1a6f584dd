package repository

import (
	"gorm.io/gorm"
)

//go:generate mockgen -source=client.go -destination=mock/client_mock.go -package=mock
//go:generate mockgen -source=project.go -destination=mock/project_mock.go -package=mock
//go:generate mockgen -source=user.go -destination=mock/user_mock.go -package=mock
//go:generate mockgen -source=audit.go -destination=mock/audit_mock.go -package=mock

type Repos struct {
	Client  ClientRepo
	Project ProjectRepo
	User    UserRepo
	Audit   AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Client:  NewClientRepo(db),
		Project: NewProjectRepo(db),
		User:    NewUserRepo(db),
		Audit:   NewAuditRepo(db),
		db:      db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Client:  r.Client.WithTx(tx),
		Project: r.Project.WithTx(tx),
		User:    r.User.WithTx(tx),
		Audit:   r.Audit.WithTx(tx),
		db:      tx,
	}
}

// ExecTx runs fn against repositories bound to a single transaction.
// A container built without a database handle (mocked repositories) runs fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
