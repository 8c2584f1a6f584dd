package repository

import (
	"github.com/linskybing/clientdesk/internal/domain/client"
	"github.com/linskybing/clientdesk/internal/domain/project"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClientRepo interface {
	ListClients() ([]client.Client, error)
	GetClientByID(id uint) (client.Client, error)
	CreateClient(c *client.Client) error
	UpdateClient(c *client.Client) error
	DeleteClient(id uint) error
	WithTx(tx *gorm.DB) ClientRepo
}

type DBClientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) *DBClientRepo {
	return &DBClientRepo{
		db: db,
	}
}

func (r *DBClientRepo) ListClients() ([]client.Client, error) {
	var clients []client.Client
	err := r.db.Preload("CreatedBy").Order("id").Find(&clients).Error
	return clients, err
}

func (r *DBClientRepo) GetClientByID(id uint) (client.Client, error) {
	var c client.Client
	err := r.db.Preload("CreatedBy").First(&c, id).Error
	return c, err
}

func (r *DBClientRepo) CreateClient(c *client.Client) error {
	return r.db.Omit(clause.Associations).Create(c).Error
}

func (r *DBClientRepo) UpdateClient(c *client.Client) error {
	return r.db.Omit(clause.Associations).Save(c).Error
}

// DeleteClient removes the client together with its projects and their
// assignments in one transaction. The schema cascades as well.
func (r *DBClientRepo) DeleteClient(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		projectIDs := tx.Model(&project.Project{}).Select("id").Where("client_id = ?", id)

		if err := tx.Exec("DELETE FROM project_users WHERE project_id IN (?)", projectIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&project.Project{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&client.Client{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *DBClientRepo) WithTx(tx *gorm.DB) ClientRepo {
	if tx == nil {
		return r
	}
	return &DBClientRepo{
		db: tx,
	}
}
