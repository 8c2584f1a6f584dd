package repository

import (
	"github.com/linskybing/clientdesk/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	GetProjectByID(id uint) (project.Project, error)
	CreateProject(p *project.Project) error
	ListProjectsByClientID(clientID uint) ([]project.Project, error)
	ListProjectsByUserID(userID uint) ([]project.Project, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

// detailed selects projects with the owning client's name, the creator and
// the assigned users loaded.
func (r *DBProjectRepo) detailed() *gorm.DB {
	return r.db.Model(&project.Project{}).
		Select("project.*, client.client_name AS client_name").
		Joins("JOIN client ON client.id = project.client_id").
		Preload("CreatedBy").
		Preload("Users", func(db *gorm.DB) *gorm.DB {
			return db.Order("users.id")
		})
}

func (r *DBProjectRepo) GetProjectByID(id uint) (project.Project, error) {
	var p project.Project
	err := r.detailed().Where("project.id = ?", id).First(&p).Error
	return p, err
}

// CreateProject inserts the project row and its project_users rows atomically.
// Assigned users must already exist; they are linked, never upserted.
func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("CreatedBy", "Users.*").Create(p).Error
	})
}

func (r *DBProjectRepo) ListProjectsByClientID(clientID uint) ([]project.Project, error) {
	projects := []project.Project{}
	err := r.detailed().
		Where("project.client_id = ?", clientID).
		Order("project.id").
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjectsByUserID(userID uint) ([]project.Project, error) {
	projects := []project.Project{}
	assigned := r.db.Table("project_users").Select("project_id").Where("user_id = ?", userID)
	err := r.detailed().
		Where("project.id IN (?)", assigned).
		Order("project.id").
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}
