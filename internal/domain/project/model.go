package project

import (
	"time"

	"github.com/linskybing/clientdesk/internal/domain/user"
)

// Project is a unit of work under one client, assigned to zero or more users.
type Project struct {
	ID          uint        `gorm:"primaryKey;column:id;autoIncrement"`
	ProjectName string      `gorm:"size:255;not null"`
	ClientID    uint        `gorm:"not null;index"`
	ClientName  string      `gorm:"->;-:migration"` // filled by the join in read queries
	CreatedByID *uint       `gorm:"column:created_by_id"`
	CreatedBy   *user.User  `gorm:"foreignKey:CreatedByID"`
	Users       []user.User `gorm:"many2many:project_users;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime"`
}

func (Project) TableName() string {
	return "project"
}
