package client

import (
	"time"

	"github.com/linskybing/clientdesk/internal/domain/user"
)

// Client is a customer organization owning zero or more projects.
type Client struct {
	ID          uint       `gorm:"primaryKey;column:id;autoIncrement"`
	ClientName  string     `gorm:"size:255;not null"`
	CreatedByID *uint      `gorm:"column:created_by_id"`
	CreatedBy   *user.User `gorm:"foreignKey:CreatedByID"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Client) TableName() string {
	return "client"
}
