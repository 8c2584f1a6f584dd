package user

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Username  string    `gorm:"size:150;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UsernameOrNil renders a nullable creator reference the way API responses expect it.
func UsernameOrNil(u *User) *string {
	if u == nil || u.ID == 0 {
		return nil
	}
	name := u.Username
	return &name
}
