package entity

import "time"

const (
	TableNameUsers = "users"

	UsersFieldID          = "id"
	UsersFieldEmail       = "email"
	UsersFieldUsername    = "username"
	UsersFieldPreferences = "preferences"
	UsersFieldCreatedAt   = "created_at"
	UsersFieldUpdatedAt   = "updated_at"
)

type User struct {
	ID          string    `xorm:"pk 'id'" json:"id"`
	Email       string    `xorm:"email" json:"email"`
	Username    string    `xorm:"username" json:"username"`
	Preferences string    `xorm:"preferences" json:"preferences"` // JSONB 类型，存储为 JSON 字符串
	CreatedAt   time.Time `xorm:"created_at" json:"created_at"`
	UpdatedAt   time.Time `xorm:"updated_at" json:"updated_at"`
}

func (e *User) TableName() string {
	return TableNameUsers
}
