package user

import "time"

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:10;not null" json:"name"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	AccessToken string    `gorm:"size:512;uniqueIndex;not null" json:"accessToken"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RegisterReq struct {
	Name     string `json:"name" validate:"required,max=10"`
	Password string `json:"password" validate:"required"`
}

type LoginReq struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}
