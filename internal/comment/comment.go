package comment

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Message   string    `gorm:"size:140;not null" json:"message"`
	Likes     int64     `gorm:"not null;default:0" json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateReq struct {
	Message string `json:"message" validate:"required,min=5,max=140"`
}
