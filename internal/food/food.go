package food

import "time"

type Food struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255" json:"title"`
	Link         string    `gorm:"size:512" json:"link"`
	ImageURL     string    `gorm:"size:512" json:"imageUrl"`
	ImageID      string    `gorm:"size:255" json:"imageId"`
	Description  string    `json:"description"`
	Type         string    `gorm:"size:100" json:"type"`
	RestaurantID *int      `json:"restaurantId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateReq struct {
	Title        string
	Link         string
	Description  string
	Type         string
	RestaurantID *int
}
