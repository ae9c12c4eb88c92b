package db_models

type User struct {
	BaseModel
	Name              string
	Email             string `gorm:"uniqueIndex"`
	ProfilePictureURL string

	Trips []Trip
}
