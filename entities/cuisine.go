package entities

type Cuisine struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `json:"name"`

	Timestamp
}
