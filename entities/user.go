package entities

type User struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	// Stored and compared as plain text. Login is a direct equality match,
	// not an auth scheme.
	Password string `json:"-"`

	Timestamp
}
