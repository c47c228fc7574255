package entities

// Recipe intentionally carries no enforced foreign keys to users or
// cuisines; the owning user is referenced by id only. Ingredients and
// steps are newline-delimited text, tags comma-separated.
type Recipe struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint    `json:"user_id"`
	ImageURI    *string `json:"image_uri,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CookingTime int     `json:"cooking_time"`
	Difficulty  string  `json:"difficulty"`
	CuisineID   *uint   `json:"cuisine_id,omitempty"`
	Ingredients string  `gorm:"type:text" json:"ingredients"`
	Steps       string  `gorm:"type:text" json:"steps"`
	Tags        string  `json:"tags"`

	Timestamp
}
