package model

// Brewery IDs are assigned by the client at creation time, not generated.
type Brewery struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"size:120;index"`
	Address     string `gorm:"size:120"`
	City        string `gorm:"size:120"`
	State       string `gorm:"size:120"`
	Phone       string `gorm:"size:120"`
	WebsiteLink string `gorm:"size:120"`

	Beers []Beer `gorm:"foreignKey:BreweryID"`
}
