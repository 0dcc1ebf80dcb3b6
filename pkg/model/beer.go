package model

type Beer struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"index"`
	Description string `gorm:"size:500"`
	BreweryID   string `gorm:"size:36"`
	StyleID     int

	Brewery Brewery `gorm:"foreignKey:BreweryID"`
	Style   Style   `gorm:"foreignKey:StyleID"`
}

type Style struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}
