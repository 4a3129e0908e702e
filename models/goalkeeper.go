package models

// Goalkeeper represents a bookable goalkeeper profile.
type Goalkeeper struct {
	ID           int                 `bson:"id" json:"id"`
	Name         string              `bson:"name" json:"name"`
	Age          int                 `bson:"age" json:"age"`
	City         string              `bson:"city" json:"city"`
	Region       string              `bson:"region" json:"region"`
	PricePerHour float64             `bson:"price_per_hour" json:"pricePerHour"`
	Rating       float64             `bson:"rating" json:"rating"`
	Availability map[string][]string `bson:"availability" json:"availability"` // weekday -> periods
	PhotoURL     string              `bson:"photo_url" json:"photoUrl"`
	Description  string              `bson:"description" json:"description"`
}
