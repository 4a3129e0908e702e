package database

import "goleironow/models"

// Demo dataset used to seed the memory repositories. Stands in for real
// backend data until one exists.

func SeedUsers() []models.User {
	return []models.User{
		{ID: 1, Name: "Carlos Silva", City: "São Paulo", Favorites: []int{2, 4}},
		{ID: 2, Name: "Ana Pereira", City: "Rio de Janeiro", Favorites: []int{1}},
	}
}

func SeedGoalkeepers() []models.Goalkeeper {
	return []models.Goalkeeper{
		{
			ID: 1, Name: "Muralha", Age: 28,
			City: "São Paulo", Region: "Zona Leste",
			PricePerHour: 50, Rating: 4.8,
			Availability: map[string][]string{
				"monday":    {models.PeriodEvening},
				"wednesday": {models.PeriodAfternoon, models.PeriodEvening},
				"friday":    {models.PeriodEvening},
			},
			PhotoURL:    "https://picsum.photos/seed/g1/400/400",
			Description: "Agile goalkeeper with excellent reflexes. Amateur championship experience.",
		},
		{
			ID: 2, Name: "Fábio Costa", Age: 32,
			City: "São Paulo", Region: "Zona Sul",
			PricePerHour: 70, Rating: 4.9,
			Availability: map[string][]string{
				"tuesday":  {models.PeriodEvening},
				"thursday": {models.PeriodEvening},
				"saturday": {models.PeriodMorning, models.PeriodAfternoon},
			},
			PhotoURL:    "https://picsum.photos/seed/g2/400/400",
			Description: "On-field leadership and great positioning. Safety for your back line.",
		},
		{
			ID: 3, Name: "Jefferson", Age: 25,
			City: "Rio de Janeiro", Region: "Copacabana",
			PricePerHour: 60, Rating: 4.7,
			Availability: map[string][]string{
				"monday":    {models.PeriodMorning},
				"wednesday": {models.PeriodMorning},
				"sunday":    {models.PeriodAfternoon},
			},
			PhotoURL:    "https://picsum.photos/seed/g3/400/400",
			Description: "Quick off the line. Perfect for teams that play a high defensive line.",
		},
		{
			ID: 4, Name: "Marcos", Age: 35,
			City: "São Paulo", Region: "Zona Oeste",
			PricePerHour: 80, Rating: 5.0,
			Availability: map[string][]string{
				"saturday": {models.PeriodAfternoon, models.PeriodEvening},
				"sunday":   {models.PeriodMorning},
			},
			PhotoURL:    "https://picsum.photos/seed/g4/400/400",
			Description: "Champion of everything. Experience to spare to keep your team calm.",
		},
	}
}

func SeedReservations() []models.Reservation {
	return []models.Reservation{
		{ID: 1, UserID: 1, GoalkeeperID: 2, Date: "2024-08-10", Period: models.PeriodEvening, Duration: 2, TotalPrice: 140, Status: models.StatusConfirmed},
		{ID: 2, UserID: 1, GoalkeeperID: 4, Date: "2024-07-25", Period: models.PeriodAfternoon, Duration: 1, TotalPrice: 80, Status: models.StatusCompleted},
		{ID: 3, UserID: 2, GoalkeeperID: 1, Date: "2024-08-12", Period: models.PeriodEvening, Duration: 2, TotalPrice: 100, Status: models.StatusPending},
	}
}
