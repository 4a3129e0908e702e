package repository

import (
	gkRepo "goleironow/database/repository/goalkeeper"
	reservationRepo "goleironow/database/repository/reservation"
	userRepo "goleironow/database/repository/user"
)

// Re-export the UserRepository interface and constructors.
type UserRepository = userRepo.UserRepository

var (
	NewMemoryUserRepo = userRepo.NewMemoryUserRepo
	NewMongoUserRepo  = userRepo.NewMongoUserRepo
)

// Re-export the GoalkeeperRepository interface and constructors.
type GoalkeeperRepository = gkRepo.GoalkeeperRepository

var (
	NewMemoryGoalkeeperRepo = gkRepo.NewMemoryGoalkeeperRepo
	NewMongoGoalkeeperRepo  = gkRepo.NewMongoGoalkeeperRepo
)

// Re-export the ReservationRepository interface and constructors.
type ReservationRepository = reservationRepo.ReservationRepository

var (
	NewMemoryReservationRepo = reservationRepo.NewMemoryReservationRepo
	NewMongoReservationRepo  = reservationRepo.NewMongoReservationRepo
)
