package reservation_test

import (
	"testing"

	"goleironow/database"
	gkRepo "goleironow/database/repository/goalkeeper"
	reservationRepo "goleironow/database/repository/reservation"
	"goleironow/models"
	"goleironow/services/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*reservation.DefaultReservationService, *gkRepo.MemoryGoalkeeperRepo) {
	gks := gkRepo.NewMemoryGoalkeeperRepo(database.SeedGoalkeepers(), 0)
	svc := &reservation.DefaultReservationService{
		Reservations: reservationRepo.NewMemoryReservationRepo(database.SeedReservations(), 0),
		Goalkeepers:  gks,
	}
	return svc, gks
}

func TestCreateSnapshotsPrice(t *testing.T) {
	svc, _ := newTestService()

	// Fábio Costa charges 70/hour; two hours come to 140.
	res, err := svc.Create(1, reservation.CreateInput{
		GoalkeeperID: 2,
		Date:         "2024-09-05",
		Period:       models.PeriodEvening,
		Duration:     2,
	})
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.Equal(t, models.StatusPending, res.Status)
	assert.Equal(t, 140.0, res.TotalPrice)
}

func TestCreatedPriceSurvivesRateChange(t *testing.T) {
	svc, gks := newTestService()

	res, err := svc.Create(1, reservation.CreateInput{
		GoalkeeperID: 2,
		Date:         "2024-09-05",
		Period:       models.PeriodEvening,
		Duration:     2,
	})
	require.NoError(t, err)

	gk, err := gks.GetByID(2)
	require.NoError(t, err)
	gk.PricePerHour = 200
	require.NoError(t, gks.Update(gk))

	list, err := svc.ListForUser(1)
	require.NoError(t, err)
	for _, r := range list {
		if r.ID == res.ID {
			assert.Equal(t, 140.0, r.TotalPrice)
			return
		}
	}
	t.Fatalf("reservation %d not found in user list", res.ID)
}

func TestCreateRejectsBadInput(t *testing.T) {
	svc, _ := newTestService()

	cases := []reservation.CreateInput{
		{GoalkeeperID: 1, Date: "", Period: models.PeriodEvening, Duration: 1},
		{GoalkeeperID: 1, Date: "2024-09-05", Period: "midnight", Duration: 1},
		{GoalkeeperID: 1, Date: "2024-09-05", Period: models.PeriodEvening, Duration: 0},
	}
	for _, input := range cases {
		_, err := svc.Create(1, input)
		assert.ErrorIs(t, err, reservation.ErrInvalidInput)
	}
}

func TestCreateUnknownGoalkeeper(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(1, reservation.CreateInput{
		GoalkeeperID: 99,
		Date:         "2024-09-05",
		Period:       models.PeriodMorning,
		Duration:     1,
	})
	assert.ErrorIs(t, err, reservation.ErrGoalkeeperNotFound)
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newTestService()

	list, err := svc.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-08-10", list[0].Date)
	assert.Equal(t, "2024-07-25", list[1].Date)

	received, err := svc.ListForGoalkeeper(1)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, 3, received[0].ID)
}

func TestGoalkeeperConfirmsPending(t *testing.T) {
	svc, _ := newTestService()

	// Reservation 3 is pending for goalkeeper 1.
	updated, err := svc.UpdateStatus(models.RoleGoalkeeper, 1, 3, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
}

func TestGoalkeeperRejectsPending(t *testing.T) {
	svc, _ := newTestService()

	updated, err := svc.UpdateStatus(models.RoleGoalkeeper, 1, 3, models.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, updated.Status)
}

func TestClientCancelsPending(t *testing.T) {
	svc, _ := newTestService()

	updated, err := svc.UpdateStatus(models.RoleClient, 2, 3, models.StatusCanceled)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCanceled, updated.Status)
}

func TestClientCannotConfirm(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateStatus(models.RoleClient, 2, 3, models.StatusConfirmed)
	assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
}

func TestGoalkeeperCompletesConfirmed(t *testing.T) {
	svc, _ := newTestService()

	// Reservation 1 is confirmed for goalkeeper 2.
	updated, err := svc.UpdateStatus(models.RoleGoalkeeper, 2, 1, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
}

func TestTerminalStatusIsFinal(t *testing.T) {
	svc, _ := newTestService()

	// Reservation 2 is completed; nobody can move it anywhere.
	targets := []models.ReservationStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusCanceled,
	}
	for _, target := range targets {
		_, err := svc.UpdateStatus(models.RoleClient, 1, 2, target)
		assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
		_, err = svc.UpdateStatus(models.RoleGoalkeeper, 4, 2, target)
		assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
	}
}

func TestUpdateStatusEnforcesOwnership(t *testing.T) {
	svc, _ := newTestService()

	// Reservation 3 belongs to user 2 and goalkeeper 1.
	_, err := svc.UpdateStatus(models.RoleClient, 1, 3, models.StatusCanceled)
	assert.ErrorIs(t, err, reservation.ErrNotAllowed)

	_, err = svc.UpdateStatus(models.RoleGoalkeeper, 2, 3, models.StatusConfirmed)
	assert.ErrorIs(t, err, reservation.ErrNotAllowed)
}

func TestUpdateStatusUnknownReservation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateStatus(models.RoleClient, 1, 99, models.StatusCanceled)
	assert.ErrorIs(t, err, reservation.ErrReservationNotFound)
}

func TestUpdateStatusUnknownTarget(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateStatus(models.RoleClient, 2, 3, models.ReservationStatus("archived"))
	assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
}
