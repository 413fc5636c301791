package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymstack/gym-manager/internal/models"
	"github.com/gymstack/gym-manager/internal/testutil"
)

func TestMemberDelete_CascadesDependents(t *testing.T) {
	db := testutil.NewTestDB(t)

	plan := models.MembershipPlan{PlanName: "Basic", MonthlyFee: 29.99}
	require.NoError(t, db.Create(&plan).Error)

	member := models.Member{FirstName: "Ana", LastName: "Silva", Email: "ana@example.com"}
	require.NoError(t, db.Create(&member).Error)

	history := models.MembershipHistory{MemberID: member.ID, PlanID: plan.ID, StartDate: "2026-01-01"}
	require.NoError(t, db.Create(&history).Error)

	payment := models.Payment{MemberID: member.ID, Amount: 29.99, PaymentDate: "2026-01-05", PaymentStatus: "paid"}
	require.NoError(t, db.Create(&payment).Error)

	require.NoError(t, db.Delete(&models.Member{}, member.ID).Error)

	var histories, payments int64
	require.NoError(t, db.Model(&models.MembershipHistory{}).Count(&histories).Error)
	require.NoError(t, db.Model(&models.Payment{}).Count(&payments).Error)
	assert.Zero(t, histories)
	assert.Zero(t, payments)
}

func TestPlanDelete_ClearsMemberCurrentPlan(t *testing.T) {
	db := testutil.NewTestDB(t)

	plan := models.MembershipPlan{PlanName: "Premium", MonthlyFee: 79.99}
	require.NoError(t, db.Create(&plan).Error)

	member := models.Member{
		FirstName:     "Bruno",
		LastName:      "Costa",
		Email:         "bruno@example.com",
		CurrentPlanID: &plan.ID,
	}
	require.NoError(t, db.Create(&member).Error)

	require.NoError(t, db.Delete(&models.MembershipPlan{}, plan.ID).Error)

	var got models.Member
	require.NoError(t, db.First(&got, member.ID).Error)
	assert.Nil(t, got.CurrentPlanID)
}

func TestRoomDelete_ClearsEquipmentRoom(t *testing.T) {
	db := testutil.NewTestDB(t)

	room := models.Room{RoomName: "Cardio Room", Capacity: 30}
	require.NoError(t, db.Create(&room).Error)

	item := models.Equipment{EquipmentName: "Treadmill", RoomID: &room.ID}
	require.NoError(t, db.Create(&item).Error)

	require.NoError(t, db.Delete(&models.Room{}, room.ID).Error)

	var got models.Equipment
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Nil(t, got.RoomID)
}

func TestRoomDelete_BlockedByClass(t *testing.T) {
	db := testutil.NewTestDB(t)

	room := models.Room{RoomName: "Yoga Studio", Capacity: 20}
	require.NoError(t, db.Create(&room).Error)

	trainer := models.Trainer{FirstName: "Carla", LastName: "Mendes", Email: "carla@example.com"}
	require.NoError(t, db.Create(&trainer).Error)

	class := models.FitnessClass{ClassName: "Yoga", Capacity: 15, RoomID: room.ID, TrainerID: trainer.ID}
	require.NoError(t, db.Create(&class).Error)

	assert.Error(t, db.Delete(&models.Room{}, room.ID).Error)
	assert.Error(t, db.Delete(&models.Trainer{}, trainer.ID).Error)

	var rooms int64
	require.NoError(t, db.Model(&models.Room{}).Count(&rooms).Error)
	assert.EqualValues(t, 1, rooms)
}

func TestClassDelete_CascadesSchedulesAndAttendance(t *testing.T) {
	db := testutil.NewTestDB(t)

	room := models.Room{RoomName: "Main Gym", Capacity: 50}
	require.NoError(t, db.Create(&room).Error)
	trainer := models.Trainer{FirstName: "Davi", LastName: "Rocha", Email: "davi@example.com"}
	require.NoError(t, db.Create(&trainer).Error)
	class := models.FitnessClass{ClassName: "HIIT", Capacity: 25, RoomID: room.ID, TrainerID: trainer.ID}
	require.NoError(t, db.Create(&class).Error)

	schedule := models.ClassSchedule{ClassID: class.ID, ScheduleDate: "2026-09-01", StartTime: "09:00", EndTime: "10:00"}
	require.NoError(t, db.Create(&schedule).Error)

	member := models.Member{FirstName: "Eva", LastName: "Lima", Email: "eva@example.com"}
	require.NoError(t, db.Create(&member).Error)
	att := models.Attendance{MemberID: member.ID, ScheduleID: schedule.ID, Status: "present"}
	require.NoError(t, db.Create(&att).Error)

	require.NoError(t, db.Delete(&models.FitnessClass{}, class.ID).Error)

	var schedules, attendance int64
	require.NoError(t, db.Model(&models.ClassSchedule{}).Count(&schedules).Error)
	require.NoError(t, db.Model(&models.Attendance{}).Count(&attendance).Error)
	assert.Zero(t, schedules)
	assert.Zero(t, attendance)
}
