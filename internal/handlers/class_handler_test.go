package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymstack/gym-manager/internal/handlers"
	"github.com/gymstack/gym-manager/internal/models"
)

func classRouter(e *env) *gin.Engine {
	h := handlers.NewClassHandler(e.db, e.aud)
	r := e.router(1, models.RoleManager)
	r.GET("/classes", h.List)
	r.POST("/classes", h.Create)
	r.PUT("/classes/:id", h.Update)
	r.DELETE("/classes/:id", h.Delete)
	return r
}

func classFixtures(t *testing.T, e *env) (models.Room, models.Trainer) {
	t.Helper()
	room := models.Room{RoomName: "Main Gym", Capacity: 50}
	require.NoError(t, e.db.Create(&room).Error)
	trainer := models.Trainer{FirstName: "Carla", LastName: "Mendes", Email: "carla@example.com"}
	require.NoError(t, e.db.Create(&trainer).Error)
	return room, trainer
}

func TestClassCreate_UnknownRoom(t *testing.T) {
	e := newEnv(t)
	r := classRouter(e)
	_, trainer := classFixtures(t, e)

	w := doJSON(t, r, http.MethodPost, "/classes", gin.H{
		"class_name": "HIIT",
		"capacity":   25,
		"room_id":    999,
		"trainer_id": trainer.ID,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "room_not_found", decodeBody(t, w)["error_code"])

	var count int64
	require.NoError(t, e.db.Model(&models.FitnessClass{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestClassCreate_UnknownTrainer(t *testing.T) {
	e := newEnv(t)
	r := classRouter(e)
	room, _ := classFixtures(t, e)

	w := doJSON(t, r, http.MethodPost, "/classes", gin.H{
		"class_name": "HIIT",
		"capacity":   25,
		"room_id":    room.ID,
		"trainer_id": 999,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "trainer_not_found", decodeBody(t, w)["error_code"])
}

func TestClassCreate_OK(t *testing.T) {
	e := newEnv(t)
	r := classRouter(e)
	room, trainer := classFixtures(t, e)

	w := doJSON(t, r, http.MethodPost, "/classes", gin.H{
		"class_name": "Yoga",
		"capacity":   15,
		"room_id":    room.ID,
		"trainer_id": trainer.ID,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Yoga", decodeBody(t, w)["class_name"])
}

func TestClassUpdate_ChecksNewRefs(t *testing.T) {
	e := newEnv(t)
	r := classRouter(e)
	room, trainer := classFixtures(t, e)

	class := models.FitnessClass{ClassName: "Yoga", Capacity: 15, RoomID: room.ID, TrainerID: trainer.ID}
	require.NoError(t, e.db.Create(&class).Error)

	w := doJSON(t, r, http.MethodPut, "/classes/1", gin.H{
		"class_name": "Yoga",
		"capacity":   15,
		"room_id":    999,
		"trainer_id": trainer.ID,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "room_not_found", decodeBody(t, w)["error_code"])
}
