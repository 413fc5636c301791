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

func scheduleRouter(e *env) *gin.Engine {
	h := handlers.NewScheduleHandler(e.db, e.aud)
	r := e.router(1, models.RoleManager)
	r.GET("/schedules", h.List)
	r.POST("/schedules", h.Create)
	return r
}

func scheduleClass(t *testing.T, e *env) models.FitnessClass {
	t.Helper()
	room := models.Room{RoomName: "Main Gym", Capacity: 50}
	require.NoError(t, e.db.Create(&room).Error)
	trainer := models.Trainer{FirstName: "Davi", LastName: "Rocha", Email: "davi@example.com"}
	require.NoError(t, e.db.Create(&trainer).Error)
	class := models.FitnessClass{ClassName: "Spin", Capacity: 25, RoomID: room.ID, TrainerID: trainer.ID}
	require.NoError(t, e.db.Create(&class).Error)
	return class
}

func TestScheduleCreate_BadTimes(t *testing.T) {
	e := newEnv(t)
	r := scheduleRouter(e)
	class := scheduleClass(t, e)

	tests := []struct {
		name     string
		start    string
		end      string
		wantCode string
	}{
		{"malformed start", "9am", "10:00", "invalid_time"},
		{"malformed end", "09:00", "25:00", "invalid_time"},
		{"end before start", "10:00", "09:00", "invalid_time_range"},
		{"end equals start", "09:00", "09:00", "invalid_time_range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/schedules", gin.H{
				"class_id":      class.ID,
				"schedule_date": "2026-09-01",
				"start_time":    tt.start,
				"end_time":      tt.end,
			})

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantCode, decodeBody(t, w)["error_code"])
		})
	}
}

func TestScheduleCreate_UnknownClass(t *testing.T) {
	e := newEnv(t)
	r := scheduleRouter(e)

	w := doJSON(t, r, http.MethodPost, "/schedules", gin.H{
		"class_id":      999,
		"schedule_date": "2026-09-01",
		"start_time":    "09:00",
		"end_time":      "10:00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "class_not_found", decodeBody(t, w)["error_code"])
}

func TestScheduleCreate_OKAndListOrdered(t *testing.T) {
	e := newEnv(t)
	r := scheduleRouter(e)
	class := scheduleClass(t, e)

	for _, s := range []gin.H{
		{"class_id": class.ID, "schedule_date": "2026-09-02", "start_time": "09:00", "end_time": "10:00"},
		{"class_id": class.ID, "schedule_date": "2026-09-01", "start_time": "18:00", "end_time": "19:00"},
		{"class_id": class.ID, "schedule_date": "2026-09-01", "start_time": "07:00", "end_time": "08:00"},
	} {
		require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/schedules", s).Code)
	}

	w := doJSON(t, r, http.MethodGet, "/schedules", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	rows := body["data"].([]any)
	require.Len(t, rows, 3)

	first := rows[0].(map[string]any)
	assert.Equal(t, "2026-09-01", first["schedule_date"])
	assert.Equal(t, "07:00", first["start_time"])
}
