package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gymstack/gym-manager/internal/config"
	"github.com/gymstack/gym-manager/internal/models"
	"github.com/gymstack/gym-manager/internal/routes"
	"github.com/gymstack/gym-manager/internal/testutil"
)

type apiTest struct {
	t  *testing.T
	r  *gin.Engine
	db *gorm.DB

	tokens map[string]string // role -> bearer token
}

func newAPITest(t *testing.T) *apiTest {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	cfg := &config.Config{JWTSecret: "test-secret"}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)

	at := &apiTest{t: t, r: r, db: db, tokens: map[string]string{}}

	for _, role := range models.Roles {
		hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
		require.NoError(t, err)
		user := models.User{Username: role + "-user", PasswordHash: string(hashed), Role: role}
		require.NoError(t, db.Create(&user).Error)
		at.tokens[role] = at.login(role+"-user", "password")
	}

	return at
}

func (at *apiTest) login(username, password string) string {
	at.t.Helper()

	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	at.r.ServeHTTP(w, req)
	require.Equal(at.t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(at.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func (at *apiTest) do(role, method, path string, body any) *httptest.ResponseRecorder {
	at.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(at.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", "Bearer "+at.tokens[role])
	}

	w := httptest.NewRecorder()
	at.r.ServeHTTP(w, req)
	return w
}

func TestRoutes_RequireAuthentication(t *testing.T) {
	at := newAPITest(t)

	for _, path := range []string{"/api/me", "/api/members", "/api/classes", "/api/admin/stats"} {
		w := at.do("", http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRoutes_MemberGates(t *testing.T) {
	at := newAPITest(t)
	payload := gin.H{"first_name": "Ana", "last_name": "Silva", "email": "ana@example.com"}

	// Trainers can look members up but not change them.
	assert.Equal(t, http.StatusOK, at.do(models.RoleTrainer, http.MethodGet, "/api/members", nil).Code)
	assert.Equal(t, http.StatusForbidden, at.do(models.RoleTrainer, http.MethodPost, "/api/members", payload).Code)

	// A blocked request must leave no row behind.
	var count int64
	require.NoError(t, at.db.Model(&models.Member{}).Count(&count).Error)
	assert.Zero(t, count)

	// Member accounts see nothing under /members at all.
	assert.Equal(t, http.StatusForbidden, at.do(models.RoleMember, http.MethodGet, "/api/members", nil).Code)

	assert.Equal(t, http.StatusCreated, at.do(models.RoleManager, http.MethodPost, "/api/members", payload).Code)
}

func TestRoutes_PlanGates(t *testing.T) {
	at := newAPITest(t)
	payload := gin.H{"plan_name": "Student", "monthly_fee": 19.99}

	assert.Equal(t, http.StatusOK, at.do(models.RoleManager, http.MethodGet, "/api/plans", nil).Code)
	assert.Equal(t, http.StatusForbidden, at.do(models.RoleManager, http.MethodPost, "/api/plans", payload).Code)
	assert.Equal(t, http.StatusForbidden, at.do(models.RoleTrainer, http.MethodGet, "/api/plans", nil).Code)
	assert.Equal(t, http.StatusCreated, at.do(models.RoleAdmin, http.MethodPost, "/api/plans", payload).Code)
}

func TestRoutes_UserAdminOnly(t *testing.T) {
	at := newAPITest(t)

	for _, role := range []string{models.RoleManager, models.RoleTrainer, models.RoleMember} {
		assert.Equal(t, http.StatusForbidden, at.do(role, http.MethodGet, "/api/users", nil).Code, role)
	}
	assert.Equal(t, http.StatusOK, at.do(models.RoleAdmin, http.MethodGet, "/api/users", nil).Code)
}

func TestRoutes_AdminArea(t *testing.T) {
	at := newAPITest(t)

	assert.Equal(t, http.StatusOK, at.do(models.RoleAdmin, http.MethodGet, "/api/admin/stats", nil).Code)
	assert.Equal(t, http.StatusOK, at.do(models.RoleAdmin, http.MethodGet, "/api/admin/audit-logs", nil).Code)
	assert.Equal(t, http.StatusForbidden, at.do(models.RoleManager, http.MethodGet, "/api/admin/stats", nil).Code)
}

func TestRoutes_SharedResources(t *testing.T) {
	at := newAPITest(t)

	// Any authenticated account can read the class calendar and staff
	// directory; staff mutations stay admin-only.
	assert.Equal(t, http.StatusOK, at.do(models.RoleMember, http.MethodGet, "/api/classes", nil).Code)
	assert.Equal(t, http.StatusOK, at.do(models.RoleMember, http.MethodGet, "/api/calendar", nil).Code)
	assert.Equal(t, http.StatusOK, at.do(models.RoleMember, http.MethodGet, "/api/staff", nil).Code)

	payload := gin.H{"first_name": "Gil", "last_name": "Nunes", "email": "gil@example.com"}
	assert.Equal(t, http.StatusForbidden, at.do(models.RoleManager, http.MethodPost, "/api/staff", payload).Code)
	assert.Equal(t, http.StatusCreated, at.do(models.RoleAdmin, http.MethodPost, "/api/staff", payload).Code)
}

func TestRoutes_Me(t *testing.T) {
	at := newAPITest(t)

	w := at.do(models.RoleTrainer, http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "trainer-user", resp.Username)
	assert.Equal(t, models.RoleTrainer, resp.Role)
}

func TestRoutes_StatsPayload(t *testing.T) {
	at := newAPITest(t)

	member := models.Member{FirstName: "Ana", LastName: "Silva", Email: "ana@example.com", MembershipStatus: "active"}
	require.NoError(t, at.db.Create(&member).Error)
	require.NoError(t, at.db.Create(&models.Payment{
		MemberID: member.ID, Amount: 49.99, PaymentDate: "2026-08-01", PaymentStatus: "paid",
	}).Error)
	require.NoError(t, at.db.Create(&models.Payment{
		MemberID: member.ID, Amount: 10, PaymentDate: "2026-08-15", PaymentStatus: "pending",
	}).Error)

	w := at.do(models.RoleAdmin, http.MethodGet, "/api/admin/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		Members       int64   `json:"members"`
		ActiveMembers int64   `json:"active_members"`
		Payments      int64   `json:"payments"`
		Revenue       float64 `json:"revenue"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats.Members)
	assert.EqualValues(t, 1, stats.ActiveMembers)
	assert.EqualValues(t, 2, stats.Payments)
	assert.InDelta(t, 49.99, stats.Revenue, 0.001)
}
