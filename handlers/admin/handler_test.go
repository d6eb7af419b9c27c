package admin

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"servicoperto-backend/testutils"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestGetStats_Success(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(`SELECT role, COUNT\(\*\) AS count FROM "users" GROUP BY`).
		WillReturnRows(mock.NewRows([]string{"role", "count"}).
			AddRow("CUSTOMER", 30).
			AddRow("PROVIDER", 12))
	mock.ExpectQuery(`SELECT neighborhood, COUNT\(\*\) AS count FROM "providers" GROUP BY`).
		WillReturnRows(mock.NewRows([]string{"neighborhood", "count"}).
			AddRow("Pinheiros", 7).
			AddRow("Moema", 5))
	mock.ExpectQuery(`SELECT DATE_TRUNC\('day', created_at\) AS day, COUNT\(\*\) AS count`).
		WillReturnRows(mock.NewRows([]string{"day", "count"}).
			AddRow(now, 3).
			AddRow(now.AddDate(0, 0, -1), 5))

	r := testutils.SetupTestRouter()
	r.GET("/admin/stats", NewHandler(gormDB).GetStats)

	req, _ := http.NewRequest(http.MethodGet, "/admin/stats", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var stats struct {
		Summary struct {
			TotalUsers int64 `json:"totalUsers"`
			Roles      []struct {
				Role  string `json:"role"`
				Count int64  `json:"count"`
			} `json:"roles"`
		} `json:"summary"`
		Regions []struct {
			Neighborhood string `json:"neighborhood"`
			Count        int64  `json:"count"`
		} `json:"regions"`
		Trends []struct {
			Count int64 `json:"count"`
		} `json:"trends"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &stats))
	assert.Equal(t, int64(42), stats.Summary.TotalUsers)
	assert.Equal(t, 2, len(stats.Summary.Roles))
	assert.Equal(t, "CUSTOMER", stats.Summary.Roles[0].Role)
	assert.Equal(t, 2, len(stats.Regions))
	assert.Equal(t, "Pinheiros", stats.Regions[0].Neighborhood)
	assert.Equal(t, int64(7), stats.Regions[0].Count)
	assert.Equal(t, 2, len(stats.Trends))
}

func TestGetStats_StoreFailureServesEmptyDashboard(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnError(gorm.ErrInvalidDB)

	r := testutils.SetupTestRouter()
	r.GET("/admin/stats", NewHandler(gormDB).GetStats)

	req, _ := http.NewRequest(http.MethodGet, "/admin/stats", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"summary":{"totalUsers":0,"roles":[]},"regions":[],"trends":[]}`, resp.Body.String())
}

func TestGetStats_PartialFailureStillServesEmptyDashboard(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(`SELECT role, COUNT\(\*\) AS count FROM "users" GROUP BY`).
		WillReturnError(gorm.ErrInvalidDB)

	r := testutils.SetupTestRouter()
	r.GET("/admin/stats", NewHandler(gormDB).GetStats)

	req, _ := http.NewRequest(http.MethodGet, "/admin/stats", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"summary":{"totalUsers":0,"roles":[]},"regions":[],"trends":[]}`, resp.Body.String())
}

func TestListUsers_Success(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT u.id, u.name, u.email, u.role, u.created_at, p.service_type, p.neighborhood FROM users u LEFT JOIN providers p`).
		WillReturnRows(mock.NewRows([]string{"id", "name", "email", "role", "created_at", "service_type", "neighborhood"}).
			AddRow("223e4567-e89b-12d3-a456-426614174000", "Carlos", "carlos@example.com", "PROVIDER", now, "Eletricista", "Pinheiros").
			AddRow("123e4567-e89b-12d3-a456-426614174000", "Ana", "ana@example.com", "CUSTOMER", now.Add(-time.Hour), nil, nil))

	r := testutils.SetupTestRouter()
	r.GET("/admin/users", NewHandler(gormDB).ListUsers)

	req, _ := http.NewRequest(http.MethodGet, "/admin/users", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var users []map[string]interface{}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &users))
	assert.Equal(t, 2, len(users))

	assert.Equal(t, "Carlos", users[0]["name"])
	assert.Equal(t, "PROVIDER", users[0]["role"])
	assert.Equal(t, "Eletricista", users[0]["service_type"])
	assert.Equal(t, "Pinheiros", users[0]["neighborhood"])

	assert.Equal(t, "Ana", users[1]["name"])
	assert.Nil(t, users[1]["service_type"], "provider columns should be null for customers")
}

func TestListUsers_StoreFailureServesEmptyList(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT u.id, u.name, u.email, u.role, u.created_at, p.service_type, p.neighborhood FROM users u LEFT JOIN providers p`).
		WillReturnError(gorm.ErrInvalidDB)

	r := testutils.SetupTestRouter()
	r.GET("/admin/users", NewHandler(gormDB).ListUsers)

	req, _ := http.NewRequest(http.MethodGet, "/admin/users", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}
