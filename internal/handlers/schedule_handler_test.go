package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mghazyfawazh/jadwalku/internal/handlers"
	"github.com/mghazyfawazh/jadwalku/internal/models"
	"github.com/mghazyfawazh/jadwalku/internal/repo"
)

func setupTest(t *testing.T) (*gin.Engine, *repo.MongoRepo) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	coll := client.Database("testdb").Collection("schedules")

	r := repo.NewMongoRepo(coll)
	h := handlers.NewHandler(r, t.TempDir(), t.TempDir())

	gin.SetMode(gin.TestMode)
	e := gin.Default()
	s := e.Group("/api/schedules")
	s.POST("", h.Create)
	s.GET("", h.GetAll)
	s.GET("/detail/:uuid", h.GetByUUID)
	s.PUT("/:uuid", h.Update)
	s.DELETE("/:uuid", h.Delete)
	s.POST("/upload", h.ImportExcel)
	s.GET("/student", h.StudentSchedule)
	s.GET("/teacher", h.TeacherSchedule)
	s.GET("/report/rekap-jp", h.RekapJP)
	s.GET("/export", h.ExportJP)

	return e, r
}

func seed(r *repo.MongoRepo, classCode, nik, date string, jamKe int) *models.Schedule {
	now := time.Now()
	s := &models.Schedule{
		UUID:        uuid.New().String(),
		ClassCode:   classCode,
		ClassName:   "TKJ Dasar",
		SubjectCode: "TKJ01",
		TeacherNIK:  nik,
		TeacherName: "Budi",
		Date:        date,
		JamKe:       jamKe,
		TimeStart:   "07:00:00",
		TimeEnd:     "08:00:00",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_ = r.Insert(s)
	return s
}

func TestCreateSuccess(t *testing.T) {
	e, _ := setupTest(t)

	body := `{
		"class_code": "XTKJ1",
		"class_name": "TKJ Dasar",
		"subject_code": "TKJ01",
		"teacher_nik": "001234",
		"teacher_name": "Budi",
		"date": "2024-01-01",
		"jam_ke": 1,
		"time_start": "07:00:00",
		"time_end": "08:00:00"
	}`

	req, _ := http.NewRequest("POST", "/api/schedules", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, 201, resp.Code)

	var out models.Schedule
	json.Unmarshal(resp.Body.Bytes(), &out)
	assert.Equal(t, "2024-01-01", out.Date)
	assert.Equal(t, "001234", out.TeacherNIK)
	assert.NotEmpty(t, out.UUID)
}

func TestCreateMissingField(t *testing.T) {
	e, _ := setupTest(t)

	req, _ := http.NewRequest("POST", "/api/schedules", bytes.NewBufferString(`{"class_code": "XTKJ1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, 400, resp.Code)
}

func TestGetByUUID(t *testing.T) {
	e, r := setupTest(t)
	s := seed(r, "XTKJ1", "999", "2024-01-01", 1)

	req, _ := http.NewRequest("GET", "/api/schedules/detail/"+s.UUID, nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, 200, resp.Code)

	var out models.Schedule
	json.Unmarshal(resp.Body.Bytes(), &out)
	assert.Equal(t, s.UUID, out.UUID)
}

func TestUpdateNotFound(t *testing.T) {
	e, _ := setupTest(t)

	body := `{
		"class_code": "XTKJ1",
		"class_name": "TKJ Dasar",
		"subject_code": "TKJ01",
		"teacher_nik": "001234",
		"teacher_name": "Budi",
		"date": "2024-01-01",
		"jam_ke": 1,
		"time_start": "07:00:00",
		"time_end": "08:00:00"
	}`
	req, _ := http.NewRequest("PUT", "/api/schedules/"+uuid.New().String(), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, 404, resp.Code)
}

func TestDelete(t *testing.T) {
	e, r := setupTest(t)
	s := seed(r, "XTKJ1", "999", "2024-01-01", 1)

	req, _ := http.NewRequest("DELETE", "/api/schedules/"+s.UUID, nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)
	assert.Equal(t, 200, resp.Code)

	req, _ = http.NewRequest("DELETE", "/api/schedules/"+s.UUID, nil)
	resp = httptest.NewRecorder()
	e.ServeHTTP(resp, req)
	assert.Equal(t, 404, resp.Code)
}

func TestStudentScheduleOrdered(t *testing.T) {
	e, r := setupTest(t)
	classCode := "C-" + uuid.New().String()

	seed(r, classCode, "999", "2024-01-01", 3)
	seed(r, classCode, "999", "2024-01-01", 1)
	seed(r, classCode, "999", "2024-01-01", 2)

	url := fmt.Sprintf("/api/schedules/student?class_code=%s&date=2024-01-01", classCode)
	req, _ := http.NewRequest("GET", url, nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, 200, resp.Code)

	var out struct {
		ClassName string          `json:"class_name"`
		Jadwal    []models.Period `json:"jadwal"`
	}
	json.Unmarshal(resp.Body.Bytes(), &out)
	assert.Equal(t, "TKJ Dasar", out.ClassName)
	assert.Len(t, out.Jadwal, 3)
	assert.Equal(t, 1, out.Jadwal[0].JamKe)
	assert.Equal(t, 2, out.Jadwal[1].JamKe)
	assert.Equal(t, 3, out.Jadwal[2].JamKe)
}

func TestStudentScheduleEmpty(t *testing.T) {
	e, _ := setupTest(t)

	url := "/api/schedules/student?class_code=NOPE-" + uuid.New().String() + "&date=2024-01-01"
	req, _ := http.NewRequest("GET", url, nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, 200, resp.Code)

	var out map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &out)
	assert.Nil(t, out["class_name"])
	assert.Empty(t, out["jadwal"])
}

func TestTeacherScheduleEmpty(t *testing.T) {
	e, _ := setupTest(t)

	url := "/api/schedules/teacher?teacher_nik=NOPE-" + uuid.New().String() + "&start_date=2024-01-01&end_date=2024-01-31"
	req, _ := http.NewRequest("GET", url, nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, 200, resp.Code)

	var out map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &out)
	assert.Nil(t, out["teacher_name"])
	assert.Equal(t, float64(0), out["total_jp"])
}

func TestImportMissingFile(t *testing.T) {
	e, _ := setupTest(t)

	req, _ := http.NewRequest("POST", "/api/schedules/upload", nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, 400, resp.Code)
}

func TestExportNoDataInRange(t *testing.T) {
	e, _ := setupTest(t)

	req, _ := http.NewRequest("GET", "/api/schedules/export?start_date=1900-01-01&end_date=1900-01-31", nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, 404, resp.Code)
}

func TestRekapNoDataInRange(t *testing.T) {
	e, _ := setupTest(t)

	req, _ := http.NewRequest("GET", "/api/schedules/report/rekap-jp?start_date=1900-01-01&end_date=1900-01-31", nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, 200, resp.Code)

	var out map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &out)
	assert.Equal(t, float64(0), out["total_pengajar"])
}

func TestExportMissingParams(t *testing.T) {
	e, _ := setupTest(t)

	req, _ := http.NewRequest("GET", "/api/schedules/export?start_date=2024-01-01", nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, 400, resp.Code)
}
