package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mghazyfawazh/jadwalku/internal/ingest"
	"github.com/mghazyfawazh/jadwalku/internal/models"
	"github.com/mghazyfawazh/jadwalku/internal/repo"
	"github.com/mghazyfawazh/jadwalku/internal/report"
)

type Handler struct {
	Repo       *repo.MongoRepo
	Ingest     *ingest.Pipeline
	UploadsDir string
	ReportsDir string
}

func NewHandler(r *repo.MongoRepo, uploadsDir, reportsDir string) *Handler {
	return &Handler{
		Repo:       r,
		Ingest:     ingest.NewPipeline(r),
		UploadsDir: uploadsDir,
		ReportsDir: reportsDir,
	}
}

type scheduleInput struct {
	ClassCode   string `json:"class_code" binding:"required"`
	ClassName   string `json:"class_name" binding:"required"`
	SubjectCode string `json:"subject_code" binding:"required"`
	TeacherNIK  string `json:"teacher_nik" binding:"required"`
	TeacherName string `json:"teacher_name" binding:"required"`
	Date        string `json:"date" binding:"required"`
	JamKe       int    `json:"jam_ke" binding:"required"`
	TimeStart   string `json:"time_start" binding:"required"`
	TimeEnd     string `json:"time_end" binding:"required"`
}

func parseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// Create godoc
// @Summary  Create one schedule record
// @Tags     schedules
// @Accept   json
// @Produce  json
// @Param    schedule  body  handlers.scheduleInput  true  "schedule"
// @Success  201  {object}  models.Schedule
// @Router   /schedules [post]
func (h *Handler) Create(c *gin.Context) {
	var in scheduleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(in.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (expected YYYY-MM-DD)"})
		return
	}
	now := time.Now()
	s := &models.Schedule{
		UUID:        uuid.New().String(),
		ClassCode:   in.ClassCode,
		ClassName:   in.ClassName,
		SubjectCode: in.SubjectCode,
		TeacherNIK:  in.TeacherNIK,
		TeacherName: in.TeacherName,
		Date:        date.Format("2006-01-02"),
		JamKe:       in.JamKe,
		TimeStart:   in.TimeStart,
		TimeEnd:     in.TimeEnd,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.Repo.Insert(s); err != nil {
		log.Printf("create: insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save schedule"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

// GetAll godoc
// @Summary  List all schedule records
// @Tags     schedules
// @Produce  json
// @Success  200  {array}  models.Schedule
// @Router   /schedules [get]
func (h *Handler) GetAll(c *gin.Context) {
	rows, err := h.Repo.FindAll()
	if err != nil {
		log.Printf("list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch schedules"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetByUUID godoc
// @Summary  Fetch one schedule record
// @Tags     schedules
// @Produce  json
// @Param    uuid  path  string  true  "record uuid"
// @Success  200  {object}  models.Schedule
// @Router   /schedules/detail/{uuid} [get]
func (h *Handler) GetByUUID(c *gin.Context) {
	row, err := h.Repo.FindByUUID(c.Param("uuid"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		log.Printf("get: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch schedule"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// Update godoc
// @Summary  Replace one schedule record
// @Tags     schedules
// @Accept   json
// @Produce  json
// @Param    uuid      path  string                  true  "record uuid"
// @Param    schedule  body  handlers.scheduleInput  true  "full replacement"
// @Success  200  {object}  map[string]string
// @Router   /schedules/{uuid} [put]
func (h *Handler) Update(c *gin.Context) {
	// Full-document replacement: every field is required, same as Create.
	var in scheduleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(in.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (expected YYYY-MM-DD)"})
		return
	}
	update := bson.M{
		"class_code":   in.ClassCode,
		"class_name":   in.ClassName,
		"subject_code": in.SubjectCode,
		"teacher_nik":  in.TeacherNIK,
		"teacher_name": in.TeacherName,
		"date":         date.Format("2006-01-02"),
		"jam_ke":       in.JamKe,
		"time_start":   in.TimeStart,
		"time_end":     in.TimeEnd,
		"updated_at":   time.Now(),
	}
	if err := h.Repo.UpdateByUUID(c.Param("uuid"), update); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		log.Printf("update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

// Delete godoc
// @Summary  Delete one schedule record
// @Tags     schedules
// @Produce  json
// @Param    uuid  path  string  true  "record uuid"
// @Success  200  {object}  map[string]string
// @Router   /schedules/{uuid} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.Repo.DeleteByUUID(c.Param("uuid")); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		log.Printf("delete: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// ImportExcel godoc
// @Summary  Bulk-import schedules from an xlsx upload
// @Tags     schedules
// @Accept   multipart/form-data
// @Produce  json
// @Param    file  formData  file  true  "schedule workbook"
// @Success  200  {object}  map[string]interface{}
// @Router   /schedules/upload [post]
func (h *Handler) ImportExcel(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	if err := os.MkdirAll(h.UploadsDir, 0o755); err != nil {
		log.Printf("import: uploads dir: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	dst := filepath.Join(h.UploadsDir, uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		log.Printf("import: save upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	// The temp file is removed on every path, parse failures included.
	defer os.Remove(dst)

	records, err := h.Ingest.ImportFile(dst)
	if err != nil {
		if errors.Is(err, ingest.ErrBadWorkbook) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid excel file"})
			return
		}
		log.Printf("import: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Upload sukses, %d jadwal ditambahkan", len(records)),
		"created_count": len(records),
		"data":          records,
	})
}

// StudentSchedule godoc
// @Summary  One class's periods for a single day, ordered by jam_ke
// @Tags     views
// @Produce  json
// @Param    class_code  query  string  true  "class code"
// @Param    date        query  string  true  "YYYY-MM-DD"
// @Success  200  {object}  map[string]interface{}
// @Router   /schedules/student [get]
func (h *Handler) StudentSchedule(c *gin.Context) {
	classCode := c.Query("class_code")
	dateStr := c.Query("date")
	if classCode == "" || dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "class_code and date required"})
		return
	}
	if _, err := parseDate(dateStr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	rows, err := h.Repo.FindByClassAndDate(classCode, dateStr)
	if err != nil {
		log.Printf("student view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch schedule"})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusOK, gin.H{"class_name": nil, "date": dateStr, "jadwal": []models.Period{}})
		return
	}
	jadwal := make([]models.Period, 0, len(rows))
	for _, s := range rows {
		jadwal = append(jadwal, models.Period{
			JamKe:       s.JamKe,
			SubjectCode: s.SubjectCode,
			TeacherName: s.TeacherName,
			TimeStart:   s.TimeStart,
			TimeEnd:     s.TimeEnd,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"class_name": rows[0].ClassName,
		"date":       dateStr,
		"jadwal":     jadwal,
	})
}

// TeacherSchedule godoc
// @Summary  One teacher's periods over a date range, ordered by date and jam_ke
// @Tags     views
// @Produce  json
// @Param    teacher_nik  query  string  true  "teacher NIK"
// @Param    start_date   query  string  true  "YYYY-MM-DD"
// @Param    end_date     query  string  true  "YYYY-MM-DD"
// @Success  200  {object}  map[string]interface{}
// @Router   /schedules/teacher [get]
func (h *Handler) TeacherSchedule(c *gin.Context) {
	nik := c.Query("teacher_nik")
	sd := c.Query("start_date")
	ed := c.Query("end_date")
	if nik == "" || sd == "" || ed == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "teacher_nik, start_date, end_date required"})
		return
	}
	if _, err := parseDate(sd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	if _, err := parseDate(ed); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
		return
	}
	rows, err := h.Repo.FindByTeacherAndRange(nik, sd, ed)
	if err != nil {
		log.Printf("teacher view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch schedule"})
		return
	}
	periode := models.Periode{StartDate: sd, EndDate: ed}
	if len(rows) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"teacher_name": nil,
			"periode":      periode,
			"total_jp":     0,
			"jadwal":       []models.Period{},
		})
		return
	}
	jadwal := make([]models.Period, 0, len(rows))
	for _, s := range rows {
		jadwal = append(jadwal, models.Period{
			Date:        s.Date,
			ClassName:   s.ClassName,
			SubjectCode: s.SubjectCode,
			JamKe:       s.JamKe,
			TimeStart:   s.TimeStart,
			TimeEnd:     s.TimeEnd,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"teacher_name": rows[0].TeacherName,
		"periode":      periode,
		"total_jp":     len(rows),
		"jadwal":       jadwal,
	})
}

// RekapJP godoc
// @Summary  Per-teacher per-class period totals over a date range
// @Tags     reports
// @Produce  json
// @Param    start_date  query  string  true  "YYYY-MM-DD"
// @Param    end_date    query  string  true  "YYYY-MM-DD"
// @Success  200  {object}  map[string]interface{}
// @Router   /schedules/report/rekap-jp [get]
func (h *Handler) RekapJP(c *gin.Context) {
	sd := c.Query("start_date")
	ed := c.Query("end_date")
	if sd == "" || ed == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date required"})
		return
	}
	if _, err := parseDate(sd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	if _, err := parseDate(ed); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
		return
	}
	rows, err := h.Repo.FindByDateRange(sd, ed)
	if err != nil {
		log.Printf("rekap: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch schedules"})
		return
	}
	periode := models.Periode{StartDate: sd, EndDate: ed}
	rekap := report.BuildRekapJP(rows)
	if rekap == nil {
		rekap = []report.TeacherRekap{}
	}
	c.JSON(http.StatusOK, gin.H{
		"periode":        periode,
		"total_pengajar": len(rekap),
		"rekap":          rekap,
	})
}

// ExportJP godoc
// @Summary  Generate the monthly weekly-rekap workbook and return its URL
// @Tags     reports
// @Produce  json
// @Param    start_date  query  string  true  "YYYY-MM-DD"
// @Param    end_date    query  string  true  "YYYY-MM-DD"
// @Success  200  {object}  map[string]string
// @Failure  404  {object}  map[string]string
// @Router   /schedules/export [get]
func (h *Handler) ExportJP(c *gin.Context) {
	sd := c.Query("start_date")
	ed := c.Query("end_date")
	if sd == "" || ed == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date required"})
		return
	}
	start, err := parseDate(sd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	if _, err := parseDate(ed); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
		return
	}
	rows, err := h.Repo.FindByDateRange(sd, ed)
	if err != nil {
		log.Printf("export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch schedules"})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "no schedule data in the date range"})
		return
	}

	name, err := report.WriteWeeklyRekap(h.ReportsDir, start, report.BuildWeeklyRekap(start, rows))
	if err != nil {
		log.Printf("export: write report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "report created",
		"download_url": fmt.Sprintf("%s://%s/reports/%s", scheme, c.Request.Host, name),
	})
}
