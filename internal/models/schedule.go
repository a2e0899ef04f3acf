package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Schedule is one teaching period. Date is kept as the normalized
// "YYYY-MM-DD" string so range filters compare lexicographically,
// and TeacherNIK stays text to preserve leading zeros.
type Schedule struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UUID        string             `bson:"uuid" json:"uuid"`
	ClassCode   string             `bson:"class_code" json:"class_code"`
	ClassName   string             `bson:"class_name" json:"class_name"`
	SubjectCode string             `bson:"subject_code" json:"subject_code"`
	TeacherNIK  string             `bson:"teacher_nik" json:"teacher_nik"`
	TeacherName string             `bson:"teacher_name" json:"teacher_name"`
	Date        string             `bson:"date" json:"date"`
	JamKe       int                `bson:"jam_ke" json:"jam_ke"`
	TimeStart   string             `bson:"time_start" json:"time_start"`
	TimeEnd     string             `bson:"time_end" json:"time_end"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// Period is the per-row shape of the student and teacher views.
type Period struct {
	Date        string `json:"date,omitempty"`
	ClassName   string `json:"class_name,omitempty"`
	JamKe       int    `json:"jam_ke"`
	SubjectCode string `json:"subject_code"`
	TeacherName string `json:"teacher_name,omitempty"`
	TimeStart   string `json:"time_start"`
	TimeEnd     string `json:"time_end"`
}

type Periode struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
