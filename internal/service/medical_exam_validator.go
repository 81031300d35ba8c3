package service

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// MedicalExamResult is the outcome of checking a medical-exam date.
type MedicalExamResult struct {
	Valid   bool
	Message string
}

// ValidateMedicalExam checks that examDate is a YYYY-MM-DD date no later than
// now and no more than validityDays calendar days before it.
func ValidateMedicalExam(examDate string, validityDays int, now time.Time) MedicalExamResult {
	exam, err := time.ParseInLocation(dateLayout, examDate, now.Location())
	if err != nil {
		return MedicalExamResult{Message: "Invalid date format"}
	}

	daysAgo := daysBetween(exam, now)

	if daysAgo < 0 {
		return MedicalExamResult{Message: "Medical exam date cannot be in the future"}
	}
	if daysAgo > validityDays {
		return MedicalExamResult{Message: fmt.Sprintf("Medical exam must be within the last %d days", validityDays)}
	}

	return MedicalExamResult{Valid: true, Message: "Medical exam is valid"}
}

// daysBetween counts whole calendar days from day to now's date. Rounding
// absorbs DST shifts between the two midnights.
func daysBetween(day, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(math.Round(today.Sub(day).Hours() / 24))
}
