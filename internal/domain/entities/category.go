package entities

import (
	"strconv"
	"strings"

	"venuebook/internal/domain"
)

type Category string

const (
	CategoryWorkshop      Category = "Workshop"
	CategorySeminar       Category = "Seminar"
	CategoryLecture       Category = "Lecture"
	CategoryExam          Category = "Exam"
	CategoryFormalEvent   Category = "Formal Event"
	CategoryMiscellaneous Category = "Miscellaneous"
)

// Categories lists the accepted categories in menu order.
var Categories = []Category{
	CategoryWorkshop,
	CategorySeminar,
	CategoryLecture,
	CategoryExam,
	CategoryFormalEvent,
	CategoryMiscellaneous,
}

// ParseCategory accepts a category name (case-insensitive) or its 1-based
// menu number.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(Categories) {
			return Categories[n-1], nil
		}
		return "", domain.Invalid("category", "invalid_category")
	}
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", domain.Invalid("category", "invalid_category")
}
