package client

import (
	"fmt"
	"regexp"
)

var (
	// entityIDRegex validates Mongo-style object IDs used by the API for
	// diary entries, tasks and emotions: 24 hex characters.
	entityIDRegex = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)

	// emailRegex is deliberately loose; the API is the authority.
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateEntityID validates a Mongo-style object ID.
func ValidateEntityID(id, fieldName string) error {
	if id == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if !entityIDRegex.MatchString(id) {
		return fmt.Errorf("%s must be a 24-character hex ID", fieldName)
	}
	return nil
}

// ValidateWeek validates a pregnancy week number (1-42).
func ValidateWeek(week int) error {
	if week < 1 || week > 42 {
		return fmt.Errorf("week must be between 1 and 42, got %d", week)
	}
	return nil
}

// ValidateSortOrder accepts "asc", "desc" or empty (server default).
func ValidateSortOrder(order SortOrder) error {
	switch order {
	case "", SortAsc, SortDesc:
		return nil
	}
	return fmt.Errorf("sortOrder must be asc or desc, got %q", order)
}

// ValidateDiaryForm checks the create/update payload constraints:
// title 1-80 characters, description required, at least one emotion.
func ValidateDiaryForm(f DiaryForm) error {
	if f.Title == "" {
		return fmt.Errorf("title is required")
	}
	if len(f.Title) > 80 {
		return fmt.Errorf("title exceeds 80 characters")
	}
	if f.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(f.Emotions) == 0 {
		return fmt.Errorf("at least one emotion is required")
	}
	for _, id := range f.Emotions {
		if err := ValidateEntityID(id, "emotion"); err != nil {
			return err
		}
	}
	return nil
}

// ValidateCredentials checks login/registration input.
func ValidateCredentials(cr Credentials) error {
	if cr.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(cr.Email) {
		return fmt.Errorf("email is not valid")
	}
	if len(cr.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}
