package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEntityID(t *testing.T) {
	assert.NoError(t, ValidateEntityID("64ad0f1c2b3a4d5e6f708192", "id"))
	assert.NoError(t, ValidateEntityID("ABCDEF0123456789abcdef01", "id"))

	assert.Error(t, ValidateEntityID("", "id"))
	assert.Error(t, ValidateEntityID("64ad0f1c", "id"), "too short")
	assert.Error(t, ValidateEntityID("64ad0f1c2b3a4d5e6f708192aa", "id"), "too long")
	assert.Error(t, ValidateEntityID("64ad0f1c2b3a4d5e6f70819z", "id"), "non-hex")

	err := ValidateEntityID("x", "taskId")
	assert.Contains(t, err.Error(), "taskId", "error names the offending field")
}

func TestValidateWeek(t *testing.T) {
	for _, w := range []int{1, 20, 40, 42} {
		assert.NoError(t, ValidateWeek(w))
	}
	for _, w := range []int{0, -1, 43, 100} {
		assert.Error(t, ValidateWeek(w))
	}
}

func TestValidateSortOrder(t *testing.T) {
	assert.NoError(t, ValidateSortOrder(""))
	assert.NoError(t, ValidateSortOrder(SortAsc))
	assert.NoError(t, ValidateSortOrder(SortDesc))
	assert.Error(t, ValidateSortOrder("newest"))
	assert.Error(t, ValidateSortOrder("DESC"))
}

func TestValidateDiaryForm(t *testing.T) {
	ok := validForm()
	assert.NoError(t, ValidateDiaryForm(ok))

	long := ok
	long.Title = strings.Repeat("a", 81)
	assert.Error(t, ValidateDiaryForm(long))

	edge := ok
	edge.Title = strings.Repeat("a", 80)
	assert.NoError(t, ValidateDiaryForm(edge))
}

func TestValidateCredentials(t *testing.T) {
	assert.NoError(t, ValidateCredentials(Credentials{Email: "mom@example.com", Password: "longenough"}))

	assert.Error(t, ValidateCredentials(Credentials{Password: "longenough"}))
	assert.Error(t, ValidateCredentials(Credentials{Email: "not-an-email", Password: "longenough"}))
	assert.Error(t, ValidateCredentials(Credentials{Email: "mom@example.com", Password: "short"}))
}
