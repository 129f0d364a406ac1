package service

import (
	"testing"
	"time"

	"roster/internal/database/mongodb/model"
	"roster/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseJoiningDate(t *testing.T) {
	parsed, err := parseJoiningDate("2023-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseJoiningDateRejectsBadInput(t *testing.T) {
	for _, value := range []string{"", "15-01-2023", "2023/01/15", "2023-13-01", "2023-01-15T00:00:00Z"} {
		_, err := parseJoiningDate(value)
		assert.Error(t, err, "value %q should not parse", value)
	}
}

func TestJoiningDateRoundTrip(t *testing.T) {
	parsed, err := parseJoiningDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", formatJoiningDate(parsed))
}

func TestFormatJoiningDateNormalizesToUTC(t *testing.T) {
	taipei := time.FixedZone("CST", 8*3600)
	value := time.Date(2023, 6, 1, 2, 0, 0, 0, taipei) // 2023-05-31T18:00Z
	assert.Equal(t, "2023-05-31", formatJoiningDate(value))
}

func TestModelToEmployeeResponseDto(t *testing.T) {
	id := primitive.NewObjectID()
	employee := &model.Employee{
		ID:          id,
		EmployeeID:  "E123",
		Name:        "Alice",
		Department:  "Engineering",
		Salary:      85000,
		JoiningDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		Skills:      []string{"Go", "MongoDB"},
	}

	resp := modelToEmployeeResponseDto(employee)
	assert.Equal(t, id.Hex(), resp.ID)
	assert.Equal(t, "E123", resp.EmployeeID)
	assert.Equal(t, "2023-01-15", resp.JoiningDate)
	assert.Equal(t, []string{"Go", "MongoDB"}, resp.Skills)
}

func TestModelToEmployeeResponseDtoNilSkills(t *testing.T) {
	resp := modelToEmployeeResponseDto(&model.Employee{Skills: nil})
	require.NotNil(t, resp.Skills)
	assert.Empty(t, resp.Skills)
}

func TestBuildUpdateDocumentSkipsNilFields(t *testing.T) {
	name := "Bob"
	salary := 92000.0
	update, err := buildUpdateDocument(&dto.UpdateEmployeeDto{Name: &name, Salary: &salary})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"name": "Bob", "salary": 92000.0}, update)
}

func TestBuildUpdateDocumentEmptyDto(t *testing.T) {
	update, err := buildUpdateDocument(&dto.UpdateEmployeeDto{})
	require.NoError(t, err)
	assert.Empty(t, update)

	update, err = buildUpdateDocument(nil)
	require.NoError(t, err)
	assert.Empty(t, update)
}

func TestBuildUpdateDocumentParsesJoiningDate(t *testing.T) {
	joiningDate := "2022-11-01"
	update, err := buildUpdateDocument(&dto.UpdateEmployeeDto{JoiningDate: &joiningDate})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 11, 1, 0, 0, 0, 0, time.UTC), update["joining_date"])

	bad := "not-a-date"
	_, err = buildUpdateDocument(&dto.UpdateEmployeeDto{JoiningDate: &bad})
	assert.Error(t, err)
}

func TestBuildUpdateDocumentEmptySkillsClearsList(t *testing.T) {
	skills := []string{}
	update, err := buildUpdateDocument(&dto.UpdateEmployeeDto{Skills: &skills})
	require.NoError(t, err)
	assert.Equal(t, []string{}, update["skills"])
}
