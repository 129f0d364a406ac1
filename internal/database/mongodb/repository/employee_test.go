package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestListFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, listFilter(""))
	assert.Equal(t, bson.M{"department": "Engineering"}, listFilter("Engineering"))
}

func TestSkillFilterExactMatch(t *testing.T) {
	filter := skillFilter("Python", false)
	assert.Equal(t, bson.M{"skills": "Python"}, filter)
}

func TestSkillFilterCaseInsensitive(t *testing.T) {
	filter := skillFilter("python", true)

	skills, ok := filter["skills"].(bson.M)
	require.True(t, ok)
	elemMatch, ok := skills["$elemMatch"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "^python$", elemMatch["$regex"])
	assert.Equal(t, "i", elemMatch["$options"])
}

func TestSkillFilterEscapesRegexMeta(t *testing.T) {
	filter := skillFilter("C++", true)

	elemMatch := filter["skills"].(bson.M)["$elemMatch"].(bson.M)
	assert.Equal(t, `^C\+\+$`, elemMatch["$regex"])
}

func TestCursorFilter(t *testing.T) {
	before := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	filter := cursorFilter("", before)
	assert.Equal(t, bson.M{"joining_date": bson.M{"$lt": before}}, filter)

	filter = cursorFilter("HR", before)
	assert.Equal(t, "HR", filter["department"])
}

func TestPageFindOptions(t *testing.T) {
	opts := pageFindOptions(0, 0)
	assert.Nil(t, opts.Skip)
	assert.Nil(t, opts.Limit)
	require.NotNil(t, opts.Sort)
	sort, ok := opts.Sort.(bson.D)
	require.True(t, ok)
	require.Len(t, sort, 1)
	assert.Equal(t, "joining_date", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)

	opts = pageFindOptions(20, 10)
	require.NotNil(t, opts.Skip)
	assert.Equal(t, int64(20), *opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(10), *opts.Limit)
}

func TestAverageSalaryPipeline(t *testing.T) {
	pipeline := averageSalaryPipeline()
	require.Len(t, pipeline, 3)

	group := pipeline[0][0]
	assert.Equal(t, "$group", group.Key)
	groupDoc := group.Value.(bson.M)
	assert.Equal(t, "$department", groupDoc["_id"])
	assert.Equal(t, bson.M{"$avg": "$salary"}, groupDoc["avg_salary"])

	project := pipeline[1][0]
	assert.Equal(t, "$project", project.Key)
	projectDoc := project.Value.(bson.M)
	assert.Equal(t, bson.M{"$round": bson.A{"$avg_salary", 0}}, projectDoc["avg_salary"])

	sort := pipeline[2][0]
	assert.Equal(t, "$sort", sort.Key)
	assert.Equal(t, bson.M{"department": 1}, sort.Value)
}

func TestHeadcountPipeline(t *testing.T) {
	pipeline := headcountPipeline()
	require.Len(t, pipeline, 3)
	assert.Equal(t, "$group", pipeline[0][0].Key)
	assert.Equal(t, "$sort", pipeline[2][0].Key)
}

func TestNilRepositoryReturnsErrNotInitialized(t *testing.T) {
	repo := &EmployeeRepository{}

	_, err := repo.GetByEmployeeID(t.Context(), "E123")
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = repo.Create(t.Context(), nil)
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = repo.UpdateByEmployeeID(t.Context(), "E123", bson.M{"name": "x"})
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = repo.DeleteByEmployeeID(t.Context(), "E123")
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = repo.AverageSalaryByDepartment(t.Context())
	assert.ErrorIs(t, err, ErrNotInitialized)
}
