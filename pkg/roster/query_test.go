package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marek-kar/attrisk/pkg/model"
)

func ids(records []model.EmployeeRecord) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestQuery_SearchByName(t *testing.T) {
	c, err := ParseCriteria("chen", "all", "all")
	require.NoError(t, err)

	res := Query(Sample(), c)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Michael Chen", res.Records[0].Name)
	assert.False(t, res.NoMatches())
	assert.Equal(t, 6, res.Total)
}

func TestQuery_SearchByRoleCaseInsensitive(t *testing.T) {
	res := Query(Sample(), Criteria{Search: "SPECIALIST"})
	assert.Equal(t, []int{3, 5}, ids(res.Records))
}

func TestQuery_DepartmentAndRisk(t *testing.T) {
	c, err := ParseCriteria("", "Engineering", "low")
	require.NoError(t, err)

	res := Query(Sample(), c)
	assert.Equal(t, []int{1, 4}, ids(res.Records))
}

func TestQuery_AllSentinelsReturnFullRoster(t *testing.T) {
	c, err := ParseCriteria("", "all", "all")
	require.NoError(t, err)
	assert.Equal(t, Criteria{}, c)

	res := Query(Sample(), c)
	assert.Equal(t, Sample(), res.Records)
}

func TestQuery_EmptyRoster(t *testing.T) {
	for _, c := range []Criteria{
		{},
		{Search: "chen"},
		{Department: model.DepartmentSales, Risk: model.RiskHigh},
	} {
		res := Query(nil, c)
		assert.Empty(t, res.Records)
		assert.True(t, res.NoMatches())
		assert.True(t, res.View().NoMatches())
	}
}

func TestQuery_NoMatches(t *testing.T) {
	res := Query(Sample(), Criteria{Search: "nobody"})
	assert.True(t, res.NoMatches())
	assert.Equal(t, 0, res.View().Matched)
	assert.Equal(t, 6, res.View().Total)
}

func TestQuery_Idempotent(t *testing.T) {
	c := Criteria{Search: "a", Risk: model.RiskLow}
	once := Query(Sample(), c)
	twice := Query(once.Records, c)
	assert.Equal(t, once.Records, twice.Records)
}

func TestQuery_FacetsCommute(t *testing.T) {
	search := Criteria{Search: "an"}
	dept := Criteria{Department: model.DepartmentEngineering}
	risk := Criteria{Risk: model.RiskLow}
	combined := Criteria{Search: "an", Department: model.DepartmentEngineering, Risk: model.RiskLow}

	orders := [][]Criteria{
		{search, dept, risk},
		{search, risk, dept},
		{dept, search, risk},
		{dept, risk, search},
		{risk, search, dept},
		{risk, dept, search},
	}

	want := Query(Sample(), combined).Records
	for _, order := range orders {
		got := Sample()
		for _, c := range order {
			got = Query(got, c).Records
		}
		assert.Equal(t, want, got)
	}
}

func TestQuery_DoesNotMutateRoster(t *testing.T) {
	roster := Sample()
	_ = Query(roster, Criteria{Search: "kim"})
	assert.Equal(t, Sample(), roster)
}

func TestParseCriteria_Errors(t *testing.T) {
	_, err := ParseCriteria("", "Legal", "all")
	assert.Error(t, err)

	_, err = ParseCriteria("", "all", "critical")
	assert.Error(t, err)

	c, err := ParseCriteria("x", "ALL", "")
	require.NoError(t, err)
	assert.Equal(t, Criteria{Search: "x"}, c)
}
