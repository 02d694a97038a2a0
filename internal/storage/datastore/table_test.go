package datastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pr-analytics-dashboard/internal/domain/models"
)

const tableHeader = "number,title,author,state,is_merged,created_at,merge_time_hours,review_comments,labels,has_data_contract_label\n"

func TestParsePullRequestTable_QuotedCommaStaysInField(t *testing.T) {
	raw := tableHeader + `1,"Fix, bug",alice,open,False,2024-01-01,,0,,False`

	prs, malformed := parsePullRequestTable(raw)

	require.Len(t, prs, 1)
	assert.Zero(t, malformed)
	assert.Equal(t, "Fix, bug", prs[0].Title)
	assert.Equal(t, "alice", prs[0].Author)
	assert.Equal(t, models.StatusOpen, prs[0].Status)
}

func TestParsePullRequestTable_DoubledQuoteYieldsLiteralQuote(t *testing.T) {
	raw := tableHeader + `2,"Add ""fast"" path",bob,closed,True,2024-02-01,3.5,2,,False`

	prs, _ := parsePullRequestTable(raw)

	require.Len(t, prs, 1)
	assert.Equal(t, `Add "fast" path`, prs[0].Title)
	assert.Equal(t, models.StatusMerged, prs[0].Status)
	require.NotNil(t, prs[0].MergeTimeHours)
	assert.InDelta(t, 3.5, *prs[0].MergeTimeHours, 0.001)
}

func TestParsePullRequestTable_ShortRowPadsTrailingFields(t *testing.T) {
	raw := tableHeader + `3,Short row,carol,open,False`

	prs, malformed := parsePullRequestTable(raw)

	require.Len(t, prs, 1)
	assert.Equal(t, 1, malformed, "missing created_at counts as malformed")
	assert.Nil(t, prs[0].MergeTimeHours)
	assert.Zero(t, prs[0].ReviewComments)
	assert.Empty(t, prs[0].Labels)
	assert.True(t, prs[0].CreatedAt.IsZero())
}

func TestParsePullRequestTable_SkipsBlankLines(t *testing.T) {
	raw := tableHeader + "\n" + `4,One,dave,open,False,2024-03-01,,1,,False` + "\n\n"

	prs, _ := parsePullRequestTable(raw)

	require.Len(t, prs, 1)
	assert.Equal(t, 4, prs[0].Number)
	assert.Equal(t, 1, prs[0].ReviewComments)
}

func TestParsePullRequestTable_LabelsCleanedIntoBadges(t *testing.T) {
	raw := tableHeader + `5,Labeled,erin,open,False,2024-04-01,,0,"['bug', 'Data Contract']",True`

	prs, _ := parsePullRequestTable(raw)

	require.Len(t, prs, 1)
	assert.Equal(t, []string{"bug", "Data Contract"}, prs[0].Labels)
	assert.True(t, prs[0].HasDataContract)
}

func TestParsePullRequestTable_MalformedNumberKeptWithDefault(t *testing.T) {
	raw := tableHeader + `abc,Bad number,frank,open,False,2024-05-01,,0,,False`

	prs, malformed := parsePullRequestTable(raw)

	require.Len(t, prs, 1)
	assert.Equal(t, 1, malformed)
	assert.Zero(t, prs[0].Number)
	assert.Equal(t, "frank", prs[0].Author)
}

func TestParseTimestamp_Layouts(t *testing.T) {
	cases := []string{
		"2024-06-01T10:30:00+00:00",
		"2024-06-01T10:30:00Z",
		"2024-06-01T10:30:00",
		"2024-06-01T10:30:00.123456",
		"2024-06-01",
	}

	for _, raw := range cases {
		ts, ok := parseTimestamp(raw)
		assert.True(t, ok, "layout %q", raw)
		assert.Equal(t, 2024, ts.Year())
	}

	_, ok := parseTimestamp("not a date")
	assert.False(t, ok)
	_, ok = parseTimestamp("")
	assert.False(t, ok)
}

func TestParseBool(t *testing.T) {
	assert.True(t, parseBool("True"))
	assert.True(t, parseBool("true"))
	assert.True(t, parseBool(" 1 "))
	assert.False(t, parseBool("False"))
	assert.False(t, parseBool(""))
}
