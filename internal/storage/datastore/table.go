package datastore

import (
	"strconv"
	"strings"
	"time"

	"pr-analytics-dashboard/internal/domain/models"
)

// Layouts accepted for created_at and last_update.txt. The collection job
// writes ISO-8601, with or without a zone offset.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parsePullRequestTable parses the delimited table: the first non-blank line
// names the fields in order, every following non-blank line is one record.
// Rows with unparseable numeric or date fields are kept with zero defaults
// rather than rejected; the count of such rows is returned for logging.
func parsePullRequestTable(raw string) ([]models.PullRequest, int) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	var headers []string
	prs := make([]models.PullRequest, 0, len(lines))
	malformed := 0

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if headers == nil {
			headers = splitLine(line)
			continue
		}

		row := pairFields(headers, splitLine(line))
		pr, ok := recordFromRow(row)
		if !ok {
			malformed++
		}
		prs = append(prs, pr)
	}

	return prs, malformed
}

// splitLine splits one line on commas, honoring double-quoted fields: the
// quote state toggles on each quote character, and commas inside quotes are
// literal. A doubled quote inside a quoted field yields a literal quote.
func splitLine(line string) []string {
	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				field.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}
	fields = append(fields, field.String())

	return fields
}

// pairFields matches values to headers positionally. A short row yields
// empty strings for the missing trailing fields; extra values are ignored.
func pairFields(headers, values []string) map[string]string {
	row := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(values) {
			row[h] = values[i]
		} else {
			row[h] = ""
		}
	}
	return row
}

func recordFromRow(row map[string]string) (models.PullRequest, bool) {
	ok := true

	number, err := strconv.Atoi(strings.TrimSpace(row["number"]))
	if err != nil {
		number = 0
		ok = false
	}

	createdAt, parsed := parseTimestamp(strings.TrimSpace(row["created_at"]))
	if !parsed {
		ok = false
	}

	var mergeTime *float64
	if v := strings.TrimSpace(row["merge_time_hours"]); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			mergeTime = &f
		} else {
			ok = false
		}
	}

	reviewComments := 0
	if v := strings.TrimSpace(row["review_comments"]); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			reviewComments = n
		} else {
			ok = false
		}
	}

	return models.PullRequest{
		Number:          number,
		Title:           row["title"],
		Author:          row["author"],
		Status:          models.ResolveStatus(strings.ToLower(strings.TrimSpace(row["state"])), parseBool(row["is_merged"])),
		CreatedAt:       createdAt,
		MergeTimeHours:  mergeTime,
		ReviewComments:  reviewComments,
		Labels:          parseLabels(row["labels"]),
		HasDataContract: parseBool(row["has_data_contract_label"]),
	}, ok
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseBool accepts the source table's Python-flavored booleans.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// parseLabels cleans the bracketed, quoted list representation the table
// carries (e.g. `['bug', 'data contract']`) into discrete label strings.
func parseLabels(s string) []string {
	cleaned := strings.NewReplacer("[", "", "]", "", "'", "", `"`, "").Replace(s)

	var labels []string
	for _, part := range strings.Split(cleaned, ",") {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}
