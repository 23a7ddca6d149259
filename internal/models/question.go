package models

// Question is a single interview prompt with its descriptive tags.
type Question struct {
	Text string   `json:"text"`
	Tags []string `json:"tags"`
}

const (
	DefaultType  = "behavioral"
	DefaultRole  = "SWE"
	DefaultLevel = "Intern"
	DefaultStyle = "Generic"

	DefaultSampleSize = 5
)

// InterviewFilter holds the categorical filters of a question request.
// Level is carried through but does not influence pool selection.
type InterviewFilter struct {
	Type  string
	Role  string
	Level string
	Style string
}

// WithDefaults fills empty fields with the default filter values.
func (f InterviewFilter) WithDefaults() InterviewFilter {
	if f.Type == "" {
		f.Type = DefaultType
	}
	if f.Role == "" {
		f.Role = DefaultRole
	}
	if f.Level == "" {
		f.Level = DefaultLevel
	}
	if f.Style == "" {
		f.Style = DefaultStyle
	}
	return f
}

type QuestionsResponse struct {
	Questions []Question `json:"questions"`
}

type PoolSummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type PoolListResponse struct {
	Pools []PoolSummary `json:"pools"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
