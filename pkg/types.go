package pkg

import (
	"time"
)

// Catalog types served as-is by the content endpoints

// SpaceInfo is the public metadata of a predefined topological space
type SpaceInfo struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	X           string   `json:"X" yaml:"X"`
	Sets        []string `json:"sets" yaml:"sets"`
}

// SpaceProperties holds the fixed property flags of a predefined space
type SpaceProperties struct {
	Connected bool `json:"connected" yaml:"connected"`
	Compact   bool `json:"compact" yaml:"compact"`
	Separable bool `json:"separable" yaml:"separable"`
	Hausdorff bool `json:"hausdorff" yaml:"hausdorff"`
}

// QuizQuestion is one multiple-choice question; Correct indexes Options
type QuizQuestion struct {
	ID          int      `json:"id" yaml:"id"`
	Question    string   `json:"question" yaml:"question"`
	Options     []string `json:"options" yaml:"options"`
	Correct     int      `json:"correct" yaml:"correct"`
	Explanation string   `json:"explanation" yaml:"explanation"`
}

// GlossaryTerm is a glossary entry
type GlossaryTerm struct {
	Term       string `json:"term" yaml:"term"`
	Definition string `json:"definition" yaml:"definition"`
	Example    string `json:"example" yaml:"example"`
}

// Concept is an explanatory article
type Concept struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// ----------------------------------------------------
// ================ Requests ================

// SpaceRequest names a predefined space
type SpaceRequest struct {
	SpaceType string `json:"space_type"`
}

// AnalyzeSubsetRequest asks for the textual analysis of a literal subset.
// Subset is nil when the field is absent or null.
type AnalyzeSubsetRequest struct {
	SpaceType string  `json:"space_type"`
	Subset    *string `json:"subset"`
}

// SetOperationRequest combines two literal set expressions
type SetOperationRequest struct {
	Operation string `json:"operation"`
	SetA      string `json:"set_a"`
	SetB      string `json:"set_b"`
}

// FiniteSpaceRequest selects a finite space either by catalog name or by an
// explicit universe and open-set family. Points may be any JSON scalar.
type FiniteSpaceRequest struct {
	SpaceType string  `json:"space_type,omitempty"`
	Universe  []any   `json:"universe,omitempty"`
	OpenSets  [][]any `json:"open_sets,omitempty"`
	Subset    []any   `json:"subset,omitempty"`
}

// ContinuityRequest checks a point mapping between two finite spaces
type ContinuityRequest struct {
	From    FiniteSpaceRequest `json:"from"`
	To      FiniteSpaceRequest `json:"to"`
	Mapping map[string]any     `json:"mapping"`
}

// QuizSubmission carries the selected option index per question, in order.
// A negative index marks an unanswered question.
type QuizSubmission struct {
	SessionID string `json:"session_id,omitempty"`
	Answers   []int  `json:"answers"`
}

// ----------------------------------------------------
// ================ Responses ================

// ErrorResponse is the uniform error payload
type ErrorResponse struct {
	Error string `json:"error"`
}

// SubsetAnalysis is the pattern-matched analysis of a literal subset
type SubsetAnalysis struct {
	IsOpen      bool   `json:"is_open"`
	IsClosed    bool   `json:"is_closed"`
	Interior    string `json:"interior"`
	Closure     string `json:"closure"`
	Boundary    string `json:"boundary"`
	LimitPoints string `json:"limit_points"`
	Description string `json:"description"`
}

// SetOperationResponse echoes the operands with the formatted expression
type SetOperationResponse struct {
	Operation string `json:"operation"`
	SetA      string `json:"set_a"`
	SetB      string `json:"set_b"`
	Result    string `json:"result"`
}

// PropertiesResponse reports the fixed property flags of a space
type PropertiesResponse struct {
	IsConnected bool   `json:"is_connected"`
	IsCompact   bool   `json:"is_compact"`
	IsSeparable bool   `json:"is_separable"`
	IsHausdorff bool   `json:"is_hausdorff"`
	Description string `json:"description"`
}

// VisualizationResponse acknowledges diagram generation
type VisualizationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FiniteAnalysis is the evaluator's answer for a subset of a finite space
type FiniteAnalysis struct {
	Universe    []string `json:"universe"`
	Subset      []string `json:"subset"`
	IsOpen      bool     `json:"is_open"`
	IsClosed    bool     `json:"is_closed"`
	Interior    []string `json:"interior"`
	Closure     []string `json:"closure"`
	Boundary    []string `json:"boundary"`
	LimitPoints []string `json:"limit_points"`
	IsConnected bool     `json:"is_connected"`
	IsCompact   bool     `json:"is_compact"`
	IsHausdorff bool     `json:"is_hausdorff"`
	AxiomError  string   `json:"axiom_error,omitempty"`
}

// SubspaceResponse lists the subspace topology on the requested subset
type SubspaceResponse struct {
	Universe []string   `json:"universe"`
	OpenSets [][]string `json:"open_sets"`
}

// ContinuityResponse reports whether the mapping is continuous
type ContinuityResponse struct {
	Continuous bool `json:"continuous"`
}

// AnswerResult grades a single question
type AnswerResult struct {
	QuestionID int    `json:"question_id"`
	Question   string `json:"question"`
	Selected   int    `json:"selected"`
	Correct    int    `json:"correct"`
	IsCorrect  bool   `json:"is_correct"`
}

// QuizResult is the graded outcome of a submission
type QuizResult struct {
	SessionID  string         `json:"session_id"`
	AttemptID  string         `json:"attempt_id"`
	Score      int            `json:"score"`
	Total      int            `json:"total"`
	Percentage float64        `json:"percentage"`
	Message    string         `json:"message"`
	Feedback   string         `json:"feedback"`
	Answers    []AnswerResult `json:"answers"`
}

// QuizAttempt is the persisted record of a graded submission
type QuizAttempt struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// QuizStats aggregates the attempts of a session
type QuizStats struct {
	SessionID string  `json:"session_id"`
	Attempts  int     `json:"attempts"`
	Best      int     `json:"best"`
	Average   float64 `json:"average"`
}
