package domain

// Outcome is the result of checking a document against a schema.
// Message is empty exactly when Valid is true.
type Outcome struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Warning is a single best-practice finding. Warnings are advisory and never
// affect the exit code on their own.
type Warning struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Report is the ordered list of warnings produced by one rule-engine run.
// Order follows rule registration order. An empty report means compliant.
type Report []Warning

// Run status values, worst stage wins.
const (
	StatusPass = "pass"
	StatusWarn = "warn"
	StatusFail = "fail"
)

// RunReport summarizes a single validation run for rendering and JSON output.
type RunReport struct {
	ConfigPath string    `json:"config_path"`
	Format     Format    `json:"format,omitempty"`
	Commit     string    `json:"commit,omitempty"`
	Schema     *Outcome  `json:"schema,omitempty"`
	RulesRun   bool      `json:"rules_run"`
	Warnings   []Warning `json:"warnings,omitempty"`
	Status     string    `json:"status"`
}
