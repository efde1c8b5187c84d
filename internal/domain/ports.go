package domain

// DocumentLoader reads a configuration file and parses it into a Value.
// A FormatUnknown format requests suffix inference; the resolved format is
// returned alongside the parsed document.
type DocumentLoader interface {
	Load(path string, format Format) (Value, Format, error)
}

// SchemaLoader reads a JSON-Schema document. Schema files are always JSON.
type SchemaLoader interface {
	LoadSchema(path string) (Value, error)
}

// SchemaValidator checks a document against a schema. It never fails the
// process; every failure class surfaces inside the Outcome.
type SchemaValidator interface {
	Validate(document, schema Value) Outcome
}

// RepoInspector resolves version-control metadata for the directory holding
// a configuration file, used to annotate run reports.
type RepoInspector interface {
	IsRepo(dir string) bool
	CommitHash(dir string) (string, error)
}
