package application

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/confguard/confguard/internal/domain"
	"github.com/confguard/confguard/internal/domain/rules"
)

// ValidateRequest carries the inputs of one validation run.
type ValidateRequest struct {
	ConfigPath   string
	Format       domain.Format // FormatUnknown means infer from the suffix
	SchemaPath   string        // empty skips schema validation
	BestPractice bool
	Strict       bool // upgrade best-practice warnings to a terminal failure
}

// ValidateService orchestrates the validation pipeline:
// load config -> optional schema validation -> optional best-practice checks.
// Every stage logs through the injected logger; terminal failures come back
// as the returned error and the caller maps them to the exit code.
type ValidateService struct {
	documents domain.DocumentLoader
	schemas   domain.SchemaLoader
	validator domain.SchemaValidator
	registry  rules.Registry
	repo      domain.RepoInspector
	log       *slog.Logger
}

func NewValidateService(
	documents domain.DocumentLoader,
	schemas domain.SchemaLoader,
	validator domain.SchemaValidator,
	registry rules.Registry,
	repo domain.RepoInspector,
	log *slog.Logger,
) *ValidateService {
	return &ValidateService{
		documents: documents, schemas: schemas, validator: validator,
		registry: registry, repo: repo, log: log,
	}
}

// Run executes the pipeline. The returned report always describes how far
// the run got; a non-nil error marks a terminal failure.
func (s *ValidateService) Run(req ValidateRequest) (*domain.RunReport, error) {
	report := &domain.RunReport{
		ConfigPath: req.ConfigPath,
		Status:     domain.StatusPass,
	}

	// 1. Load config
	doc, format, err := s.documents.Load(req.ConfigPath, req.Format)
	if err != nil {
		s.log.Error("loading configuration file failed", "file", req.ConfigPath, "error", err)
		report.Status = domain.StatusFail
		return report, fmt.Errorf("loading configuration: %w", err)
	}
	report.Format = format
	s.log.Info("configuration file loaded", "file", req.ConfigPath, "format", format)

	s.annotateCommit(report)

	// 2. Schema validation
	if req.SchemaPath != "" {
		schema, err := s.schemas.LoadSchema(req.SchemaPath)
		if err != nil {
			s.log.Error("loading schema file failed", "file", req.SchemaPath, "error", err)
			report.Status = domain.StatusFail
			return report, fmt.Errorf("loading schema: %w", err)
		}
		s.log.Info("schema file loaded", "file", req.SchemaPath)

		outcome := s.validator.Validate(doc, schema)
		report.Schema = &outcome
		if !outcome.Valid {
			s.log.Error("configuration file is invalid against the schema",
				"file", req.ConfigPath, "error", outcome.Message)
			report.Status = domain.StatusFail
			return report, fmt.Errorf("schema validation: %s", outcome.Message)
		}
		s.log.Info("configuration file is valid against the schema", "file", req.ConfigPath)
	} else {
		s.log.Info("no schema file provided, skipping schema validation")
	}

	// 3. Best-practice checks
	if req.BestPractice {
		report.RulesRun = true
		warnings := s.registry.Run(doc)
		report.Warnings = warnings
		if len(warnings) > 0 {
			for _, w := range warnings {
				s.log.Warn(w.Message, "rule", w.Rule)
			}
			report.Status = domain.StatusWarn
			if req.Strict {
				report.Status = domain.StatusFail
				return report, fmt.Errorf("best-practice checks: %d warning(s) in strict mode", len(warnings))
			}
		} else {
			s.log.Info("configuration file passes best-practice checks")
		}
	} else {
		s.log.Info("best-practice checks skipped")
	}

	return report, nil
}

// annotateCommit records the HEAD commit of the repository containing the
// config file, when there is one. Failures are not terminal: the annotation
// is traceability metadata, not part of validation.
func (s *ValidateService) annotateCommit(report *domain.RunReport) {
	if s.repo == nil {
		return
	}
	dir := filepath.Dir(report.ConfigPath)
	if !s.repo.IsRepo(dir) {
		return
	}
	hash, err := s.repo.CommitHash(dir)
	if err != nil {
		s.log.Debug("resolving config repository commit failed", "dir", dir, "error", err)
		return
	}
	report.Commit = hash
}
