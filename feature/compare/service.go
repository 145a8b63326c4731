package compare

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"app-reconciler/core/artifact"
	"app-reconciler/core/extract"
	"app-reconciler/core/history"
	"app-reconciler/core/netskope"
	"app-reconciler/core/reconcile"
	"app-reconciler/core/report"
	"app-reconciler/core/sheet"

	"go.uber.org/zap"
)

// Outcome is a reconciliation without publishing: the full result plus its
// summary counts.
type Outcome struct {
	// Summary holds the aggregate counts of the result.
	Summary reconcile.Summary `json:"summary"`
	// Result carries the three report shapes.
	Result *reconcile.Result `json:"result"`
}

// PublishedArtifact describes one artifact a run wrote to the sink.
type PublishedArtifact struct {
	// Name is the artifact name, run stamp included.
	Name string `json:"name"`
	// Location is where the artifact ended up (bucket/key or file path).
	Location string `json:"location"`
	// Size is the stored content length in bytes.
	Size int64 `json:"size"`
}

// RunReport summarizes one published comparison run.
type RunReport struct {
	// Stamp is the run timestamp token shared by the run's artifacts.
	Stamp string `json:"stamp"`
	// TriggeredBy records what started the run.
	TriggeredBy string `json:"triggered_by"`
	// Summary holds the aggregate counts of the reconciliation.
	Summary reconcile.Summary `json:"summary"`
	// Missing lists the file names absent from the cloud inventory.
	Missing []string `json:"missing"`
	// Artifacts are the published artifacts in publish order.
	Artifacts []PublishedArtifact `json:"artifacts"`
	// DurationMS is the wall-clock duration of the run in milliseconds.
	DurationMS int64 `json:"duration_ms"`
}

// AppDetail reports one application's presence across both sources.
type AppDetail struct {
	// Query is the name as asked.
	Query string `json:"query"`
	// Normalized is the comparison key derived from the query.
	Normalized string `json:"normalized"`
	// InFile indicates the spreadsheet carries the name.
	InFile bool `json:"in_file"`
	// InCloud indicates the cloud inventory carries the name.
	InCloud bool `json:"in_cloud"`
	// FileSpelling is the spreadsheet's raw spelling, when present.
	FileSpelling string `json:"file_spelling,omitempty"`
	// CloudSpelling is the inventory's raw spelling, when present.
	CloudSpelling string `json:"cloud_spelling,omitempty"`
	// Hosts are the destination hostnames attributed to the cloud entity.
	Hosts []string `json:"hosts"`
}

// Service runs spreadsheet-against-cloud comparisons.
type Service struct {
	client   netskope.Client
	sheetCfg sheet.Config
	keys     extract.KeySet
	writer   artifact.Writer
	keep     int
	recorder *history.Recorder
	logger   *zap.Logger
}

// NewService creates a new compare service. The recorder may be nil, which
// disables run history; keep <= 0 disables retention pruning.
func NewService(client netskope.Client, sheetCfg sheet.Config, keys extract.KeySet, writer artifact.Writer, keep int, recorder *history.Recorder, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		sheetCfg: sheetCfg,
		keys:     keys,
		writer:   writer,
		keep:     keep,
		recorder: recorder,
		logger:   logger,
	}
}

// Preview reconciles both sources without publishing anything.
func (s *Service) Preview(ctx context.Context) (*Outcome, error) {
	fileNames, entities, err := s.sources(ctx, false)
	if err != nil {
		return nil, err
	}

	result := reconcile.Reconcile(fileNames, extract.Names(entities))
	return &Outcome{Summary: result.Summarize(), Result: result}, nil
}

// Run executes a full comparison run: reconcile both sources, publish the
// three artifacts under one run stamp, prune old artifacts and record the
// run in the ledger. The first failed write aborts the remaining ones.
func (s *Service) Run(ctx context.Context, triggeredBy string) (*RunReport, error) {
	start := time.Now()

	outcome, err := s.Preview(ctx)
	if err != nil {
		return nil, err
	}

	stamp := report.RunStamp(start)
	published := make([]PublishedArtifact, 0, 3)
	for _, a := range report.CompareArtifacts(outcome.Result, stamp) {
		ref, err := s.writer.Write(ctx, a.Name, a.Body, a.ContentType)
		if err != nil {
			return nil, err
		}
		published = append(published, PublishedArtifact{Name: a.Name, Location: ref.Location, Size: ref.Size})
	}
	s.prune(ctx)

	run := &RunReport{
		Stamp:       stamp,
		TriggeredBy: triggeredBy,
		Summary:     outcome.Summary,
		Missing:     outcome.Result.Missing,
		Artifacts:   published,
		DurationMS:  time.Since(start).Milliseconds(),
	}
	s.record(ctx, run)

	s.logger.Info("Comparison run published",
		zap.String("stamp", stamp),
		zap.Int("file_names", run.Summary.FileNames),
		zap.Int("cloud_names", run.Summary.CloudNames),
		zap.Int("missing", run.Summary.Missing),
		zap.Int("artifacts", len(published)),
	)
	return run, nil
}

// LookupApplication reports one application's presence in both sources,
// matched by normalized name.
func (s *Service) LookupApplication(ctx context.Context, name string) (*AppDetail, error) {
	fileNames, entities, err := s.sources(ctx, true)
	if err != nil {
		return nil, err
	}

	detail := &AppDetail{
		Query:      name,
		Normalized: extract.Normalize(name),
		Hosts:      []string{},
	}
	for _, candidate := range fileNames {
		if extract.Normalize(candidate) == detail.Normalized {
			detail.InFile = true
			detail.FileSpelling = strings.TrimSpace(candidate)
			break
		}
	}
	for _, e := range entities {
		if extract.Normalize(e.Name) == detail.Normalized {
			detail.InCloud = true
			detail.CloudSpelling = e.Name
			detail.Hosts = e.Hosts
			break
		}
	}
	return detail, nil
}

// Recent returns the most recent ledger rows.
func (s *Service) Recent(ctx context.Context, limit int) ([]history.RunRecord, error) {
	if s.recorder == nil {
		return nil, fmt.Errorf("compare: run history is not configured")
	}
	return s.recorder.Recent(ctx, limit)
}

// HasHistory reports whether a run-history recorder is wired in.
func (s *Service) HasHistory() bool {
	return s.recorder != nil
}

// sources loads the spreadsheet column and the cloud inventory
// concurrently. Either side failing fails the load; there are no partial
// results.
func (s *Service) sources(ctx context.Context, collectHosts bool) ([]string, []extract.Entity, error) {
	var (
		fileNames []string
		entities  []extract.Entity
		fileErr   error
		cloudErr  error
		wg        sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		fileNames, fileErr = sheet.ReadColumn(s.sheetCfg.Path, s.sheetCfg.Sheet, s.sheetCfg.Column, s.sheetCfg.HasHeader)
	}()
	go func() {
		defer wg.Done()
		var pages []any
		if pages, cloudErr = s.client.FetchAllPages(ctx); cloudErr == nil {
			entities = extract.Extract(pages, s.keys, collectHosts)
		}
	}()
	wg.Wait()

	if fileErr != nil {
		return nil, nil, fileErr
	}
	if cloudErr != nil {
		return nil, nil, cloudErr
	}
	return fileNames, entities, nil
}

// prune applies artifact retention. Pruning is housekeeping: a failure is
// logged, never fatal, since the run itself already published.
func (s *Service) prune(ctx context.Context) {
	if s.keep <= 0 {
		return
	}
	removed, err := s.writer.Prune(ctx, s.keep)
	if err != nil {
		s.logger.Warn("Artifact retention prune failed", zap.Error(err))
		return
	}
	if removed > 0 {
		s.logger.Info("Old artifacts pruned", zap.Int("removed", removed))
	}
}

// record appends the run to the history ledger when one is configured.
// History failures degrade to a warning; the run itself already succeeded.
func (s *Service) record(ctx context.Context, run *RunReport) {
	if s.recorder == nil {
		return
	}

	names := make([]string, 0, len(run.Artifacts))
	for _, a := range run.Artifacts {
		names = append(names, a.Name)
	}

	rec := &history.RunRecord{
		Stamp:          run.Stamp,
		TriggeredBy:    run.TriggeredBy,
		FileCount:      run.Summary.FileNames,
		CloudCount:     run.Summary.CloudNames,
		MissingCount:   run.Summary.Missing,
		CloudOnlyCount: run.Summary.CloudOnly,
		UnionCount:     run.Summary.Union,
		DurationMS:     run.DurationMS,
		Artifacts:      strings.Join(names, ","),
	}
	if err := s.recorder.Record(ctx, rec); err != nil {
		s.logger.Warn("Run not recorded in history", zap.Error(err))
	}
}
