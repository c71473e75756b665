package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"legalzen-backend/analyzer"
	"legalzen-backend/extractor"
	"legalzen-backend/logging"
	"legalzen-backend/metrics"
	"legalzen-backend/models"
	"legalzen-backend/repository"
	"legalzen-backend/storage"
)

const (
	DefaultMaxUploadBytes = 16 * 1024 * 1024
	DefaultRetention      = time.Hour
)

// Analysis sources reported to metrics
const (
	SourceUpload = "upload"
	SourceSample = "sample"
	SourceDemo   = "demo"
)

// DocumentService runs uploaded documents through extraction and analysis
// and keeps the results as sessions for follow-up questions
type DocumentService struct {
	analyzer       *analyzer.Analyzer
	sessions       *repository.SessionRepository
	storage        storage.Storage
	logger         logging.Logger
	metrics        *metrics.Metrics
	maxUploadBytes int64
	retention      time.Duration
	keepUploads    bool
	now            func() time.Time
}

// DocumentServiceOption is a functional option for DocumentService
type DocumentServiceOption func(*DocumentService)

// DocumentWithAnalyzer sets the rule engine used for analysis
func DocumentWithAnalyzer(a *analyzer.Analyzer) DocumentServiceOption {
	return func(s *DocumentService) {
		s.analyzer = a
	}
}

// DocumentWithSessionRepository shares a session store with other services
func DocumentWithSessionRepository(repo *repository.SessionRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.sessions = repo
	}
}

// DocumentWithStorage sets where uploads are staged before extraction
func DocumentWithStorage(st storage.Storage) DocumentServiceOption {
	return func(s *DocumentService) {
		s.storage = st
	}
}

// DocumentWithLogger sets the logger
func DocumentWithLogger(l logging.Logger) DocumentServiceOption {
	return func(s *DocumentService) {
		s.logger = l
	}
}

// DocumentWithMetrics records analysis and sweep metrics
func DocumentWithMetrics(m *metrics.Metrics) DocumentServiceOption {
	return func(s *DocumentService) {
		s.metrics = m
	}
}

// DocumentWithMaxUploadBytes caps accepted upload size; non-positive values keep the default
func DocumentWithMaxUploadBytes(n int64) DocumentServiceOption {
	return func(s *DocumentService) {
		if n > 0 {
			s.maxUploadBytes = n
		}
	}
}

// DocumentWithRetention sets how long uploaded sessions survive a sweep
func DocumentWithRetention(d time.Duration) DocumentServiceOption {
	return func(s *DocumentService) {
		if d > 0 {
			s.retention = d
		}
	}
}

// DocumentWithKeepUploads leaves staged files in storage after extraction
func DocumentWithKeepUploads(keep bool) DocumentServiceOption {
	return func(s *DocumentService) {
		s.keepUploads = keep
	}
}

// DocumentWithClock overrides time.Now for session keys and sweeps
func DocumentWithClock(now func() time.Time) DocumentServiceOption {
	return func(s *DocumentService) {
		s.now = now
	}
}

// NewDocumentService creates a new document service
func NewDocumentService(opts ...DocumentServiceOption) *DocumentService {
	s := &DocumentService{
		maxUploadBytes: DefaultMaxUploadBytes,
		retention:      DefaultRetention,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.analyzer == nil {
		s.analyzer = analyzer.New()
	}
	if s.sessions == nil {
		s.sessions = repository.NewSessionRepository()
	}
	if s.logger == nil {
		s.logger = logging.NewNopLogger()
	}
	return s
}

// MaxUploadBytes is the largest upload AnalyzeUpload accepts
func (s *DocumentService) MaxUploadBytes() int64 { return s.maxUploadBytes }

// StorageType reports the staging backend, or "none" when uploads are not staged
func (s *DocumentService) StorageType() string {
	if s.storage == nil {
		return "none"
	}
	return string(s.storage.Type())
}

// AnalyzeUploadRequest represents an uploaded document
type AnalyzeUploadRequest struct {
	Filename string
	// Size as declared by the client; -1 when unknown
	Size    int64
	Content io.Reader
}

// AnalyzeResult is an analysis together with the session that holds it
type AnalyzeResult struct {
	SessionKey string
	Analysis   *models.DocumentAnalysis
}

// AnalyzeUpload validates, stages, extracts and analyzes an uploaded document,
// then stores it as a new session keyed by the upload time
func (s *DocumentService) AnalyzeUpload(ctx context.Context, req AnalyzeUploadRequest) (*AnalyzeResult, error) {
	if req.Content == nil {
		return nil, ErrMissingFile
	}
	if strings.TrimSpace(req.Filename) == "" {
		return nil, ErrNoFileSelected
	}

	format, err := extractor.FormatFromFilename(req.Filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFileType, err)
	}
	if req.Size > s.maxUploadBytes {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(req.Content, s.maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxUploadBytes {
		return nil, ErrFileTooLarge
	}

	uploadTime := s.now()
	key := uploadTime.Format(models.SessionKeyLayout)

	data, err = s.stage(ctx, key, req.Filename, data)
	if err != nil {
		return nil, err
	}

	text, err := extractor.Extract(format, data)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncExtractionError(string(format))
		}
		if errors.Is(err, extractor.ErrEmptyDocument) {
			return nil, ErrNoText
		}
		s.logger.Warn("text extraction failed",
			logging.String("filename", req.Filename),
			logging.String("format", string(format)),
			logging.Err(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrNoText, err)
	}

	s.logger.Info("extracted document text",
		logging.String("filename", req.Filename),
		logging.Int("characters", len([]rune(text))),
	)

	analysis := s.analyze(SourceUpload, text)
	s.sessions.Put(&models.Session{
		Key:          key,
		DocumentText: text,
		Analysis:     analysis,
		Filename:     req.Filename,
		UploadTime:   uploadTime,
	})
	s.SweepExpired()

	return &AnalyzeResult{SessionKey: key, Analysis: analysis}, nil
}

// stage writes the upload to storage and extracts from the stored copy. The
// staged file is removed afterwards unless uploads are kept.
func (s *DocumentService) stage(ctx context.Context, key, filename string, data []byte) ([]byte, error) {
	if s.storage == nil {
		return data, nil
	}

	name := key + "_" + storage.SecureFilename(filename)
	path, err := s.storage.Upload(ctx, name, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to stage upload: %w", err)
	}
	s.logger.Debug("staged upload", logging.String("path", path))

	if !s.keepUploads {
		defer func() {
			if err := s.storage.Delete(context.WithoutCancel(ctx), path); err != nil {
				s.logger.Warn("could not remove staged upload", logging.String("path", path), logging.Err(err))
			}
		}()
	}

	rc, err := s.storage.Download(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read staged upload: %w", err)
	}
	defer rc.Close()

	staged, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read staged upload: %w", err)
	}
	return staged, nil
}

func (s *DocumentService) analyze(source, text string) *models.DocumentAnalysis {
	start := time.Now()
	analysis := s.analyzer.Analyze(text)
	if s.metrics != nil {
		s.metrics.ObserveAnalysis(source, string(analysis.DocumentType), time.Since(start))
	}
	s.logger.Info("document analysis completed",
		logging.String("source", source),
		logging.String("document_type", string(analysis.DocumentType)),
		logging.Int("clauses", len(analysis.Clauses)),
	)
	return analysis
}

// Demo stores the canned demo analysis under the reserved demo key
func (s *DocumentService) Demo(ctx context.Context) *AnalyzeResult {
	analysis := demoAnalysis()
	s.sessions.Put(&models.Session{
		Key:          models.DemoSessionKey,
		DocumentText: demoDocumentText,
		Analysis:     analysis,
		Filename:     demoFilename,
		UploadTime:   s.now(),
	})
	if s.metrics != nil {
		s.metrics.ObserveAnalysis(SourceDemo, string(analysis.DocumentType), 0)
	}
	s.updateSessionGauge()
	return &AnalyzeResult{SessionKey: models.DemoSessionKey, Analysis: analysis}
}

// Sample analyzes the built-in employment agreement under the reserved sample key
func (s *DocumentService) Sample(ctx context.Context) *AnalyzeResult {
	analysis := s.analyze(SourceSample, sampleAgreement)
	s.sessions.Put(&models.Session{
		Key:          models.SampleSessionKey,
		DocumentText: sampleAgreement,
		Analysis:     analysis,
		Filename:     sampleFilename,
		UploadTime:   s.now(),
	})
	s.updateSessionGauge()
	return &AnalyzeResult{SessionKey: models.SampleSessionKey, Analysis: analysis}
}

// Sessions lists stored sessions ordered by key
func (s *DocumentService) Sessions(ctx context.Context) []*models.Session {
	return s.sessions.List()
}

// SessionCount returns the number of stored sessions
func (s *DocumentService) SessionCount() int {
	return s.sessions.Count()
}

// SweepExpired drops sessions older than the retention window, keeping the
// demo and sample sessions, and returns how many were removed
func (s *DocumentService) SweepExpired() int {
	removed := s.sessions.Sweep(s.now(), s.retention, models.ProtectedSessionKeys()...)
	for _, key := range removed {
		s.logger.Info("cleaned up expired session", logging.String("session_key", key))
	}
	if s.metrics != nil {
		s.metrics.AddSwept(len(removed))
	}
	s.updateSessionGauge()
	return len(removed)
}

// RunSweeper sweeps expired sessions every interval until ctx is done
func (s *DocumentService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("session sweeper started", logging.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session sweeper stopped")
			return
		case <-ticker.C:
			s.SweepExpired()
		}
	}
}

func (s *DocumentService) updateSessionGauge() {
	if s.metrics != nil {
		s.metrics.SetActiveSessions(s.sessions.Count())
	}
}
