package service

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openmf/fieldops/internal/core"
	"github.com/openmf/fieldops/internal/domain/model"
	apperrors "github.com/openmf/fieldops/internal/errors"
)

// TimeLayout formats the start and stop times of a recorded session.
const TimeLayout = "15:04:05"

// LocationSource yields coordinates one at a time. Next returns io.EOF
// once the source has nothing more to give.
type LocationSource interface {
	Next(ctx context.Context) (model.LatLng, error)
}

// ReplaySource reads coordinates from JSON lines such as
// {"lat":12.97,"lng":77.59}. Blank lines are skipped.
type ReplaySource struct {
	scanner *bufio.Scanner
	line    int
}

// NewReplaySource creates a ReplaySource reading r.
func NewReplaySource(r io.Reader) *ReplaySource {
	return &ReplaySource{scanner: bufio.NewScanner(r)}
}

// Next implements LocationSource.
func (s *ReplaySource) Next(ctx context.Context) (model.LatLng, error) {
	for {
		if err := ctx.Err(); err != nil {
			return model.LatLng{}, err
		}
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return model.LatLng{}, fmt.Errorf("read replay: %w", err)
			}
			return model.LatLng{}, io.EOF
		}
		s.line++
		text := strings.TrimSpace(s.scanner.Text())
		if text == "" {
			continue
		}
		var p model.LatLng
		if err := json.Unmarshal([]byte(text), &p); err != nil {
			return model.LatLng{}, apperrors.Validationf("replay line %d: %v", s.line, err)
		}
		return p, nil
	}
}

// PathRecorderOptions groups dependencies for PathRecorder.
type PathRecorderOptions struct {
	Tracking core.PathTrackingGateway // Required
	UserID   int64
	// SampleInterval is the delay between samples. Defaults to 30s.
	SampleInterval time.Duration
	Logger         *slog.Logger // Optional
	// Clock overrides time.Now in tests.
	Clock func() time.Time
}

// PathRecorder records one tracking session at a time and uploads it to
// the user_location datatable when stopped.
type PathRecorder struct {
	tracking core.PathTrackingGateway
	userID   int64
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu      sync.Mutex
	session *recording
}

type recording struct {
	id      uuid.UUID
	started time.Time
	cancel  context.CancelFunc
	done    chan struct{}

	mu   sync.Mutex
	path []model.LatLng
}

func (r *recording) add(p model.LatLng) {
	r.mu.Lock()
	r.path = append(r.path, p)
	r.mu.Unlock()
}

func (r *recording) points() []model.LatLng {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.LatLng, len(r.path))
	copy(out, r.path)
	return out
}

// NewPathRecorder constructs a new PathRecorder.
func NewPathRecorder(opts PathRecorderOptions) *PathRecorder {
	if opts.Tracking == nil {
		panic("PathTrackingGateway is required")
	}
	interval := opts.SampleInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &PathRecorder{
		tracking: opts.Tracking,
		userID:   opts.UserID,
		interval: interval,
		logger:   logger.With("component", "path_recorder"),
		now:      now,
	}
}

// Recording reports whether a session is in progress.
func (r *PathRecorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session != nil
}

// Start begins sampling src in the background. Sampling continues until
// Stop is called, ctx ends or src is exhausted.
func (r *PathRecorder) Start(ctx context.Context, src LocationSource) (uuid.UUID, error) {
	if src == nil {
		return uuid.Nil, apperrors.Validation("a location source is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session != nil {
		return uuid.Nil, apperrors.Conflict("a tracking session is already running")
	}

	sctx, cancel := context.WithCancel(ctx)
	rec := &recording{
		id:      uuid.New(),
		started: r.now(),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	r.session = rec
	go r.sample(sctx, rec, src)

	r.logger.Info("tracking started", "session_id", rec.id.String(), "user_id", r.userID, "interval", r.interval)
	return rec.id, nil
}

func (r *PathRecorder) sample(ctx context.Context, rec *recording, src LocationSource) {
	defer close(rec.done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		p, err := src.Next(ctx)
		switch {
		case err == nil:
			rec.add(p)
		case errors.Is(err, io.EOF):
			r.logger.Debug("location source exhausted", "session_id", rec.id.String())
			return
		case ctx.Err() != nil:
			return
		default:
			r.logger.Warn("location sample failed", "session_id", rec.id.String(), "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Stop ends the running session and uploads the recorded path.
func (r *PathRecorder) Stop(ctx context.Context) (model.UserLocation, error) {
	r.mu.Lock()
	rec := r.session
	r.session = nil
	r.mu.Unlock()
	if rec == nil {
		return model.UserLocation{}, apperrors.NotFound("no tracking session is running")
	}

	rec.cancel()
	<-rec.done
	return r.upload(ctx, rec.id, rec.started, rec.points())
}

// Replay drains src without waiting between samples and uploads the
// result as one session. It does not touch a running recording.
func (r *PathRecorder) Replay(ctx context.Context, src LocationSource) (model.UserLocation, error) {
	if src == nil {
		return model.UserLocation{}, apperrors.Validation("a location source is required")
	}
	started := r.now()
	var path []model.LatLng
	for {
		p, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return model.UserLocation{}, fmt.Errorf("replay locations: %w", err)
		}
		path = append(path, p)
	}
	return r.upload(ctx, uuid.New(), started, path)
}

func (r *PathRecorder) upload(ctx context.Context, id uuid.UUID, started time.Time, path []model.LatLng) (model.UserLocation, error) {
	logger := r.logger.With("session_id", id.String(), "points", len(path))
	if len(path) == 0 {
		logger.Info("tracking session discarded")
		return model.UserLocation{}, apperrors.Empty("no locations were recorded")
	}

	stopped := r.now()
	loc := model.UserLocation{
		UserID:    r.userID,
		StartTime: started.Format(TimeLayout),
		StopTime:  stopped.Format(TimeLayout),
		Date:      model.NewDate(started.Year(), started.Month(), started.Day()).Formatted(),
	}
	if err := loc.SetPath(path); err != nil {
		return model.UserLocation{}, err
	}
	if err := r.tracking.AddUserLocation(ctx, r.userID, loc); err != nil {
		logger.Error("tracking upload failed", "error", err)
		return loc, fmt.Errorf("upload tracking session: %w", err)
	}
	logger.Info("tracking session uploaded", "start", loc.StartTime, "stop", loc.StopTime)
	return loc, nil
}
