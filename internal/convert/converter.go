package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"epitizer/internal/config"
	"epitizer/internal/epitope"
	"epitizer/internal/logging"
)

// State identifies where a conversion stands. Failed and cancelled requests
// return to idle.
type State string

const (
	StateIdle                State = "idle"
	StateValidating          State = "validating"
	StateAwaitingDestination State = "awaiting_destination"
	StateWritten             State = "written"
)

// DestinationChooser supplies the output path for a conversion. Returning
// ok=false cancels the conversion without an error and without side effects.
type DestinationChooser interface {
	Choose(ctx context.Context, suggested string) (path string, ok bool, err error)
}

// StaticChooser always answers with a fixed path.
type StaticChooser struct {
	Path string
}

func (c StaticChooser) Choose(ctx context.Context, _ string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	return c.Path, c.Path != "", nil
}

// Request describes one conversion.
type Request struct {
	Source           Source
	Chooser          DestinationChooser
	RemoveDuplicates bool
}

// Converter runs conversion requests one at a time across processes.
type Converter struct {
	limits    epitope.Limits
	extension string
	lockPath  string
	logger    *slog.Logger
}

// New constructs a converter from application configuration.
func New(cfg *config.Config, logger *slog.Logger) (*Converter, error) {
	if cfg == nil {
		return nil, errors.New("converter requires configuration")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Converter{
		limits:    epitope.Limits{MaxInputBytes: cfg.Limits.MaxInputBytes},
		extension: cfg.Output.DefaultExtension,
		lockPath:  cfg.LockPath(),
		logger:    logging.NewComponentLogger(logger, "converter"),
	}, nil
}

// MaxInputBytes reports the configured input size limit.
func (c *Converter) MaxInputBytes() int {
	return c.limits.Max()
}

// Convert runs the full workflow: read, validate, optionally deduplicate,
// choose a destination, and write the FASTA file. The returned Result is
// non-nil even on failure so callers can report how far the request got.
func (c *Converter) Convert(ctx context.Context, req Request) (*Result, error) {
	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)
	logger := logging.WithContext(ctx, c.logger)

	result := &Result{State: StateIdle}

	lock := flock.New(c.lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return result, fmt.Errorf("acquire conversion lock: %w", err)
	}
	if !locked {
		return result, ErrBusy
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("release conversion lock", logging.Error(err))
		}
	}()

	if req.Source == nil {
		return result, ErrSourceNotSelected
	}

	result.State = StateValidating
	epitopes, err := c.validate(ctx, logger, req.Source, result)
	if err != nil {
		result.State = StateIdle
		return result, err
	}

	removed := 0
	if req.RemoveDuplicates {
		epitopes, removed = epitope.Dedupe(epitopes)
		if removed > 0 {
			logger.Info("duplicates removed", logging.Int(logging.FieldDuplicates, removed))
		}
	}
	result.Count = len(epitopes)
	result.DuplicatesRemoved = removed

	result.State = StateAwaitingDestination
	destination, ok, err := c.chooseDestination(ctx, req.Chooser)
	if err != nil {
		result.State = StateIdle
		return result, fmt.Errorf("choose destination: %w", err)
	}
	if !ok {
		result.State = StateIdle
		result.Cancelled = true
		logger.Info("conversion cancelled",
			logging.String(logging.FieldSource, result.SourceDescription))
		return result, nil
	}

	if err := checkDestination(destination); err != nil {
		result.State = StateIdle
		return result, err
	}
	if err := writeFASTA(destination, epitopes); err != nil {
		result.State = StateIdle
		logger.Error("write failed",
			logging.String(logging.FieldDestination, destination),
			logging.Error(err))
		return result, err
	}

	result.State = StateWritten
	result.Destination = destination
	logger.Info("conversion complete",
		logging.String(logging.FieldSource, result.SourceDescription),
		logging.String(logging.FieldDestination, destination),
		logging.Int(logging.FieldCount, result.Count),
		logging.Int(logging.FieldDuplicates, removed))
	return result, nil
}

// Validate runs the read and parse stages only. No lock is taken and no
// output file is touched.
func (c *Converter) Validate(ctx context.Context, source Source) (*Result, error) {
	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)
	logger := logging.WithContext(ctx, c.logger)

	result := &Result{State: StateIdle}
	if source == nil {
		return result, ErrSourceNotSelected
	}

	result.State = StateValidating
	epitopes, err := c.validate(ctx, logger, source, result)
	if err != nil {
		result.State = StateIdle
		return result, err
	}

	result.State = StateIdle
	result.Count = len(epitopes)
	return result, nil
}

func (c *Converter) validate(ctx context.Context, logger *slog.Logger, source Source, result *Result) ([]string, error) {
	text, description, err := source.Read(ctx)
	if err != nil {
		logger.Warn("input read failed", logging.Error(err))
		return nil, err
	}
	result.SourceDescription = description
	logger.Info("input received",
		logging.String(logging.FieldSource, description),
		logging.Int("bytes", len(text)))

	epitopes, err := c.limits.Parse(text)
	if err != nil {
		logger.Warn("validation failed",
			logging.String(logging.FieldSource, description),
			logging.Error(err))
		return nil, err
	}
	return epitopes, nil
}

func (c *Converter) chooseDestination(ctx context.Context, chooser DestinationChooser) (string, bool, error) {
	if chooser == nil {
		return "", false, nil
	}
	destination, ok, err := chooser.Choose(ctx, c.suggestedName())
	if err != nil {
		return "", false, err
	}
	destination = strings.TrimSpace(destination)
	if !ok || destination == "" {
		return "", false, nil
	}
	return c.ensureExtension(destination), true, nil
}

func (c *Converter) suggestedName() string {
	return "epitopes" + c.extensionOrDefault()
}

// ensureExtension appends the configured extension when the chosen name has
// none, mirroring a save dialog's default-extension behavior. Explicit
// extensions are kept as given.
func (c *Converter) ensureExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + c.extensionOrDefault()
	}
	return path
}

func (c *Converter) extensionOrDefault() string {
	if c.extension == "" {
		return ".fasta"
	}
	return c.extension
}
