package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"bugtracker/internal/model"
	"bugtracker/internal/repository"
)

const tracerName = "bugtracker/internal/service"

// BugService defines the use cases for handling bug reports.
type BugService interface {
	// List returns all reported bugs in the order they were created.
	List(ctx context.Context) ([]model.Bug, error)

	// Create records a new bug built from the title and description of in.
	// The input is expected to be validated already.
	Create(ctx context.Context, in model.Bug) (*model.Bug, error)

	// Count reports how many bugs have been recorded.
	Count(ctx context.Context) int
}

// bugService is a concrete implementation of BugService.
type bugService struct {
	repo    repository.BugRepository
	metrics *Metrics
}

// NewBugService constructs a new BugService. metrics may be nil.
func NewBugService(repo repository.BugRepository, metrics *Metrics) BugService {
	return &bugService{repo: repo, metrics: metrics}
}

func (s *bugService) List(ctx context.Context) ([]model.Bug, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "BugService.List", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	bugs, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list bugs")
		return nil, fmt.Errorf("list bugs: %w", err)
	}
	span.SetAttributes(attribute.Int("bugs.count", len(bugs)))
	return bugs, nil
}

func (s *bugService) Create(ctx context.Context, in model.Bug) (*model.Bug, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "BugService.Create", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	bug := model.Bug{
		Title:       in.Title,
		Description: in.Description,
	}
	stored, err := s.repo.Append(ctx, bug)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "append bug")
		return nil, fmt.Errorf("append bug: %w", err)
	}
	s.metrics.incCreated()
	return stored, nil
}

func (s *bugService) Count(ctx context.Context) int {
	return s.repo.Len(ctx)
}
