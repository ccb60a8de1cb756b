package recorder

import "GradeBook/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordGrade(_ *model.GradeAddedEvent) error { return nil }
func (n *NoopRecorder) RecordSummary(_ *SessionSummary) error      { return nil }
func (n *NoopRecorder) Close() error                               { return nil }
