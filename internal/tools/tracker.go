// internal/tools/tracker.go
package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ApplicationStatus tracks where an application sits in its lifecycle.
type ApplicationStatus string

const (
	StatusDraft     ApplicationStatus = "Draft"
	StatusSubmitted ApplicationStatus = "Submitted"
)

// ApplicationRecord is one tracked application.
type ApplicationRecord struct {
	ApplicationID string            `json:"application_id"`
	UserID        string            `json:"user_id"`
	SchemeName    string            `json:"scheme_name"`
	Status        ApplicationStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// trackerHandler is the signature each tracker action implements.
type trackerHandler func(input map[string]interface{}) (map[string]interface{}, error)

// ApplicationTracker is the one stateful tool: it allocates application ids
// and records status transitions. The mutex keeps the allocator and the
// records safe when several sessions share one tracker.
type ApplicationTracker struct {
	logger   *zap.Logger
	handlers map[string]trackerHandler

	mu      sync.Mutex
	records map[string]*ApplicationRecord
	order   []string // ids in creation order, for stable listings
}

var _ Tool = (*ApplicationTracker)(nil)

// NewApplicationTracker creates an empty tracker.
func NewApplicationTracker(logger *zap.Logger) *ApplicationTracker {
	t := &ApplicationTracker{
		logger:  logger.Named("application_tracker"),
		records: make(map[string]*ApplicationRecord),
	}
	t.registerHandlers()
	return t
}

// registerHandlers wires the action dispatch table.
func (t *ApplicationTracker) registerHandlers() {
	t.handlers = map[string]trackerHandler{
		"create": t.handleCreate,
		"status": t.handleStatus,
		"list":   t.handleList,
	}
}

// Name implements Tool.
func (t *ApplicationTracker) Name() string {
	return ToolApplicationTracker
}

// Execute dispatches on input["action"].
func (t *ApplicationTracker) Execute(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
	action, terr := stringField(ToolApplicationTracker, input, "action")
	if terr != nil {
		return nil, terr
	}

	handler, ok := t.handlers[strings.ToLower(action)]
	if !ok {
		return nil, &ToolError{
			Code:    ErrCodeUnknownAction,
			Tool:    ToolApplicationTracker,
			Field:   "action",
			Message: fmt.Sprintf("unknown action %q, valid actions: %s", action, strings.Join(t.actionNames(), ", ")),
		}
	}
	return handler(input)
}

func (t *ApplicationTracker) actionNames() []string {
	names := make([]string, 0, len(t.handlers))
	for name := range t.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// handleCreate allocates a fresh application id and submits the record. The
// record enters as Draft and transitions to Submitted before the result is
// returned; both states are logged.
func (t *ApplicationTracker) handleCreate(input map[string]interface{}) (map[string]interface{}, error) {
	userID, terr := stringField(ToolApplicationTracker, input, "user_id")
	if terr != nil {
		return nil, terr
	}
	schemeName, terr := stringField(ToolApplicationTracker, input, "scheme_name")
	if terr != nil {
		return nil, terr
	}

	now := time.Now()
	record := &ApplicationRecord{
		ApplicationID: "APP-" + uuid.NewString(),
		UserID:        userID,
		SchemeName:    schemeName,
		Status:        StatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	t.logger.Debug("application drafted",
		zap.String("application_id", record.ApplicationID),
		zap.String("scheme", schemeName))

	t.mu.Lock()
	record.Status = StatusSubmitted
	record.UpdatedAt = time.Now()
	t.records[record.ApplicationID] = record
	t.order = append(t.order, record.ApplicationID)
	t.mu.Unlock()

	t.logger.Info("application submitted",
		zap.String("application_id", record.ApplicationID),
		zap.String("scheme", schemeName),
		zap.String("user_id", userID))

	return map[string]interface{}{
		"application_id": record.ApplicationID,
		"status":         string(record.Status),
		"scheme_name":    schemeName,
	}, nil
}

// handleStatus reports the current record for input["application_id"].
func (t *ApplicationTracker) handleStatus(input map[string]interface{}) (map[string]interface{}, error) {
	id, terr := stringField(ToolApplicationTracker, input, "application_id")
	if terr != nil {
		return nil, terr
	}

	t.mu.Lock()
	record, ok := t.records[id]
	var snapshot ApplicationRecord
	if ok {
		snapshot = *record
	}
	t.mu.Unlock()

	if !ok {
		return nil, &ToolError{
			Code:    ErrCodeNotFound,
			Tool:    ToolApplicationTracker,
			Field:   "application_id",
			Message: fmt.Sprintf("no application with id %q", id),
		}
	}

	return map[string]interface{}{
		"application_id": snapshot.ApplicationID,
		"user_id":        snapshot.UserID,
		"scheme_name":    snapshot.SchemeName,
		"status":         string(snapshot.Status),
		"created_at":     snapshot.CreatedAt,
		"updated_at":     snapshot.UpdatedAt,
	}, nil
}

// handleList returns the caller's applications in creation order.
func (t *ApplicationTracker) handleList(input map[string]interface{}) (map[string]interface{}, error) {
	userID, terr := stringField(ToolApplicationTracker, input, "user_id")
	if terr != nil {
		return nil, terr
	}

	t.mu.Lock()
	applications := make([]ApplicationRecord, 0, len(t.order))
	for _, id := range t.order {
		if record := t.records[id]; record.UserID == userID {
			applications = append(applications, *record)
		}
	}
	t.mu.Unlock()

	return map[string]interface{}{
		"applications": applications,
		"total_count":  len(applications),
	}, nil
}
