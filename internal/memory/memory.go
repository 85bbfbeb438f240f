// internal/memory/memory.go
package memory

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/janmitra/mitra-cli/internal/config"
	"github.com/janmitra/mitra-cli/internal/locale"
)

// Role identifies the author of a recorded conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one recorded utterance with the language it was spoken in.
type Turn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Language  string    `json:"language"`
	Timestamp time.Time `json:"timestamp"`
}

// Category is the citizen's social category. The zero value means the user
// has not stated one yet.
type Category string

const (
	CategorySC      Category = "SC"
	CategoryST      Category = "ST"
	CategoryOBC     Category = "OBC"
	CategoryGeneral Category = "General"
)

// ParseCategory normalizes a spoken category answer. Anything that is not an
// exact SC/ST/OBC/General token resolves to General, the documented fallback.
func ParseCategory(text string) Category {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "SC":
		return CategorySC
	case "ST":
		return CategoryST
	case "OBC":
		return CategoryOBC
	default:
		return CategoryGeneral
	}
}

// Required profile fields for eligibility evaluation, in prompting order.
var requiredFields = []string{"age", "annual_income", "category"}

// UserProfile is the evolving set of facts known about the citizen. The known
// fields are typed; Extra carries anything else an extractor reports so a new
// fact is never silently dropped.
type UserProfile struct {
	Age          *int                   `json:"age,omitempty"`
	AnnualIncome *int                   `json:"annual_income,omitempty"`
	Category     Category               `json:"category,omitempty"`
	Extra        map[string]interface{} `json:"extra,omitempty"`
}

// Fields flattens the set fields into a map, the shape the tool contract
// expects for eligibility evaluation.
func (p UserProfile) Fields() map[string]interface{} {
	out := make(map[string]interface{}, 3+len(p.Extra))
	if p.Age != nil {
		out["age"] = *p.Age
	}
	if p.AnnualIncome != nil {
		out["annual_income"] = *p.AnnualIncome
	}
	if p.Category != "" {
		out["category"] = string(p.Category)
	}
	for k, v := range p.Extra {
		out[k] = v
	}
	return out
}

// FieldCount reports how many facts are currently set.
func (p UserProfile) FieldCount() int {
	return len(p.Fields())
}

// MissingRequired lists the required eligibility fields the user has not
// supplied yet, in the order slot-filling should ask for them.
func (p UserProfile) MissingRequired() []string {
	var missing []string
	if p.Age == nil {
		missing = append(missing, "age")
	}
	if p.AnnualIncome == nil {
		missing = append(missing, "annual_income")
	}
	if p.Category == "" {
		missing = append(missing, "category")
	}
	return missing
}

func (p UserProfile) clone() UserProfile {
	out := UserProfile{Category: p.Category}
	if p.Age != nil {
		v := *p.Age
		out.Age = &v
	}
	if p.AnnualIncome != nil {
		v := *p.AnnualIncome
		out.AnnualIncome = &v
	}
	if len(p.Extra) > 0 {
		out.Extra = make(map[string]interface{}, len(p.Extra))
		for k, v := range p.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// ContradictionRecord is a logged event where a profile field's value changed
// to a conflicting value. The log is append-only and never pruned.
type ContradictionRecord struct {
	Field     string      `json:"field"`
	OldValue  interface{} `json:"old_value"`
	NewValue  interface{} `json:"new_value"`
	Language  string      `json:"language"`
	Timestamp time.Time   `json:"timestamp"`
}

// Notice renders the user-facing notice for this contradiction in the
// language it was detected in. It is a pure formatter; resolution has already
// happened by last-write-wins when the record was created.
func (r ContradictionRecord) Notice() string {
	return locale.Messagef(locale.MsgContradiction, r.Language,
		locale.FieldName(r.Field, r.Language), r.OldValue, r.NewValue)
}

// Context is a read-only snapshot of memory handed to planning and prompt
// construction.
type Context struct {
	RecentTurns []Turn      `json:"recent_conversation"`
	Profile     UserProfile `json:"user_profile"`
}

// Statistics summarizes memory usage. Turn totals are all-time counts and
// keep growing after old turns are evicted from the bounded buffer.
type Statistics struct {
	TotalTurns     int      `json:"total_turns"`
	UserTurns      int      `json:"user_turns"`
	AssistantTurns int      `json:"assistant_turns"`
	HeldTurns      int      `json:"held_turns"`
	ProfileFields  int      `json:"profile_fields"`
	Contradictions int      `json:"contradictions"`
	Languages      []string `json:"languages"`
}

// ConversationMemory owns the bounded turn history, the evolving user
// profile, and the append-only contradiction log for one session. All writes
// to the profile go through UpdateProfile so that every conflicting overwrite
// is logged exactly once before last-write-wins applies it.
type ConversationMemory struct {
	logger       *zap.Logger
	mu           sync.RWMutex
	maxHistory   int
	contextTurns int

	turns          []Turn
	profile        UserProfile
	contradictions []ContradictionRecord

	totalTurns     int
	userTurns      int
	assistantTurns int
	languages      map[string]struct{}
}

// NewConversationMemory creates a session memory bounded by
// cfg.MaxHistory turns. Non-positive limits fall back to the documented
// defaults so direct construction in tests behaves like a validated config.
func NewConversationMemory(cfg config.AgentConfig, logger *zap.Logger) *ConversationMemory {
	maxHistory := cfg.MaxHistory
	if maxHistory <= 0 {
		maxHistory = 20
	}
	contextTurns := cfg.ContextTurns
	if contextTurns <= 0 {
		contextTurns = 5
	}
	return &ConversationMemory{
		logger:       logger.Named("memory"),
		maxHistory:   maxHistory,
		contextTurns: contextTurns,
		languages:    make(map[string]struct{}),
	}
}

// AddTurn appends one utterance to the history, evicting the oldest turns
// when the buffer exceeds its bound.
func (m *ConversationMemory) AddTurn(role Role, content, language string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.turns = append(m.turns, Turn{
		Role:      role,
		Content:   content,
		Language:  language,
		Timestamp: time.Now(),
	})
	if over := len(m.turns) - m.maxHistory; over > 0 {
		evicted := make([]Turn, len(m.turns)-over)
		copy(evicted, m.turns[over:])
		m.turns = evicted
	}

	m.totalTurns++
	switch role {
	case RoleUser:
		m.userTurns++
	case RoleAssistant:
		m.assistantTurns++
	}
	if language != "" {
		m.languages[language] = struct{}{}
	}
}

// UpdateProfile applies updates field by field with last-write-wins
// resolution. Every overwrite of an existing, differing value appends exactly
// one ContradictionRecord before the new value lands; the new records are
// returned so the caller can surface notices to the user. Values for the
// numeric fields are coerced to int first so "50000" and 50000 compare equal.
func (m *ConversationMemory) UpdateProfile(updates map[string]interface{}, language string) []ContradictionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	var records []ContradictionRecord
	for _, field := range updateOrder(updates) {
		value := updates[field]
		if value == nil {
			continue
		}
		if rec, ok := m.applyField(field, value, language); ok {
			records = append(records, rec)
		}
	}

	if len(records) > 0 {
		m.contradictions = append(m.contradictions, records...)
		for _, rec := range records {
			m.logger.Warn("profile contradiction detected",
				zap.String("field", rec.Field),
				zap.Any("old", rec.OldValue),
				zap.Any("new", rec.NewValue),
				zap.String("language", rec.Language))
		}
	}
	return records
}

// applyField writes one field and reports the contradiction, if any. The
// caller holds the lock.
func (m *ConversationMemory) applyField(field string, value interface{}, language string) (ContradictionRecord, bool) {
	switch field {
	case "age":
		n, ok := toInt(value)
		if !ok {
			m.logger.Warn("ignoring non-numeric profile update", zap.String("field", field), zap.Any("value", value))
			return ContradictionRecord{}, false
		}
		old := m.profile.Age
		m.profile.Age = &n
		if old != nil && *old != n {
			return m.record(field, *old, n, language), true
		}
	case "annual_income":
		n, ok := toInt(value)
		if !ok {
			m.logger.Warn("ignoring non-numeric profile update", zap.String("field", field), zap.Any("value", value))
			return ContradictionRecord{}, false
		}
		old := m.profile.AnnualIncome
		m.profile.AnnualIncome = &n
		if old != nil && *old != n {
			return m.record(field, *old, n, language), true
		}
	case "category":
		cat := toCategory(value)
		old := m.profile.Category
		m.profile.Category = cat
		if old != "" && old != cat {
			return m.record(field, string(old), string(cat), language), true
		}
	default:
		if m.profile.Extra == nil {
			m.profile.Extra = make(map[string]interface{})
		}
		old, existed := m.profile.Extra[field]
		m.profile.Extra[field] = value
		if existed && old != nil && !reflect.DeepEqual(old, value) {
			return m.record(field, old, value, language), true
		}
	}
	return ContradictionRecord{}, false
}

func (m *ConversationMemory) record(field string, oldValue, newValue interface{}, language string) ContradictionRecord {
	return ContradictionRecord{
		Field:     field,
		OldValue:  oldValue,
		NewValue:  newValue,
		Language:  language,
		Timestamp: time.Now(),
	}
}

// Context returns the recent-turn window and a profile copy for planning and
// prompt construction.
func (m *ConversationMemory) Context() Context {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := m.contextTurns
	if n > len(m.turns) {
		n = len(m.turns)
	}
	recent := make([]Turn, n)
	copy(recent, m.turns[len(m.turns)-n:])
	return Context{
		RecentTurns: recent,
		Profile:     m.profile.clone(),
	}
}

// History returns a copy of every turn still held in the bounded buffer.
func (m *ConversationMemory) History() []Turn {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// Profile returns a copy of the current user profile.
func (m *ConversationMemory) Profile() UserProfile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile.clone()
}

// Contradictions returns a copy of the append-only contradiction log.
func (m *ConversationMemory) Contradictions() []ContradictionRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]ContradictionRecord, len(m.contradictions))
	copy(out, m.contradictions)
	return out
}

// Statistics reports turn, profile, and contradiction counts, plus the
// sorted set of languages the conversation has touched.
func (m *ConversationMemory) Statistics() Statistics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	languages := make([]string, 0, len(m.languages))
	for language := range m.languages {
		languages = append(languages, language)
	}
	sort.Strings(languages)

	return Statistics{
		TotalTurns:     m.totalTurns,
		UserTurns:      m.userTurns,
		AssistantTurns: m.assistantTurns,
		HeldTurns:      len(m.turns),
		ProfileFields:  m.profile.FieldCount(),
		Contradictions: len(m.contradictions),
		Languages:      languages,
	}
}

// updateOrder fixes the field application order: the known fields first in
// prompting order, then extras sorted by name. Map iteration alone would make
// the contradiction log ordering nondeterministic.
func updateOrder(updates map[string]interface{}) []string {
	known := make([]string, 0, len(requiredFields))
	for _, f := range requiredFields {
		if _, ok := updates[f]; ok {
			known = append(known, f)
		}
	}
	var extras []string
	for f := range updates {
		if !isRequiredField(f) {
			extras = append(extras, f)
		}
	}
	sort.Strings(extras)
	return append(known, extras...)
}

func isRequiredField(field string) bool {
	for _, f := range requiredFields {
		if f == field {
			return true
		}
	}
	return false
}

// toInt coerces the scalar shapes that reach the profile: native ints,
// JSON-decoded float64s, and numeric strings.
func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case float32:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func toCategory(value interface{}) Category {
	switch v := value.(type) {
	case Category:
		return ParseCategory(string(v))
	case string:
		return ParseCategory(v)
	default:
		return CategoryGeneral
	}
}
