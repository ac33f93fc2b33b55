package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/internal/types"
)

// table keeps records by id along with their insertion order.
type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insert(id string, v T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// MemoryStore is a process-local Store. Records are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	users    *table[models.User]
	profiles *table[models.UserProfile]
	sessions *table[models.ChatSession]
	plans    *table[models.DietPlan]
	records  *table[models.BmiRecord]

	now   func() time.Time
	newID func() string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    newTable[models.User](),
		profiles: newTable[models.UserProfile](),
		sessions: newTable[models.ChatSession](),
		plans:    newTable[models.DietPlan](),
		records:  newTable[models.BmiRecord](),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (s *MemoryStore) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	user, err := prepareUser(s.newID(), username, password, s.now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users.insert(user.ID, user)
	return &user, nil
}

func (s *MemoryStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users.get(id)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return &user, nil
}

func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := lo.Find(s.users.all(), func(u models.User) bool {
		return u.Username == username
	})
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	return &user, nil
}

func (s *MemoryStore) CreateProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	created, err := prepareProfile(profile, s.newID(), s.now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.profiles.insert(created.ID, created)
	s.mu.Unlock()

	out := cloneProfile(created)
	return &out, nil
}

// GetProfileByUser returns the first profile created for userID
func (s *MemoryStore) GetProfileByUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.findProfile(userID)
	if !ok {
		return nil, fmt.Errorf("profile for user %s: %w", userID, ErrNotFound)
	}
	out := cloneProfile(profile)
	return &out, nil
}

func (s *MemoryStore) UpdateProfile(ctx context.Context, userID string, req types.UpdateProfileRequest) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.findProfile(userID)
	if !ok {
		return nil, fmt.Errorf("profile for user %s: %w", userID, ErrNotFound)
	}

	merged := mergeProfile(existing, req, s.now())
	s.profiles.insert(merged.ID, merged)

	out := cloneProfile(merged)
	return &out, nil
}

func (s *MemoryStore) findProfile(userID string) (models.UserProfile, bool) {
	return lo.Find(s.profiles.all(), func(p models.UserProfile) bool {
		return p.UserID == userID
	})
}

func (s *MemoryStore) CreateChatSession(ctx context.Context, session models.ChatSession) (*models.ChatSession, error) {
	created := prepareChatSession(session, s.newID(), s.now())

	s.mu.Lock()
	s.sessions.insert(created.ID, created)
	s.mu.Unlock()

	out := cloneChatSession(created)
	return &out, nil
}

func (s *MemoryStore) GetChatSession(ctx context.Context, id string) (*models.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions.get(id)
	if !ok {
		return nil, fmt.Errorf("chat session %s: %w", id, ErrNotFound)
	}
	out := cloneChatSession(session)
	return &out, nil
}

func (s *MemoryStore) GetChatSessionsByUser(ctx context.Context, userID string) ([]models.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := lo.Filter(s.sessions.all(), func(cs models.ChatSession, _ int) bool {
		return cs.UserID != nil && *cs.UserID == userID
	})
	return lo.Map(matches, func(cs models.ChatSession, _ int) models.ChatSession {
		return cloneChatSession(cs)
	}), nil
}

// UpdateChatSession replaces the message list of an existing session
func (s *MemoryStore) UpdateChatSession(ctx context.Context, id string, messages []models.ChatMessage) (*models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.get(id)
	if !ok {
		return nil, fmt.Errorf("chat session %s: %w", id, ErrNotFound)
	}
	session.Messages = slices.Clone(validMessages(messages))
	s.sessions.insert(id, session)

	out := cloneChatSession(session)
	return &out, nil
}

func (s *MemoryStore) CreateDietPlan(ctx context.Context, plan models.DietPlan) (*models.DietPlan, error) {
	created, err := prepareDietPlan(plan, s.newID(), s.now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.plans.insert(created.ID, created)
	s.mu.Unlock()

	out := cloneDietPlan(created)
	return &out, nil
}

func (s *MemoryStore) GetDietPlan(ctx context.Context, id string) (*models.DietPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan, ok := s.plans.get(id)
	if !ok {
		return nil, fmt.Errorf("diet plan %s: %w", id, ErrNotFound)
	}
	out := cloneDietPlan(plan)
	return &out, nil
}

func (s *MemoryStore) GetDietPlansByUser(ctx context.Context, userID string) ([]models.DietPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := lo.Filter(s.plans.all(), func(p models.DietPlan, _ int) bool {
		return p.UserID != nil && *p.UserID == userID
	})
	return lo.Map(matches, func(p models.DietPlan, _ int) models.DietPlan {
		return cloneDietPlan(p)
	}), nil
}

func (s *MemoryStore) CreateBmiRecord(ctx context.Context, record models.BmiRecord) (*models.BmiRecord, error) {
	created, err := prepareBmiRecord(record, s.newID(), s.now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.records.insert(created.ID, created)
	s.mu.Unlock()

	out := cloneBmiRecord(created)
	return &out, nil
}

func (s *MemoryStore) GetBmiRecord(ctx context.Context, id string) (*models.BmiRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records.get(id)
	if !ok {
		return nil, fmt.Errorf("bmi record %s: %w", id, ErrNotFound)
	}
	out := cloneBmiRecord(record)
	return &out, nil
}

func (s *MemoryStore) GetBmiRecordsByUser(ctx context.Context, userID string) ([]models.BmiRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := lo.Filter(s.records.all(), func(r models.BmiRecord, _ int) bool {
		return r.UserID != nil && *r.UserID == userID
	})
	return lo.Map(matches, func(r models.BmiRecord, _ int) models.BmiRecord {
		return cloneBmiRecord(r)
	}), nil
}

var _ Store = (*MemoryStore)(nil)
