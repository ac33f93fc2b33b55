package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/internal/types"
)

// GormStore persists records through gorm. It works against both the
// postgres and sqlite dialects.
type GormStore struct {
	db *gorm.DB

	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewGormStore wraps an open gorm connection. Call Migrate before first use
// on a fresh database.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:  db,
		now: time.Now,
	}
}

// Migrate creates or updates the tables for every record type
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.ChatSession{},
		&models.DietPlan{},
		&models.BmiRecord{},
	); err != nil {
		return fmt.Errorf("failed to migrate store: %w", err)
	}
	return nil
}

// stamp returns a creation time strictly after the previous one so that
// ordering by created_at matches insertion order.
func (s *GormStore) stamp() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.now().UTC().Truncate(time.Microsecond)
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

func (s *GormStore) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	user, err := prepareUser(uuid.NewString(), username, password, s.stamp())
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *GormStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFound(err, "user %s", id)
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at ASC").
		First(&user).Error
	if err != nil {
		return nil, notFound(err, "user %q", username)
	}
	return &user, nil
}

func (s *GormStore) CreateProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	created, err := prepareProfile(profile, uuid.NewString(), s.stamp())
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &created, nil
}

func (s *GormStore) GetProfileByUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.firstProfile(s.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *GormStore) firstProfile(tx *gorm.DB, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := tx.Where("user_id = ?", userID).Order("created_at ASC").First(&profile).Error
	if err != nil {
		return nil, notFound(err, "profile for user %s", userID)
	}
	return &profile, nil
}

func (s *GormStore) UpdateProfile(ctx context.Context, userID string, req types.UpdateProfileRequest) (*models.UserProfile, error) {
	var updated models.UserProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.firstProfile(tx, userID)
		if err != nil {
			return err
		}

		updated = mergeProfile(*existing, req, s.now().UTC())
		if err := tx.Save(&updated).Error; err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *GormStore) CreateChatSession(ctx context.Context, session models.ChatSession) (*models.ChatSession, error) {
	created := prepareChatSession(session, uuid.NewString(), s.stamp())
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}
	return &created, nil
}

func (s *GormStore) GetChatSession(ctx context.Context, id string) (*models.ChatSession, error) {
	var session models.ChatSession
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		return nil, notFound(err, "chat session %s", id)
	}
	return &session, nil
}

func (s *GormStore) GetChatSessionsByUser(ctx context.Context, userID string) ([]models.ChatSession, error) {
	sessions := []models.ChatSession{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	return sessions, nil
}

func (s *GormStore) UpdateChatSession(ctx context.Context, id string, messages []models.ChatMessage) (*models.ChatSession, error) {
	var session models.ChatSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&session).Error; err != nil {
			return notFound(err, "chat session %s", id)
		}

		session.Messages = validMessages(messages)
		if err := tx.Save(&session).Error; err != nil {
			return fmt.Errorf("failed to update chat session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *GormStore) CreateDietPlan(ctx context.Context, plan models.DietPlan) (*models.DietPlan, error) {
	created, err := prepareDietPlan(plan, uuid.NewString(), s.stamp())
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to create diet plan: %w", err)
	}
	return &created, nil
}

func (s *GormStore) GetDietPlan(ctx context.Context, id string) (*models.DietPlan, error) {
	var plan models.DietPlan
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, notFound(err, "diet plan %s", id)
	}
	return &plan, nil
}

func (s *GormStore) GetDietPlansByUser(ctx context.Context, userID string) ([]models.DietPlan, error) {
	plans := []models.DietPlan{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list diet plans: %w", err)
	}
	return plans, nil
}

func (s *GormStore) CreateBmiRecord(ctx context.Context, record models.BmiRecord) (*models.BmiRecord, error) {
	created, err := prepareBmiRecord(record, uuid.NewString(), s.stamp())
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to create bmi record: %w", err)
	}
	return &created, nil
}

func (s *GormStore) GetBmiRecord(ctx context.Context, id string) (*models.BmiRecord, error) {
	var record models.BmiRecord
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, notFound(err, "bmi record %s", id)
	}
	return &record, nil
}

func (s *GormStore) GetBmiRecordsByUser(ctx context.Context, userID string) ([]models.BmiRecord, error) {
	records := []models.BmiRecord{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bmi records: %w", err)
	}
	return records, nil
}

var _ Store = (*GormStore)(nil)
