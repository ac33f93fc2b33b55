package service

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/lo"

	"github.com/fitgenius/backend/internal/bmi"
	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/internal/store"
	"github.com/fitgenius/backend/internal/types"
)

// BMIService runs the assessment pipeline: normalize, compute, recommend, store
type BMIService struct {
	store store.Store
	tips  TipsProvider
}

var _ IBMIService = (*BMIService)(nil)

// NewBMIService creates a new BMIService instance
func NewBMIService(s store.Store, tips TipsProvider) *BMIService {
	return &BMIService{
		store: s,
		tips:  tips,
	}
}

// Assess computes the BMI for req, attaches recommendations and stores the record
func (s *BMIService) Assess(ctx context.Context, req types.CreateBMIRequest) (*models.BmiRecord, error) {
	n, err := bmi.Normalize(bmi.Measurements{
		HeightCm:     req.Height,
		HeightFeet:   req.HeightFeet,
		HeightInches: req.HeightInches,
		WeightKg:     req.Weight,
		WeightLbs:    req.WeightLbs,
		Age:          req.Age,
		Gender:       req.Gender,
	})
	if err != nil {
		return nil, err
	}

	result, err := bmi.Compute(n.HeightCm, n.WeightKg)
	if err != nil {
		return nil, err
	}

	recs := s.tips.ForBMI(ctx, BMIContext{
		BMI:      result.BMI,
		Category: result.Category,
		Age:      n.Age,
		Gender:   n.Gender,
	})

	record, err := s.store.CreateBmiRecord(ctx, models.BmiRecord{
		UserID:          lo.ToPtr(req.UserID),
		Height:          n.HeightCm,
		Weight:          n.WeightKg,
		BMI:             result.BMI,
		Category:        string(result.Category),
		Recommendations: recs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save bmi record: %w", err)
	}

	log.Printf("[BMI] recorded %.1f (%s) for user %q", record.BMI, record.Category, req.UserID)
	return record, nil
}

// History lists a user's BMI records, oldest first
func (s *BMIService) History(ctx context.Context, userID string) ([]models.BmiRecord, error) {
	records, err := s.store.GetBmiRecordsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bmi records: %w", err)
	}
	return records, nil
}
