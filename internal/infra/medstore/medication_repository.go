package medstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type medicationRecord struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"not null"`
	Description   string
	DosageAmount  string
	DosageUnit    string
	Frequency     int
	ScheduleTimes string
	Instructions  string
	StartDate     time.Time
	EndDate       *time.Time
	Notes         string
	IconType      string
	IsActive      bool `gorm:"index"`
	LeadMinutes   *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (medicationRecord) TableName() string {
	return "medications"
}

type medicationRepository struct {
	db *gorm.DB
}

func NewMedicationRepository(store *Store) domain.MedicationRepository {
	return &medicationRepository{
		db: store.db,
	}
}

func (r *medicationRepository) List(ctx context.Context) ([]*domain.Medication, error) {
	var records []medicationRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	return toDomainList(records), nil
}

func (r *medicationRepository) ListActive(ctx context.Context) ([]*domain.Medication, error) {
	var records []medicationRecord
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list active medications: %w", err)
	}
	return toDomainList(records), nil
}

func (r *medicationRepository) GetByID(ctx context.Context, id int64) (*domain.Medication, error) {
	var record medicationRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMedicationNotFound
		}
		return nil, fmt.Errorf("failed to get medication %d: %w", id, err)
	}
	return record.toDomain(), nil
}

func (r *medicationRepository) Create(ctx context.Context, med *domain.Medication) error {
	if err := validate(med); err != nil {
		return err
	}

	record := fromDomain(med)
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to create medication: %w", err)
	}

	med.ID = record.ID
	med.CreatedAt = record.CreatedAt
	med.UpdatedAt = record.UpdatedAt
	return nil
}

func (r *medicationRepository) Update(ctx context.Context, med *domain.Medication) error {
	if err := validate(med); err != nil {
		return err
	}

	var existing medicationRecord
	if err := r.db.WithContext(ctx).First(&existing, med.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMedicationNotFound
		}
		return fmt.Errorf("failed to load medication %d: %w", med.ID, err)
	}

	record := fromDomain(med)
	record.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("failed to update medication %d: %w", med.ID, err)
	}

	med.CreatedAt = record.CreatedAt
	med.UpdatedAt = record.UpdatedAt
	return nil
}

func (r *medicationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&medicationRecord{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete medication %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMedicationNotFound
	}
	return nil
}

func validate(med *domain.Medication) error {
	if med == nil {
		return fmt.Errorf("%w: nil medication", domain.ErrInvalidMedication)
	}
	if strings.TrimSpace(med.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidMedication)
	}
	if med.LeadMinutes != nil && *med.LeadMinutes < 0 {
		return fmt.Errorf("%w: lead minutes must not be negative", domain.ErrInvalidMedication)
	}
	return nil
}

func fromDomain(med *domain.Medication) medicationRecord {
	return medicationRecord{
		ID:            med.ID,
		Name:          med.Name,
		Description:   med.Description,
		DosageAmount:  med.DosageAmount,
		DosageUnit:    med.DosageUnit,
		Frequency:     med.Frequency,
		ScheduleTimes: domain.JoinScheduleTimes(med.ScheduleTimes),
		Instructions:  med.Instructions,
		StartDate:     med.StartDate,
		EndDate:       med.EndDate,
		Notes:         med.Notes,
		IconType:      med.IconType,
		IsActive:      med.IsActive,
		LeadMinutes:   med.LeadMinutes,
		CreatedAt:     med.CreatedAt,
		UpdatedAt:     med.UpdatedAt,
	}
}

func (rec medicationRecord) toDomain() *domain.Medication {
	return &domain.Medication{
		ID:            rec.ID,
		Name:          rec.Name,
		Description:   rec.Description,
		DosageAmount:  rec.DosageAmount,
		DosageUnit:    rec.DosageUnit,
		Frequency:     rec.Frequency,
		ScheduleTimes: domain.SplitScheduleTimes(rec.ScheduleTimes),
		Instructions:  rec.Instructions,
		StartDate:     rec.StartDate,
		EndDate:       rec.EndDate,
		Notes:         rec.Notes,
		IconType:      rec.IconType,
		IsActive:      rec.IsActive,
		LeadMinutes:   rec.LeadMinutes,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func toDomainList(records []medicationRecord) []*domain.Medication {
	meds := make([]*domain.Medication, 0, len(records))
	for _, rec := range records {
		meds = append(meds, rec.toDomain())
	}
	return meds
}
