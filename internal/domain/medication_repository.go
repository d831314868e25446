package domain

import "context"

//go:generate mockgen -source=medication_repository.go -destination=medication_repository_mock.go -package=domain

type MedicationRepository interface {
	List(ctx context.Context) ([]*Medication, error)
	ListActive(ctx context.Context) ([]*Medication, error)
	GetByID(ctx context.Context, id int64) (*Medication, error)
	Create(ctx context.Context, med *Medication) error
	Update(ctx context.Context, med *Medication) error
	Delete(ctx context.Context, id int64) error
}
