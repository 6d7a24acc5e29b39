package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/repositories"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/validation"
)

// FeeService defines the interface for fee operations
type FeeService interface {
	CreateFee(ctx context.Context, in models.NewFee) (models.Fee, error)
	GetFeeByID(ctx context.Context, id int64) (models.Fee, error)
	GetAllFees(ctx context.Context) []models.Fee
	GetFeesByStudent(ctx context.Context, studentID int64) []models.Fee
	GetFeesByBatch(ctx context.Context, batchID int64) []models.Fee
	UpdateFee(ctx context.Context, id int64, p models.FeePatch) (models.Fee, error)
	DeleteFee(ctx context.Context, id int64)
}

type feeServiceImpl struct {
	feeRepo *repositories.FeeRepository
	logger  zerolog.Logger
}

func NewFeeService(feeRepo *repositories.FeeRepository, logger zerolog.Logger) FeeService {
	return &feeServiceImpl{feeRepo: feeRepo, logger: logger}
}

func (s *feeServiceImpl) CreateFee(ctx context.Context, in models.NewFee) (models.Fee, error) {
	extra := validation.Errors{}
	extra.NonNegative("amount", in.Amount)
	if err := validation.StructWith(in, extra); err != nil {
		return models.Fee{}, err
	}
	fee := s.feeRepo.Create(in)
	s.logger.Info().Int64("feeID", fee.ID).Int64("studentID", fee.StudentID).Str("status", fee.Status).Msg("Fee created")
	return fee, nil
}

func (s *feeServiceImpl) GetFeeByID(ctx context.Context, id int64) (models.Fee, error) {
	fee, ok := s.feeRepo.GetByID(id)
	if !ok {
		return models.Fee{}, apperrors.ErrFeeNotFound
	}
	return fee, nil
}

func (s *feeServiceImpl) GetAllFees(ctx context.Context) []models.Fee {
	return s.feeRepo.GetAll()
}

func (s *feeServiceImpl) GetFeesByStudent(ctx context.Context, studentID int64) []models.Fee {
	return s.feeRepo.GetByStudent(studentID)
}

func (s *feeServiceImpl) GetFeesByBatch(ctx context.Context, batchID int64) []models.Fee {
	return s.feeRepo.GetByBatch(batchID)
}

// UpdateFee merges p onto the stored fee. Marking a fee paid is an ordinary
// update of status and paidDate.
func (s *feeServiceImpl) UpdateFee(ctx context.Context, id int64, p models.FeePatch) (models.Fee, error) {
	e := validation.Errors{}
	validation.Required(e, "studentId", p.StudentID)
	validation.Positive(e, "studentId", p.StudentID)
	validation.Positive(e, "batchId", p.BatchID)
	e.NonNegative("amount", p.Amount.Value)
	e.OneOf("status", p.Status, true, validation.FeeStatuses...)
	if err := e.Err(); err != nil {
		return models.Fee{}, err
	}

	fee, err := s.feeRepo.Update(id, p)
	if err != nil {
		return models.Fee{}, err
	}
	s.logger.Info().Int64("feeID", id).Str("status", fee.Status).Msg("Fee updated")
	return fee, nil
}

func (s *feeServiceImpl) DeleteFee(ctx context.Context, id int64) {
	s.feeRepo.Delete(id)
	s.logger.Info().Int64("feeID", id).Msg("Fee deleted")
}
