package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	errorvalues "github.com/duotrack/duotracker/internal/error_values"
	"github.com/duotrack/duotracker/internal/repository"
	"github.com/duotrack/duotracker/pkg/entity"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type FinanceService struct {
	repo repository.FinanceRepositoryI
}

func NewFinanceService(financeRepo repository.FinanceRepositoryI) *FinanceService {
	if financeRepo == nil {
		log.Fatal("provided nil financeRepo")
	}
	return &FinanceService{
		repo: financeRepo,
	}
}

func (fs *FinanceService) SaveProfile(ctx context.Context, uid uuid.UUID, req SaveFinanceRequest) error {
	err := validate.Struct(req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return err
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	err = fs.repo.UpsertProfile(ctx, &entity.FinanceProfile{
		UserID: uid,
		Salary: req.Salary,
		EMI:    req.EMI,
		Debt:   req.Debt,
	})
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (fs *FinanceService) RecordPayment(ctx context.Context, uid uuid.UUID, amount float64) error {
	if amount < 0 {
		return errors.New("validation error: payment amount must be non-negative")
	}
	err := fs.repo.InsertPayment(ctx, uid, amount, dateOnly(time.Now()))
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (fs *FinanceService) Payments(ctx context.Context, uid uuid.UUID) ([]entity.Payment, error) {
	payments, err := fs.repo.GetPayments(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return payments, nil
}

// Summary derives the ledger view: payments reduce the effective remaining
// debt without ever touching the stored baseline. MonthsToClear stays nil
// when there is no EMI to divide by.
func (fs *FinanceService) Summary(ctx context.Context, uid uuid.UUID) (*entity.FinanceSummary, error) {
	profile, err := fs.repo.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFinanceNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	totalPaid, err := fs.repo.SumPayments(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	remaining := profile.Debt - totalPaid
	if remaining < 0 {
		remaining = 0
	}
	var monthsToClear *int
	if profile.EMI > 0 {
		months := int(math.Ceil(remaining / profile.EMI))
		monthsToClear = &months
	}
	return &entity.FinanceSummary{
		Salary:        profile.Salary,
		EMI:           profile.EMI,
		Debt:          profile.Debt,
		TotalPaid:     totalPaid,
		RemainingDebt: remaining,
		MonthsToClear: monthsToClear,
	}, nil
}
