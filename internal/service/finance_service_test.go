package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	errorvalues "github.com/duotrack/duotracker/internal/error_values"
	"github.com/duotrack/duotracker/internal/repository/mocks"
	"github.com/duotrack/duotracker/internal/service"
	"github.com/duotrack/duotracker/pkg/entity"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSaveFinanceProfile(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	financeRepo := mocks.NewMockFinanceRepositoryI(ctrl)

	serv := service.NewFinanceService(financeRepo)
	userID := uuid.New()
	testCases := []struct {
		Desc         string
		Request      service.SaveFinanceRequest
		Error        bool
		MockPrepFunc func()
	}{
		{
			Desc:    "success",
			Request: service.SaveFinanceRequest{Salary: 50000, EMI: 1200, Debt: 24000},
			MockPrepFunc: func() {
				financeRepo.EXPECT().UpsertProfile(gomock.Any(), &entity.FinanceProfile{
					UserID: userID,
					Salary: 50000,
					EMI:    1200,
					Debt:   24000,
				}).Return(nil)
			},
		},
		{
			Desc:    "zero values are valid",
			Request: service.SaveFinanceRequest{},
			MockPrepFunc: func() {
				financeRepo.EXPECT().UpsertProfile(gomock.Any(), &entity.FinanceProfile{
					UserID: userID,
				}).Return(nil)
			},
		},
		{
			Desc:         "negative salary rejected",
			Request:      service.SaveFinanceRequest{Salary: -1, EMI: 1200, Debt: 24000},
			Error:        true,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "negative debt rejected",
			Request:      service.SaveFinanceRequest{Salary: 50000, EMI: 1200, Debt: -500},
			Error:        true,
			MockPrepFunc: func() {},
		},
		{
			Desc:    "db error",
			Request: service.SaveFinanceRequest{Salary: 50000, EMI: 1200, Debt: 24000},
			Error:   true,
			MockPrepFunc: func() {
				financeRepo.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.SaveProfile(ctx, userID, tc.Request)
			if tc.Error {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecordPayment(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	financeRepo := mocks.NewMockFinanceRepositoryI(ctrl)

	serv := service.NewFinanceService(financeRepo)
	userID := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		financeRepo.EXPECT().InsertPayment(gomock.Any(), userID, 300.0, gomock.Any()).Return(nil)
		err := serv.RecordPayment(ctx, userID, 300.0)
		assert.NoError(t, err)
	})
	t.Run("zero amount accepted", func(t *testing.T) {
		financeRepo.EXPECT().InsertPayment(gomock.Any(), userID, 0.0, gomock.Any()).Return(nil)
		err := serv.RecordPayment(ctx, userID, 0)
		assert.NoError(t, err)
	})
	t.Run("negative amount rejected before any repo call", func(t *testing.T) {
		err := serv.RecordPayment(ctx, userID, -10)
		assert.Error(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		financeRepo.EXPECT().InsertPayment(gomock.Any(), userID, 300.0, gomock.Any()).Return(errors.New("db error"))
		err := serv.RecordPayment(ctx, userID, 300.0)
		assert.Error(t, err)
	})
}

func TestPayments(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	financeRepo := mocks.NewMockFinanceRepositoryI(ctrl)

	serv := service.NewFinanceService(financeRepo)
	userID := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		today := day(time.Now())
		payments := []entity.Payment{
			{ID: 2, UserID: userID, Amount: 300, PaymentDate: today},
			{ID: 1, UserID: userID, Amount: 150, PaymentDate: today.AddDate(0, 0, -1)},
		}
		financeRepo.EXPECT().GetPayments(gomock.Any(), userID).Return(payments, nil)
		result, err := serv.Payments(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, payments, result)
	})
	t.Run("no payments", func(t *testing.T) {
		financeRepo.EXPECT().GetPayments(gomock.Any(), userID).Return([]entity.Payment{}, nil)
		result, err := serv.Payments(ctx, userID)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		financeRepo.EXPECT().GetPayments(gomock.Any(), userID).Return(nil, errors.New("db error"))
		_, err := serv.Payments(ctx, userID)
		assert.EqualError(t, err, "repository error: db error")
	})
}

func TestFinanceSummary(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	financeRepo := mocks.NewMockFinanceRepositoryI(ctrl)

	serv := service.NewFinanceService(financeRepo)
	userID := uuid.New()
	months := func(n int) *int { return &n }
	testCases := []struct {
		Desc         string
		Error        error
		Result       *entity.FinanceSummary
		MockPrepFunc func()
	}{
		{
			Desc: "partial repayment with ceiling",
			Result: &entity.FinanceSummary{
				Salary:        50000,
				EMI:           1000,
				Debt:          24000,
				TotalPaid:     500,
				RemainingDebt: 23500,
				MonthsToClear: months(24),
			},
			MockPrepFunc: func() {
				financeRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(&entity.FinanceProfile{
					UserID: userID,
					Salary: 50000,
					EMI:    1000,
					Debt:   24000,
				}, nil)
				financeRepo.EXPECT().SumPayments(gomock.Any(), userID).Return(500.0, nil)
			},
		},
		{
			Desc: "overpaid clamps remaining to zero",
			Result: &entity.FinanceSummary{
				Salary:        50000,
				EMI:           1000,
				Debt:          2000,
				TotalPaid:     5000,
				RemainingDebt: 0,
				MonthsToClear: months(0),
			},
			MockPrepFunc: func() {
				financeRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(&entity.FinanceProfile{
					UserID: userID,
					Salary: 50000,
					EMI:    1000,
					Debt:   2000,
				}, nil)
				financeRepo.EXPECT().SumPayments(gomock.Any(), userID).Return(5000.0, nil)
			},
		},
		{
			Desc: "no emi leaves months to clear unset",
			Result: &entity.FinanceSummary{
				Salary:        50000,
				EMI:           0,
				Debt:          24000,
				TotalPaid:     0,
				RemainingDebt: 24000,
				MonthsToClear: nil,
			},
			MockPrepFunc: func() {
				financeRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(&entity.FinanceProfile{
					UserID: userID,
					Salary: 50000,
					Debt:   24000,
				}, nil)
				financeRepo.EXPECT().SumPayments(gomock.Any(), userID).Return(0.0, nil)
			},
		},
		{
			Desc: "exact division needs no extra month",
			Result: &entity.FinanceSummary{
				Salary:        50000,
				EMI:           1000,
				Debt:          24000,
				TotalPaid:     0,
				RemainingDebt: 24000,
				MonthsToClear: months(24),
			},
			MockPrepFunc: func() {
				financeRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(&entity.FinanceProfile{
					UserID: userID,
					Salary: 50000,
					EMI:    1000,
					Debt:   24000,
				}, nil)
				financeRepo.EXPECT().SumPayments(gomock.Any(), userID).Return(0.0, nil)
			},
		},
		{
			Desc:  "error profile not found",
			Error: errorvalues.ErrFinanceNotFound,
			MockPrepFunc: func() {
				financeRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, errorvalues.ErrFinanceNotFound)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("repository error: db error"),
			MockPrepFunc: func() {
				financeRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(&entity.FinanceProfile{
					UserID: userID,
					Salary: 50000,
					EMI:    1000,
					Debt:   24000,
				}, nil)
				financeRepo.EXPECT().SumPayments(gomock.Any(), userID).Return(0.0, errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			summary, err := serv.Summary(ctx, userID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Result, summary)
			}
		})
	}
}
