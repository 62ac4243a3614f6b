package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/duotrack/duotracker/internal/error_values"
	"github.com/duotrack/duotracker/internal/service"
	"github.com/duotrack/duotracker/pkg/httputil"
)

type SaveFinanceRequest struct {
	Salary float64 `json:"salary"`
	EMI    float64 `json:"emi"`
	Debt   float64 `json:"debt"`
}

type AddPaymentRequest struct {
	Amount float64 `json:"amount"`
}

func (s *Server) SaveFinance(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save finance error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SaveFinanceRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("save finance error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.financeService.SaveProfile(ctx, uid, service.SaveFinanceRequest{
		Salary: req.Salary,
		EMI:    req.EMI,
		Debt:   req.Debt,
	})
	if err != nil {
		logger.Error("save finance error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't save finance profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"ok": true})
	logger.Info("finance profile saved")
}

func (s *Server) AddPayment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add payment error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req AddPaymentRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add payment error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.financeService.RecordPayment(ctx, uid, req.Amount)
	if err != nil {
		logger.Error("add payment error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't record payment", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"ok": true})
	logger.Info("payment recorded")
}

func (s *Server) ListPayments(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list payments error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	payments, err := s.financeService.Payments(ctx, uid)
	if err != nil {
		logger.Error("list payments error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting payments", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"payments": payments})
	logger.Info("payments provided")
}

func (s *Server) FinanceSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("finance summary error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	summary, err := s.financeService.Summary(ctx, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrFinanceNotFound):
			logger.Error("finance summary error: no profile")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "finance profile doesn't exist", nil)
		default:
			logger.Error("finance summary error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building finance summary", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("finance summary provided")
}
