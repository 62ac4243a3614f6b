package repository

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/duotrack/duotracker/internal/error_values"
	"github.com/duotrack/duotracker/pkg/cleanup"
	"github.com/duotrack/duotracker/pkg/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FinanceRepository struct {
	conn PgConnection
}

func NewFinanceRepo(cfg DBConfig) *FinanceRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for financeRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for financeRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &FinanceRepository{
		conn: pool,
	}
}

func NewFinanceRepoWithConn(conn PgConnection) *FinanceRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for financeRepo: " + err.Error())
	}
	return &FinanceRepository{
		conn: conn,
	}
}

func (fr *FinanceRepository) UpsertProfile(ctx context.Context, profile *entity.FinanceProfile) error {
	if profile == nil {
		return errors.New("profile is nil")
	}
	_, err := fr.conn.Exec(
		ctx,
		`INSERT INTO finance (user_id, salary, emi, debt) VALUES ($1, $2, $3, $4) ON CONFLICT (user_id) DO UPDATE SET salary = $2, emi = $3, debt = $4;`,
		profile.UserID,
		profile.Salary,
		profile.EMI,
		profile.Debt,
	)
	if err != nil {
		return errors.New("upserting finance profile error: " + err.Error())
	}
	return nil
}

func (fr *FinanceRepository) GetProfile(ctx context.Context, uid uuid.UUID) (*entity.FinanceProfile, error) {
	var profile entity.FinanceProfile
	profile.UserID = uid
	row := fr.conn.QueryRow(ctx, `SELECT salary, emi, debt FROM finance WHERE user_id = $1;`, uid)
	if err := row.Scan(&profile.Salary, &profile.EMI, &profile.Debt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrFinanceNotFound
		}
		return nil, errors.New("getting finance profile error: " + err.Error())
	}
	return &profile, nil
}

func (fr *FinanceRepository) InsertPayment(ctx context.Context, uid uuid.UUID, amount float64, date time.Time) error {
	_, err := fr.conn.Exec(
		ctx,
		`INSERT INTO finance_payments (user_id, amount, payment_date) VALUES ($1, $2, $3);`,
		uid,
		amount,
		date,
	)
	if err != nil {
		return errors.New("inserting payment error: " + err.Error())
	}
	return nil
}

func (fr *FinanceRepository) SumPayments(ctx context.Context, uid uuid.UUID) (float64, error) {
	row := fr.conn.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM finance_payments WHERE user_id = $1;`, uid)
	var total float64
	if err := row.Scan(&total); err != nil {
		return 0, errors.New("summing payments error: " + err.Error())
	}
	return total, nil
}

func (fr *FinanceRepository) GetPayments(ctx context.Context, uid uuid.UUID) ([]entity.Payment, error) {
	rows, err := fr.conn.Query(
		ctx,
		`SELECT id, amount, payment_date FROM finance_payments WHERE user_id = $1 ORDER BY payment_date DESC, id DESC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting payments error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Payment, 0)
	for rows.Next() {
		payment := entity.Payment{UserID: uid}
		err = rows.Scan(&payment.ID, &payment.Amount, &payment.PaymentDate)
		if err != nil {
			return nil, errors.New("payment row parsing error: " + err.Error())
		}
		result = append(result, payment)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected payments rows error: " + rows.Err().Error())
	}
	return result, nil
}
