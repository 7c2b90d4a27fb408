package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/zathu/shopscrape/internal/domain/errors"
	"github.com/zathu/shopscrape/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectSchema(mock pgxmockv3.PgxPoolIface) {
	tableStatements := []string{
		"CREATE TABLE IF NOT EXISTS accounts",
		"CREATE TABLE IF NOT EXISTS order_histories",
		"CREATE TABLE IF NOT EXISTS settings",
	}
	for _, stmt := range tableStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	expectSchema(mock)

	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitSchemaError(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS accounts").WillReturnError(errors.New("db down"))

	if err := storage.initSchema(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestAccountList(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	rows := pgxmockv3.NewRows([]string{"id", "is_paid", "tracking_status", "created_at", "updated_at"}).
		AddRow("u1", true, "shipped", now, now).
		AddRow("u2", false, "", now, now)
	mock.ExpectQuery("SELECT id, is_paid, tracking_status, created_at, updated_at").WillReturnRows(rows)

	accounts, err := storage.Accounts().List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected two accounts, got %d", len(accounts))
	}
	if accounts[0].ID != "u1" || !accounts[0].IsPaid || accounts[0].TrackingStatus != "shipped" {
		t.Fatalf("unexpected first account: %+v", accounts[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountListQueryError(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, is_paid").WillReturnError(errors.New("connection reset"))

	if _, err := storage.Accounts().List(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestSetPaid(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE accounts SET is_paid").
		WithArgs("u1", true).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	if err := storage.Accounts().SetPaid(context.Background(), "u1", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSetPaidUnknownAccount(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE accounts SET is_paid").
		WithArgs("ghost", true).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	err := storage.Accounts().SetPaid(context.Background(), "ghost", true)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetTracking(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE accounts SET tracking_status").
		WithArgs("u1", "delivered").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	if err := storage.Accounts().SetTracking(context.Background(), "u1", "delivered"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetTrackingUnknownAccount(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE accounts SET tracking_status").
		WithArgs("ghost", "delivered").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	err := storage.Accounts().SetTracking(context.Background(), "ghost", "delivered")
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderAppendUpsert(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO order_histories").
		WithArgs("0991", pgxmockv3.AnyArg()).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))

	orders := []model.OrderRecord{{"item": "bag", "qty": float64(2)}}
	if err := storage.OrderHistories().Append(context.Background(), "0991", orders); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderAppendExecError(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO order_histories").
		WithArgs("0991", pgxmockv3.AnyArg()).
		WillReturnError(errors.New("disk full"))

	err := storage.OrderHistories().Append(context.Background(), "0991", []model.OrderRecord{{"item": "bag"}})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestOrderHistoryList(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	payload := []byte(`[{"item":"bag"},{"item":"shoes"}]`)
	rows := pgxmockv3.NewRows([]string{"history"}).AddRow(payload)
	mock.ExpectQuery("SELECT history FROM order_histories").
		WithArgs("0991").
		WillReturnRows(rows)

	history, err := storage.OrderHistories().List(context.Background(), "0991")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected two records, got %d", len(history))
	}
	if history[0]["item"] != "bag" || history[1]["item"] != "shoes" {
		t.Fatalf("unexpected history: %v", history)
	}
}

func TestOrderHistoryListUnknownPhone(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT history FROM order_histories").
		WithArgs("0000").
		WillReturnError(pgx.ErrNoRows)

	history, err := storage.OrderHistories().List(context.Background(), "0000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if history == nil || len(history) != 0 {
		t.Fatalf("expected empty non-nil history, got %v", history)
	}
}

func TestOrderHistoryListCorruptPayload(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	rows := pgxmockv3.NewRows([]string{"history"}).AddRow([]byte(`{not json`))
	mock.ExpectQuery("SELECT history FROM order_histories").
		WithArgs("0991").
		WillReturnRows(rows)

	if _, err := storage.OrderHistories().List(context.Background(), "0991"); err == nil {
		t.Fatal("expected error")
	}
}

func TestRateGet(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	rows := pgxmockv3.NewRows([]string{"value"}).AddRow(3250.0)
	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs(rateKey).
		WillReturnRows(rows)

	rate, err := storage.Rates().Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 3250 {
		t.Fatalf("expected 3250, got %v", rate)
	}
}

func TestRateGetDefaultsWhenUnset(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs(rateKey).
		WillReturnError(pgx.ErrNoRows)

	rate, err := storage.Rates().Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != model.DefaultExchangeRate {
		t.Fatalf("expected default rate %v, got %v", model.DefaultExchangeRate, rate)
	}
}

func TestRateGetQueryError(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs(rateKey).
		WillReturnError(errors.New("timeout"))

	if _, err := storage.Rates().Get(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestRateSetUpsert(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs(rateKey, 3500.0).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))

	if err := storage.Rates().Set(context.Background(), 3500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectPing()

	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCloseNilPool(t *testing.T) {
	storage := &Storage{}
	storage.Close()
}
