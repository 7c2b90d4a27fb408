package test

import (
	"context"

	"github.com/zathu/shopscrape/internal/domain/model"
)

// RateRepositoryStub stores the rate in memory and can be forced to fail.
type RateRepositoryStub struct {
	Value float64
	IsSet bool
	Err   error
}

// Get returns the stored value or the default when nothing was set.
func (s *RateRepositoryStub) Get(ctx context.Context) (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	if !s.IsSet {
		return model.DefaultExchangeRate, nil
	}
	return s.Value, nil
}

// Set overwrites the stored value.
func (s *RateRepositoryStub) Set(ctx context.Context, rate float64) error {
	if s.Err != nil {
		return s.Err
	}
	s.Value = rate
	s.IsSet = true
	return nil
}

// AccountRepositoryStub fails every call with the configured error; the
// in-memory storage covers the happy paths.
type AccountRepositoryStub struct {
	Err error
}

func (s *AccountRepositoryStub) List(ctx context.Context) ([]model.UserAccount, error) {
	return nil, s.Err
}

func (s *AccountRepositoryStub) SetPaid(ctx context.Context, userID string, isPaid bool) error {
	return s.Err
}

func (s *AccountRepositoryStub) SetTracking(ctx context.Context, userID string, status string) error {
	return s.Err
}

// OrderHistoryRepositoryStub records appends and can be forced to fail.
type OrderHistoryRepositoryStub struct {
	Appended map[string][]model.OrderRecord
	Err      error
}

func (s *OrderHistoryRepositoryStub) Append(ctx context.Context, phone string, orders []model.OrderRecord) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Appended == nil {
		s.Appended = make(map[string][]model.OrderRecord)
	}
	s.Appended[phone] = append(s.Appended[phone], orders...)
	return nil
}

func (s *OrderHistoryRepositoryStub) List(ctx context.Context, phone string) ([]model.OrderRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	history, ok := s.Appended[phone]
	if !ok {
		return []model.OrderRecord{}, nil
	}
	return history, nil
}
