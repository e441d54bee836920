// Package personservice manages business logic layer of persons.
package personservice

import (
	"context"

	"github.com/go-petr/account-ledger/internal/domain"
)

// Repo provides data access layer interface needed by person service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package personservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreatePersonParams) (domain.Person, error)
	Get(ctx context.Context, id int32) (domain.Person, error)
}

// Service facilitates person service layer logic.
type Service struct {
	repo Repo
}

// New returns person service struct to manage person bussines logic.
func New(pr Repo) *Service {
	return &Service{repo: pr}
}

// Create creates and returns the person.
func (s *Service) Create(ctx context.Context, arg domain.CreatePersonParams) (domain.Person, error) {
	person, err := s.repo.Create(ctx, arg)
	if err != nil {
		return person, err
	}

	return person, nil
}

// Get returns the person with the given id.
func (s *Service) Get(ctx context.Context, id int32) (domain.Person, error) {
	person, err := s.repo.Get(ctx, id)
	if err != nil {
		return person, err
	}

	return person, nil
}
