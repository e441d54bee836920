// Package personrepo manages repository layer of persons.
package personrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/account-ledger/internal/domain"
	"github.com/go-petr/account-ledger/pkg/dbpkg"
	"github.com/go-petr/account-ledger/pkg/errorspkg"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates person repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns person RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO persons (
    name,
    document,
    birth_date
) VALUES (
    $1, $2, $3
) RETURNING id, name, document, birth_date, created_at
`

// Create creates the person and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreatePersonParams) (domain.Person, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Name,
		arg.Document,
		arg.BirthDate,
	)

	var p domain.Person

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Document,
		&p.BirthDate,
		&p.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "persons_document_key" {
				return p, domain.ErrDocumentAlreadyExists
			}
		}

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const getQuery = `
SELECT
	id, name, document, birth_date, created_at
FROM persons
WHERE id = $1
`

// Get returns the person with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Person, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var p domain.Person

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Document,
		&p.BirthDate,
		&p.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return p, domain.ErrPersonNotFound
		}

		return p, errorspkg.ErrInternal
	}

	return p, nil
}
