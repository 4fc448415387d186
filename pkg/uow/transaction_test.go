package uow

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type fakeRepo struct {
	conn DBTX
}

type TransactionTestSuite struct {
	suite.Suite
	created   int
	factories map[RepositoryName]RepositoryFactory
}

func TestTransactionSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) SetupTest() {
	s.created = 0
	s.factories = map[RepositoryName]RepositoryFactory{
		"fake": func(conn DBTX) Repository {
			s.created++
			return &fakeRepo{conn: conn}
		},
	}
}

func (s *TransactionTestSuite) TestGetCachesRepository() {
	tx := NewTransaction(nil, s.factories)

	first, err := GetAs[*fakeRepo](tx, "fake")
	s.Require().NoError(err)
	second, err := GetAs[*fakeRepo](tx, "fake")
	s.Require().NoError(err)

	s.Same(first, second)
	s.Equal(1, s.created)
}

func (s *TransactionTestSuite) TestGetErrors() {
	tx := NewTransaction(nil, s.factories)

	_, notRegErr := tx.Get("missing")
	s.ErrorIs(notRegErr, ErrRepositoryNotRegistered)

	_, typeErr := GetAs[string](tx, "fake")
	s.ErrorIs(typeErr, ErrInvalidRepositoryType)
}
