package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/mattgaskey/brewblog-api/pkg/repository"
)

type StyleTestSuite struct {
	RepositorySuite
}

func TestStyleTestSuite(t *testing.T) {
	suite.Run(t, new(StyleTestSuite))
}

func (suite *StyleTestSuite) TestGetStyle_FindsStyle() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "styles" WHERE id \= \$1`).
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "IPA"))

	style, err := suite.repository.GetStyle(context.Background(), 2)
	suite.Require().NoError(err)
	suite.Equal("IPA", style.Name)
}

func (suite *StyleTestSuite) TestGetStyle_NotFound() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "styles"`).
		WillReturnError(gorm.ErrRecordNotFound)

	style, err := suite.repository.GetStyle(context.Background(), 99)
	suite.Require().ErrorIs(err, repository.ErrStyleNotFound)
	suite.Nil(style)
}

func (suite *StyleTestSuite) TestListStyles_ReturnsAllStyles() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "styles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Pale Ale").AddRow(2, "IPA").AddRow(3, "Wheat"))

	styles, err := suite.repository.ListStyles(context.Background())
	suite.Require().NoError(err)
	suite.Len(styles, 3)
	suite.Equal("Pale Ale", styles[0].Name)
}

func (suite *StyleTestSuite) TestAddStyle_InsertsStyle() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "styles" ("name") VALUES ($1) ON CONFLICT DO NOTHING RETURNING "id"`)).
		WithArgs("Pilsner").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	suite.mock.ExpectCommit()

	style, err := suite.repository.AddStyle(context.Background(), "Pilsner")
	suite.Require().NoError(err)
	suite.Equal(9, style.ID)
}

func (suite *StyleTestSuite) TestCountStyles_CountsRows() {
	suite.mock.ExpectQuery(`^SELECT count\(\*\) FROM "styles"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	count, err := suite.repository.CountStyles(context.Background())
	suite.Require().NoError(err)
	suite.Equal(int64(9), count)
}
