//go:build integration

package repository_test

import (
	"testing"

	"leadership-survey-backend/internal/database/models"
	"leadership-survey-backend/internal/repository"
	"leadership-survey-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// QuestionRepositoryTestSuite exercises QuestionRepository against a real Postgres
type QuestionRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo            *repository.QuestionRepository
	questionFactory *testutils.QuestionFactory
}

func (suite *QuestionRepositoryTestSuite) SetupSuite() {
	suite.repo = repository.NewQuestionRepository(suite.DB)
	suite.questionFactory = testutils.NewQuestionFactory()
}

func (suite *QuestionRepositoryTestSuite) TestCountEmpty() {
	count, err := suite.repo.Count()
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)
}

func (suite *QuestionRepositoryTestSuite) TestCreateBatchAndCount() {
	err := suite.repo.CreateBatch(suite.questionFactory.CreateDefaultSet())
	suite.Require().NoError(err)

	count, err := suite.repo.Count()
	suite.Require().NoError(err)
	suite.Equal(int64(models.RequiredQuestionCount), count)
}

func (suite *QuestionRepositoryTestSuite) TestGetAllOrdered() {
	questions := suite.questionFactory.CreateDefaultSet()
	// Insert out of order; reads must still come back by question_order
	suite.Require().NoError(suite.repo.CreateBatch([]models.SurveyQuestion{questions[2], questions[0], questions[1]}))

	ordered, err := suite.repo.GetAllOrdered()
	suite.Require().NoError(err)
	suite.Require().Len(ordered, 3)
	for i, q := range ordered {
		suite.Equal(i+1, q.QuestionOrder)
		suite.Equal(1, q.ScaleMin)
		suite.Equal(5, q.ScaleMax)
	}
}

func (suite *QuestionRepositoryTestSuite) TestGetByID() {
	questions := suite.questionFactory.CreateDefaultSet()
	suite.Require().NoError(suite.repo.CreateBatch(questions))

	loaded, err := suite.repo.GetByID(questions[0].ID)
	suite.Require().NoError(err)
	suite.Equal(questions[0].QuestionText, loaded.QuestionText)
}

func TestQuestionRepositoryTestSuite(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	suite.Run(t, &QuestionRepositoryTestSuite{BaseTestSuite: base})
}
