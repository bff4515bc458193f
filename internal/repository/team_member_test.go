//go:build integration

package repository_test

import (
	"testing"

	"leadership-survey-backend/internal/database/models"
	"leadership-survey-backend/internal/repository"
	"leadership-survey-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamMemberRepositoryTestSuite exercises TeamMemberRepository against a real Postgres
type TeamMemberRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo          *repository.TeamMemberRepository
	surveyFactory *testutils.SurveyFactory
	memberFactory *testutils.TeamMemberFactory
}

func (suite *TeamMemberRepositoryTestSuite) SetupSuite() {
	suite.repo = repository.NewTeamMemberRepository(suite.DB)
	suite.surveyFactory = testutils.NewSurveyFactory()
	suite.memberFactory = testutils.NewTeamMemberFactory()
}

func (suite *TeamMemberRepositoryTestSuite) createSurvey() *models.Survey {
	survey := suite.surveyFactory.Create()
	suite.Require().NoError(suite.DB.Create(survey).Error)
	return survey
}

func (suite *TeamMemberRepositoryTestSuite) TestGetByUniqueLink() {
	survey := suite.createSurvey()
	member := suite.memberFactory.Create(survey.ID)
	suite.Require().NoError(suite.DB.Create(member).Error)

	loaded, err := suite.repo.GetByUniqueLink(member.UniqueLink)
	suite.Require().NoError(err)
	suite.Equal(member.ID, loaded.ID)
	suite.Equal(member.Email, loaded.Email)

	_, err = suite.repo.GetByUniqueLink("no-such-token")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamMemberRepositoryTestSuite) TestUniqueLinkExists() {
	survey := suite.createSurvey()
	member := suite.memberFactory.Create(survey.ID)
	suite.Require().NoError(suite.DB.Create(member).Error)

	exists, err := suite.repo.UniqueLinkExists(member.UniqueLink)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repo.UniqueLinkExists("unused-token")
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *TeamMemberRepositoryTestSuite) TestUniqueLinkConstraint() {
	survey := suite.createSurvey()
	member := suite.memberFactory.Create(survey.ID)
	suite.Require().NoError(suite.DB.Create(member).Error)

	dup := suite.memberFactory.Create(survey.ID)
	dup.UniqueLink = member.UniqueLink
	suite.Error(suite.DB.Create(dup).Error)
}

func (suite *TeamMemberRepositoryTestSuite) TestGetBySurveyID() {
	survey := suite.createSurvey()
	other := suite.createSurvey()
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.DB.Create(suite.memberFactory.Create(survey.ID)).Error)
	}
	suite.Require().NoError(suite.DB.Create(suite.memberFactory.Create(other.ID)).Error)

	members, err := suite.repo.GetBySurveyID(survey.ID)
	suite.Require().NoError(err)
	suite.Len(members, 3)
}

func (suite *TeamMemberRepositoryTestSuite) TestGetCompletionStats() {
	survey := suite.createSurvey()
	suite.Require().NoError(suite.DB.Create(suite.memberFactory.Completed(survey.ID)).Error)
	suite.Require().NoError(suite.DB.Create(suite.memberFactory.Completed(survey.ID)).Error)
	suite.Require().NoError(suite.DB.Create(suite.memberFactory.Create(survey.ID)).Error)

	stats, err := suite.repo.GetCompletionStats(survey.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(3), stats.Total)
	suite.Equal(int64(2), stats.Completed)
	suite.Equal(int64(1), stats.Pending)
	suite.InDelta(66.67, stats.CompletionRate, 0.01)
}

func (suite *TeamMemberRepositoryTestSuite) TestGetCompletionStatsEmptySurvey() {
	survey := suite.createSurvey()

	stats, err := suite.repo.GetCompletionStats(survey.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), stats.Total)
	suite.Equal(0.0, stats.CompletionRate)
}

func (suite *TeamMemberRepositoryTestSuite) TestMarkCompleted() {
	survey := suite.createSurvey()
	member := suite.memberFactory.Create(survey.ID)
	suite.Require().NoError(suite.DB.Create(member).Error)

	err := suite.repo.MarkCompleted(member.ID)
	suite.Require().NoError(err)

	loaded, err := suite.repo.GetByID(member.ID)
	suite.Require().NoError(err)
	suite.True(loaded.HasCompleted)
	suite.NotNil(loaded.CompletedAt)
}

func TestTeamMemberRepositoryTestSuite(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	suite.Run(t, &TeamMemberRepositoryTestSuite{BaseTestSuite: base})
}
