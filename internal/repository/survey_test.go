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

// SurveyRepositoryTestSuite exercises SurveyRepository against a real Postgres
type SurveyRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo          *repository.SurveyRepository
	surveyFactory *testutils.SurveyFactory
	memberFactory *testutils.TeamMemberFactory
}

func (suite *SurveyRepositoryTestSuite) SetupSuite() {
	suite.repo = repository.NewSurveyRepository(suite.DB)
	suite.surveyFactory = testutils.NewSurveyFactory()
	suite.memberFactory = testutils.NewTeamMemberFactory()
}

func (suite *SurveyRepositoryTestSuite) TestCreateAndGetByID() {
	survey := suite.surveyFactory.Create()

	err := suite.repo.Create(survey)
	suite.Require().NoError(err)

	loaded, err := suite.repo.GetByID(survey.ID)
	suite.Require().NoError(err)
	suite.Equal(survey.ManagerID, loaded.ManagerID)
	suite.Equal(models.DefaultSurveyTitle, loaded.Title)
	suite.Equal(models.SurveyStatusActive, loaded.Status)
}

func (suite *SurveyRepositoryTestSuite) TestGetByIDNotFound() {
	survey := suite.surveyFactory.Create()

	_, err := suite.repo.GetByID(survey.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *SurveyRepositoryTestSuite) TestGetByManagerID() {
	first := suite.surveyFactory.WithManagerID("manager-a")
	second := suite.surveyFactory.WithManagerID("manager-a")
	other := suite.surveyFactory.WithManagerID("manager-b")
	suite.Require().NoError(suite.repo.Create(first))
	suite.Require().NoError(suite.repo.Create(second))
	suite.Require().NoError(suite.repo.Create(other))

	surveys, err := suite.repo.GetByManagerID("manager-a")
	suite.Require().NoError(err)
	suite.Len(surveys, 2)
	for _, s := range surveys {
		suite.Equal("manager-a", s.ManagerID)
	}
}

func (suite *SurveyRepositoryTestSuite) TestCreateWithTeamMembers() {
	survey := &models.Survey{
		ManagerID:   "manager-txn",
		Title:       models.DefaultSurveyTitle,
		Description: models.DefaultSurveyDescription,
		Status:      models.SurveyStatusActive,
	}
	members := []models.TeamMember{
		{Name: "Alice", Email: "alice@test.com", UniqueLink: "txn-token-1"},
		{Name: "Bob", Email: "bob@test.com", UniqueLink: "txn-token-2"},
	}

	err := suite.repo.CreateWithTeamMembers(survey, members)
	suite.Require().NoError(err)

	var count int64
	suite.DB.Model(&models.TeamMember{}).Where("survey_id = ?", survey.ID).Count(&count)
	suite.Equal(int64(2), count)
}

func (suite *SurveyRepositoryTestSuite) TestCreateWithTeamMembersRollsBackOnDuplicateLink() {
	existing := suite.surveyFactory.Create()
	suite.Require().NoError(suite.repo.Create(existing))
	taken := suite.memberFactory.Create(existing.ID)
	suite.Require().NoError(suite.DB.Create(taken).Error)

	survey := &models.Survey{
		ManagerID: "manager-rollback",
		Title:     models.DefaultSurveyTitle,
		Status:    models.SurveyStatusActive,
	}
	members := []models.TeamMember{
		{Name: "Carol", Email: "carol@test.com", UniqueLink: "rollback-token"},
		{Name: "Dave", Email: "dave@test.com", UniqueLink: taken.UniqueLink},
	}

	err := suite.repo.CreateWithTeamMembers(survey, members)
	suite.Require().Error(err)

	// The survey row must not survive the failed member batch
	var count int64
	suite.DB.Model(&models.Survey{}).Where("manager_id = ?", "manager-rollback").Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *SurveyRepositoryTestSuite) TestSetStatus() {
	survey := suite.surveyFactory.Create()
	suite.Require().NoError(suite.repo.Create(survey))

	err := suite.repo.SetStatus(survey.ID, models.SurveyStatusCompleted)
	suite.Require().NoError(err)

	loaded, err := suite.repo.GetByID(survey.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SurveyStatusCompleted, loaded.Status)
}

func (suite *SurveyRepositoryTestSuite) TestDeleteCascades() {
	survey := suite.surveyFactory.Create()
	suite.Require().NoError(suite.repo.Create(survey))
	member := suite.memberFactory.Create(survey.ID)
	suite.Require().NoError(suite.DB.Create(member).Error)

	err := suite.repo.Delete(survey.ID)
	suite.Require().NoError(err)

	var count int64
	suite.DB.Model(&models.TeamMember{}).Where("survey_id = ?", survey.ID).Count(&count)
	suite.Equal(int64(0), count)
}

func TestSurveyRepositoryTestSuite(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	suite.Run(t, &SurveyRepositoryTestSuite{BaseTestSuite: base})
}
