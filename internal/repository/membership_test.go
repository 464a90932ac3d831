//go:build integration
// +build integration

package repository

import (
	"testing"

	"fitness-community-backend/internal/database/models"
	"fitness-community-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	userRepo      *UserRepository
	teamRepo      *TeamRepository
	groupRepo     *GroupRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.groupRepo = NewGroupRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createTeamWithGroup creates a team, a group, and the teamgroups link
// between them.
func (suite *MembershipRepositoryTestSuite) createTeamWithGroup() (*models.Team, *models.Group) {
	team := suite.factories.Team.Create()
	suite.NoError(suite.teamRepo.Create(team))

	group := suite.factories.Group.Create()
	suite.NoError(suite.groupRepo.Create(group))

	link := &models.TeamGroup{TeamName: team.Name, GroupName: group.GroupName}
	suite.NoError(suite.baseTestSuite.DB.Create(link).Error)

	return team, group
}

// TestUpdateUserMembershipsJoin tests joining a team and one of its groups
func (suite *MembershipRepositoryTestSuite) TestUpdateUserMembershipsJoin() {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	team, group := suite.createTeamWithGroup()

	ok := suite.repo.UpdateUserMemberships(
		user.Username,
		[]string{team.Name},
		nil,
		[]GroupRef{{TeamName: team.Name, GroupName: group.GroupName}},
		nil,
	)
	suite.True(ok)

	// New memberships start pending with the user role
	teamMember, err := suite.repo.GetTeamMembership(user.Username, team.Name)
	suite.NoError(err)
	suite.Equal(models.MembershipStatusPending, teamMember.Status)
	suite.Equal(models.MembershipRoleUser, teamMember.UserRole)

	groupMember, err := suite.repo.GetGroupMembership(user.Username, group.GroupName)
	suite.NoError(err)
	suite.Equal(models.MembershipStatusPending, groupMember.Status)
}

// TestUpdateUserMembershipsLeave tests that leaving soft-deletes the row
func (suite *MembershipRepositoryTestSuite) TestUpdateUserMembershipsLeave() {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	team, _ := suite.createTeamWithGroup()

	ok := suite.repo.UpdateUserMemberships(user.Username, []string{team.Name}, nil, nil, nil)
	suite.True(ok)

	ok = suite.repo.UpdateUserMemberships(user.Username, nil, []string{team.Name}, nil, nil)
	suite.True(ok)

	_, err := suite.repo.GetTeamMembership(user.Username, team.Name)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// The row survives the soft delete
	var count int64
	suite.baseTestSuite.DB.Unscoped().Model(&models.TeamMember{}).
		Where("username = ? AND team_name = ?", user.Username, team.Name).
		Count(&count)
	suite.Equal(int64(1), count)
}

// TestUpdateUserMembershipsRollsBack tests that one bad reference rolls
// back the entire batch.
func (suite *MembershipRepositoryTestSuite) TestUpdateUserMembershipsRollsBack() {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	team, group := suite.createTeamWithGroup()

	ok := suite.repo.UpdateUserMemberships(
		user.Username,
		[]string{team.Name},
		nil,
		[]GroupRef{
			{TeamName: team.Name, GroupName: group.GroupName},
			{TeamName: team.Name, GroupName: "no-such-group"},
		},
		nil,
	)
	suite.False(ok)

	// The valid team join from the same batch must not be visible
	_, err := suite.repo.GetTeamMembership(user.Username, team.Name)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdateUserMembershipsUnknownTeam tests joining a nonexistent team
func (suite *MembershipRepositoryTestSuite) TestUpdateUserMembershipsUnknownTeam() {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))

	ok := suite.repo.UpdateUserMemberships(user.Username, []string{"no-such-team"}, nil, nil, nil)
	suite.False(ok)
}

// TestUpdateUserMembershipsGroupOutsideTeam tests joining a group through
// a team it does not belong to.
func (suite *MembershipRepositoryTestSuite) TestUpdateUserMembershipsGroupOutsideTeam() {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	_, group := suite.createTeamWithGroup()
	otherTeam, _ := suite.createTeamWithGroup()

	ok := suite.repo.UpdateUserMemberships(
		user.Username,
		nil,
		nil,
		[]GroupRef{{TeamName: otherTeam.Name, GroupName: group.GroupName}},
		nil,
	)
	suite.False(ok)
}

// TestAcceptTeamMembership tests promoting a pending membership
func (suite *MembershipRepositoryTestSuite) TestAcceptTeamMembership() {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	team, _ := suite.createTeamWithGroup()

	ok := suite.repo.UpdateUserMemberships(user.Username, []string{team.Name}, nil, nil, nil)
	suite.True(ok)

	err := suite.repo.AcceptTeamMembership(user.Username, team.Name, "admin")
	suite.NoError(err)

	member, err := suite.repo.GetTeamMembership(user.Username, team.Name)
	suite.NoError(err)
	suite.Equal(models.MembershipStatusAccepted, member.Status)
	suite.Equal("admin", member.UpdatedBy)
}

// TestAcceptGroupMembership tests promoting a pending group membership
func (suite *MembershipRepositoryTestSuite) TestAcceptGroupMembership() {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	team, group := suite.createTeamWithGroup()

	ok := suite.repo.UpdateUserMemberships(
		user.Username,
		[]string{team.Name},
		nil,
		[]GroupRef{{TeamName: team.Name, GroupName: group.GroupName}},
		nil,
	)
	suite.True(ok)

	err := suite.repo.AcceptGroupMembership(user.Username, group.GroupName, "admin")
	suite.NoError(err)

	member, err := suite.repo.GetGroupMembership(user.Username, group.GroupName)
	suite.NoError(err)
	suite.Equal(models.MembershipStatusAccepted, member.Status)
}

// TestGetUserMemberships tests the nested membership view
func (suite *MembershipRepositoryTestSuite) TestGetUserMemberships() {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	team, group := suite.createTeamWithGroup()

	ok := suite.repo.UpdateUserMemberships(
		user.Username,
		[]string{team.Name},
		nil,
		[]GroupRef{{TeamName: team.Name, GroupName: group.GroupName}},
		nil,
	)
	suite.True(ok)

	details, err := suite.repo.GetUserMemberships(user.Username)
	suite.NoError(err)
	suite.Len(details, 1)
	suite.Equal(team.Name, details[0].TeamName)
	suite.Equal(team.Title, details[0].Title)
	suite.Len(details[0].Groups, 1)
	suite.Equal(group.GroupName, details[0].Groups[0].GroupName)
}

// TestGetUserMembershipsEmpty tests a user with no memberships
func (suite *MembershipRepositoryTestSuite) TestGetUserMembershipsEmpty() {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))

	details, err := suite.repo.GetUserMemberships(user.Username)
	suite.NoError(err)
	suite.Len(details, 0)
}

// Run the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
