package application_test

import (
	"errors"
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/clientdesk/internal/application"
	"github.com/linskybing/clientdesk/internal/domain/client"
	"github.com/linskybing/clientdesk/internal/domain/project"
	"github.com/linskybing/clientdesk/internal/domain/user"
	"github.com/linskybing/clientdesk/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProjectService(t *testing.T) (*application.ProjectService, *testutils.Mocks, *gin.Context) {
	testutils.SilenceAudit(t)
	m := testutils.NewMocks(t)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return application.NewProjectService(m.Repos()), m, c
}

func TestCreateProject(t *testing.T) {
	acme := client.Client{ID: 1, ClientName: "Acme"}
	alice := user.User{ID: 1, Username: "alice"}
	bob := user.User{ID: 2, Username: "bob"}
	carol := user.User{ID: 3, Username: "carol"}

	t.Run("success collapses duplicate user ids", func(t *testing.T) {
		svc, m, c := setupProjectService(t)
		m.Client.EXPECT().GetClientByID(uint(1)).Return(acme, nil)
		m.User.EXPECT().GetUsersByIDs([]uint{2, 3}).Return([]user.User{bob, carol}, nil)
		m.Project.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *project.Project) error {
			assert.Equal(t, "Website", p.ProjectName)
			assert.Equal(t, uint(1), p.ClientID)
			require.NotNil(t, p.CreatedByID)
			assert.Equal(t, uint(1), *p.CreatedByID)
			assert.Len(t, p.Users, 2)
			p.ID = 7
			return nil
		})
		m.Project.EXPECT().GetProjectByID(uint(7)).Return(project.Project{
			ID: 7, ProjectName: "Website", ClientID: 1, ClientName: "Acme",
			CreatedByID: &alice.ID, CreatedBy: &alice,
			Users: []user.User{bob, carol},
		}, nil)

		out, err := svc.CreateProject(c, 1, 1, project.CreateProjectDTO{
			ProjectName: "Website",
			UserIDs:     []uint{2, 3, 2},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(7), out.ID)
		assert.Equal(t, "Acme", out.Client)
		require.NotNil(t, out.CreatedBy)
		assert.Equal(t, "alice", *out.CreatedBy)
		assert.Equal(t, []user.UserDTO{{ID: 2, Username: "bob"}, {ID: 3, Username: "carol"}}, out.AssignedUsers)
	})

	t.Run("no users assigned", func(t *testing.T) {
		svc, m, c := setupProjectService(t)
		m.Client.EXPECT().GetClientByID(uint(1)).Return(acme, nil)
		m.Project.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *project.Project) error {
			assert.Empty(t, p.Users)
			p.ID = 8
			return nil
		})
		m.Project.EXPECT().GetProjectByID(uint(8)).Return(project.Project{ID: 8, ProjectName: "Solo", ClientName: "Acme"}, nil)

		out, err := svc.CreateProject(c, 1, 1, project.CreateProjectDTO{ProjectName: "Solo"})
		require.NoError(t, err)
		assert.NotNil(t, out.AssignedUsers)
		assert.Empty(t, out.AssignedUsers)
	})

	t.Run("unknown client is checked first", func(t *testing.T) {
		svc, m, c := setupProjectService(t)
		m.Client.EXPECT().GetClientByID(uint(9)).Return(client.Client{}, gorm.ErrRecordNotFound)

		_, err := svc.CreateProject(c, 9, 1, project.CreateProjectDTO{UserIDs: []uint{99}})
		assert.ErrorIs(t, err, application.ErrClientNotFound)
	})

	t.Run("blank project name", func(t *testing.T) {
		svc, m, c := setupProjectService(t)
		m.Client.EXPECT().GetClientByID(uint(1)).Return(acme, nil)

		_, err := svc.CreateProject(c, 1, 1, project.CreateProjectDTO{ProjectName: "  ", UserIDs: []uint{99}})
		var verr *application.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "project_name")
		assert.NotContains(t, verr.Fields, "user_ids")
	})

	t.Run("unknown user ids are reported sorted and once", func(t *testing.T) {
		svc, m, c := setupProjectService(t)
		m.Client.EXPECT().GetClientByID(uint(1)).Return(acme, nil)
		m.User.EXPECT().GetUsersByIDs([]uint{9, 2, 7}).Return([]user.User{bob}, nil)

		_, err := svc.CreateProject(c, 1, 1, project.CreateProjectDTO{
			ProjectName: "Website",
			UserIDs:     []uint{9, 2, 7, 9},
		})
		var verr *application.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Invalid user ids - object does not exist: 7, 9", verr.Fields["user_ids"])
	})

	t.Run("ids beyond the key range are reported without a lookup", func(t *testing.T) {
		svc, m, c := setupProjectService(t)
		m.Client.EXPECT().GetClientByID(uint(1)).Return(acme, nil)
		m.User.EXPECT().GetUsersByIDs([]uint{2}).Return([]user.User{bob}, nil)

		_, err := svc.CreateProject(c, 1, 1, project.CreateProjectDTO{
			ProjectName: "Website",
			UserIDs:     []uint{uint(math.MaxInt64) + 1, 2},
		})
		var verr *application.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Invalid user ids - object does not exist: 9223372036854775808", verr.Fields["user_ids"])
	})

	t.Run("only out of range ids", func(t *testing.T) {
		svc, m, c := setupProjectService(t)
		m.Client.EXPECT().GetClientByID(uint(1)).Return(acme, nil)

		_, err := svc.CreateProject(c, 1, 1, project.CreateProjectDTO{
			ProjectName: "Website",
			UserIDs:     []uint{math.MaxUint64},
		})
		var verr *application.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields["user_ids"], "18446744073709551615")
	})

	t.Run("insert failure", func(t *testing.T) {
		svc, m, c := setupProjectService(t)
		m.Client.EXPECT().GetClientByID(uint(1)).Return(acme, nil)
		m.Project.EXPECT().CreateProject(gomock.Any()).Return(errors.New("insert failed"))

		_, err := svc.CreateProject(c, 1, 1, project.CreateProjectDTO{ProjectName: "Website"})
		assert.Error(t, err)
	})
}

func TestListProjectsForUser(t *testing.T) {
	svc, m, _ := setupProjectService(t)
	m.Project.EXPECT().ListProjectsByUserID(uint(2)).Return([]project.Project{
		{ID: 1, ProjectName: "A", ClientName: "Acme"},
		{ID: 4, ProjectName: "B", ClientName: "Globex"},
	}, nil)

	out, err := svc.ListProjectsForUser(2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Globex", out[1].Client)
}

func TestListProjectsForUserNone(t *testing.T) {
	svc, m, _ := setupProjectService(t)
	m.Project.EXPECT().ListProjectsByUserID(uint(2)).Return(nil, nil)

	out, err := svc.ListProjectsForUser(2)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
