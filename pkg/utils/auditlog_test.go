package utils

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/clientdesk/internal/domain/audit"
	"github.com/linskybing/clientdesk/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAuditPersistsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAuditRepo(ctrl)

	repo.EXPECT().CreateAuditLog(gomock.Any()).DoAndReturn(func(l *audit.AuditLog) error {
		assert.Equal(t, uint(1), l.UserID)
		assert.Equal(t, audit.ActionUpdate, l.Action)
		assert.Equal(t, "client", l.ResourceType)
		assert.Equal(t, "id=4", l.ResourceID)
		assert.Equal(t, "10.0.0.1", l.IPAddress)

		var before, after map[string]string
		require.NoError(t, json.Unmarshal(l.OldData, &before))
		require.NoError(t, json.Unmarshal(l.NewData, &after))
		assert.Equal(t, "Acme", before["client_name"])
		assert.Equal(t, "Acme Corp", after["client_name"])
		return nil
	})

	err := LogAudit(1, "10.0.0.1", "curl", audit.ActionUpdate, "client", "id=4",
		map[string]string{"client_name": "Acme"},
		map[string]string{"client_name": "Acme Corp"},
		"", repo)
	assert.NoError(t, err)
}

func TestLogAuditCreateHasNoOldData(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAuditRepo(ctrl)

	repo.EXPECT().CreateAuditLog(gomock.Any()).DoAndReturn(func(l *audit.AuditLog) error {
		assert.Nil(t, l.OldData)
		assert.NotNil(t, l.NewData)
		return nil
	})

	assert.NoError(t, LogAudit(1, "", "", audit.ActionCreate, "project", "id=1", nil, map[string]int{"id": 1}, "", repo))
}
