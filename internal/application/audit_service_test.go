package application_test

import (
	"testing"

	"github.com/linskybing/clientdesk/internal/application"
	"github.com/linskybing/clientdesk/internal/domain/audit"
	"github.com/linskybing/clientdesk/internal/repository"
	"github.com/linskybing/clientdesk/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryAuditLogsClampsPaging(t *testing.T) {
	cases := []struct {
		name       string
		in         repository.AuditQueryParams
		wantLimit  int
		wantOffset int
	}{
		{"defaults", repository.AuditQueryParams{}, application.DefaultAuditLimit, 0},
		{"over max", repository.AuditQueryParams{Limit: 5000, Offset: 10}, application.MaxAuditLimit, 10},
		{"negative offset", repository.AuditQueryParams{Limit: 5, Offset: -3}, 5, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := testutils.NewMocks(t)
			svc := application.NewAuditService(m.Repos())

			m.Audit.EXPECT().GetAuditLogs(repository.AuditQueryParams{Limit: tc.wantLimit, Offset: tc.wantOffset}).
				Return([]audit.AuditLog{{ID: 1, Action: audit.ActionCreate}}, nil)

			logs, err := svc.QueryAuditLogs(tc.in)
			require.NoError(t, err)
			assert.Len(t, logs, 1)
		})
	}
}

func TestCleanupOldLogs(t *testing.T) {
	m := testutils.NewMocks(t)
	svc := application.NewAuditService(m.Repos())
	m.Audit.EXPECT().DeleteOldAuditLogs(30).Return(int64(4), nil)

	n, err := svc.CleanupOldLogs(30)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
