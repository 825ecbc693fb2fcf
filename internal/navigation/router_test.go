package navigation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		requested     View
		authenticated bool
		admin         bool
		hasCommitment bool
		want          View
	}{
		{"anonymous reaches login", ViewLogin, false, false, false, ViewLogin},
		{"anonymous reaches forgot password", ViewForgotPassword, false, false, false, ViewForgotPassword},
		{"anonymous blocked from dashboard", ViewDashboard, false, false, false, ViewWelcome},
		{"anonymous blocked from admin", ViewAdminUsers, false, false, false, ViewWelcome},
		{"no commitment forced", ViewRanking, true, false, false, ViewCommitment},
		{"no commitment forced even for dashboard", ViewDashboard, true, false, false, ViewCommitment},
		{"member reaches gratitude", ViewGratitude, true, false, true, ViewGratitude},
		{"member blocked from admin subset", ViewAdminForge, true, false, true, ViewDashboard},
		{"member never sent back to login", ViewLogin, true, false, true, ViewDashboard},
		{"unknown view falls back to dashboard", View("nope"), true, false, true, ViewDashboard},
		{"admin stays in admin subset", ViewAdminWisdom, true, true, false, ViewAdminWisdom},
		{"admin redirected from member views", ViewDashboard, true, true, true, ViewAdminDashboard},
		{"admin skips commitment guard", ViewAdminDashboard, true, true, false, ViewAdminDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.requested, tt.authenticated, tt.admin, tt.hasCommitment)
			require.Equal(t, tt.want, got)
		})
	}
}
