// Package navigation resolves which screen a client should present.
// Not a state machine: each resolution is a single atomic jump with
// role/auth/commitment guards and no intermediate states.
package navigation

// View identifies a client screen.
type View string

const (
	ViewWelcome        View = "welcome"
	ViewLogin          View = "login"
	ViewRegister       View = "register"
	ViewConfirmEmail   View = "confirm-email"
	ViewForgotPassword View = "forgot-password"
	ViewOnboardingName View = "onboarding-name"
	ViewCommitment     View = "commitment"
	ViewDashboard      View = "dashboard"
	ViewRanking        View = "ranking"
	ViewJourney        View = "journey"
	ViewAchievements   View = "achievements"
	ViewGratitude      View = "gratitude"
	ViewAddGratitude   View = "add-gratitude"
	ViewCalendar       View = "calendar"
	ViewMessages       View = "messages"
	ViewUserProfile    View = "user-profile"

	ViewAdminDashboard     View = "admin-dashboard"
	ViewAdminNotifications View = "admin-notifications"
	ViewAdminUsers         View = "admin-users"
	ViewAdminWisdom        View = "admin-wisdom"
	ViewAdminForge         View = "admin-forge"
	ViewAdminCalendar      View = "admin-calendar"
)

var publicViews = map[View]bool{
	ViewWelcome:        true,
	ViewLogin:          true,
	ViewRegister:       true,
	ViewConfirmEmail:   true,
	ViewForgotPassword: true,
}

var adminViews = map[View]bool{
	ViewAdminDashboard:     true,
	ViewAdminNotifications: true,
	ViewAdminUsers:         true,
	ViewAdminWisdom:        true,
	ViewAdminForge:         true,
	ViewAdminCalendar:      true,
}

// Known reports whether v names a screen at all.
func Known(v View) bool {
	return publicViews[v] || adminViews[v] || memberViews[v]
}

var memberViews = map[View]bool{
	ViewOnboardingName: true,
	ViewCommitment:     true,
	ViewDashboard:      true,
	ViewRanking:        true,
	ViewJourney:        true,
	ViewAchievements:   true,
	ViewGratitude:      true,
	ViewAddGratitude:   true,
	ViewCalendar:       true,
	ViewMessages:       true,
	ViewUserProfile:    true,
}

// Resolve maps a requested view onto the one the client may present.
//
// Guards, in order: unauthenticated sessions only reach public views;
// admins are routed exclusively within the admin subset; non-admins who
// have not accepted the commitment are forced to the commitment screen;
// admin views requested by non-admins fall back to the dashboard.
func Resolve(requested View, authenticated bool, admin bool, hasCommitment bool) View {
	if !authenticated {
		if publicViews[requested] {
			return requested
		}
		return ViewWelcome
	}

	if admin {
		if adminViews[requested] {
			return requested
		}
		return ViewAdminDashboard
	}

	if !hasCommitment {
		return ViewCommitment
	}

	if !Known(requested) || publicViews[requested] || adminViews[requested] {
		return ViewDashboard
	}
	return requested
}
