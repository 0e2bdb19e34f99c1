package entity

// Application lifecycle statuses. Every handler goes through the helpers
// below instead of comparing literals so the allowed transitions live in
// one place.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusAssigned  = "assigned"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// ReviewTargets are the statuses an admin may set directly from the
// review screen. Assignment and termination have their own endpoints.
var ReviewTargets = []string{StatusPending, StatusApproved, StatusRejected}

// ReviewableStatuses are the current statuses a review action may move
// away from. Applications holding a bike (assigned/active) or already
// finished (completed) are locked.
var ReviewableStatuses = []string{StatusPending, StatusApproved, StatusRejected}

// AssignableStatuses are the statuses from which a bike may be attached,
// provided no bike is attached yet.
var AssignableStatuses = []string{StatusApproved, StatusAssigned, StatusActive}

// TerminableStatuses are the statuses an active rental can be ended from.
var TerminableStatuses = []string{StatusAssigned, StatusActive}

// LiveStatuses are the statuses that block a user from submitting another
// application.
var LiveStatuses = []string{StatusPending, StatusApproved, StatusAssigned, StatusActive}

func IsReviewTarget(s string) bool     { return contains(ReviewTargets, s) }
func IsReviewable(s string) bool       { return contains(ReviewableStatuses, s) }
func IsAssignableStatus(s string) bool { return contains(AssignableStatuses, s) }
func IsTerminable(s string) bool       { return contains(TerminableStatuses, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
