package progress

import (
	"lms/models"
	courseModels "lms/models/course"
	"time"
)

// Access gate denial reasons, in check order.
const (
	ReasonRoleRestricted     = "Content restricted for your role"
	ReasonPremiumRequired    = "Premium subscription required"
	ReasonNotYetAvailable    = "Module not yet available"
	ReasonNoLongerAvailable  = "Module no longer available"
	ReasonPrerequisitesUnmet = "Prerequisites not completed"
)

// AccessDecision is the result of a module access check.
type AccessDecision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func allowed() AccessDecision        { return AccessDecision{Allowed: true} }
func denied(r string) AccessDecision { return AccessDecision{Allowed: false, Reason: r} }

// CanAccess decides whether a user may open a module's content. Checks run in
// order (role, premium, availability window, prerequisites) and short-circuit
// on the first failure. The prerequisite check only runs when an enrollment
// record is supplied. Admins bypass all checks.
//
// Module numbers are 1-based; enrollment records store the 0-based index, so
// prerequisite module number p maps to completed index p-1.
func CanAccess(mod *courseModels.Module, user *models.User, enr *courseModels.Enrollment, now time.Time) AccessDecision {
	if user.Role == "ADMIN" {
		return allowed()
	}

	if len(mod.AllowedRoles) > 0 && !containsRole(mod.AllowedRoles, user.Role) {
		return denied(ReasonRoleRestricted)
	}

	if mod.IsPremiumOnly && !user.IsPremium {
		return denied(ReasonPremiumRequired)
	}

	if mod.AvailableFrom != nil && now.Before(*mod.AvailableFrom) {
		return denied(ReasonNotYetAvailable)
	}
	if mod.AvailableUntil != nil && now.After(*mod.AvailableUntil) {
		return denied(ReasonNoLongerAvailable)
	}

	if enr != nil {
		for _, num := range mod.PrerequisiteModules {
			if num < 1 {
				continue
			}
			if !enr.HasModule(num - 1) {
				return denied(ReasonPrerequisitesUnmet)
			}
		}
		// Sequential modules additionally require the previous module
		// unless skipping is allowed.
		if mod.SequentialAccess && !mod.AllowSkip && mod.ModuleNumber > 1 {
			if !enr.HasModule(mod.ModuleNumber - 2) {
				return denied(ReasonPrerequisitesUnmet)
			}
		}
	}

	return allowed()
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
