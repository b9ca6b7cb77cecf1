// Package policy decides owner-or-admin access. Ownership is expressed in
// patient ids: the caller's user id has already been resolved to a patient
// profile by the service before the check runs.
package policy

type Decision int

const (
	Deny Decision = iota
	Allow
)

// Authorize allows admins unconditionally and non-admins only when the
// resource is owned by their own patient profile. A Deny must surface as a
// forbidden failure, never as an empty result.
func Authorize(isAdmin bool, callerPatientID, ownerPatientID uint) Decision {
	if isAdmin {
		return Allow
	}

	if callerPatientID != 0 && callerPatientID == ownerPatientID {
		return Allow
	}

	return Deny
}
