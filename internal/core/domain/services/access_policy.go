package services

import "parcelhub/internal/core/domain/model/account"

// Operation names a capability a caller may request. Operations are grouped
// by the narrowest role that needs them; "any:" operations are open to every
// authenticated identity.
type Operation string

const (
	// OpBookParcel books a new parcel (customers).
	OpBookParcel Operation = "customer:book"

	// OpViewOwnStatus lists and inspects the caller's own parcels.
	OpViewOwnStatus Operation = "any:viewOwnStatus"

	// OpViewStats reads the aggregate dashboard counters.
	OpViewStats Operation = "any:viewStats"

	// OpUpdateStatus applies a lifecycle transition to a parcel.
	OpUpdateStatus Operation = "any:updateStatus"

	// OpViewAssigned lists the parcels assigned to the calling agent.
	OpViewAssigned Operation = "agent:viewAssigned"

	// OpManageUsers lists, re-roles, and deletes accounts (admins).
	OpManageUsers Operation = "admin:manageUsers"

	// OpAssignAgent assigns an agent to a parcel (admins).
	OpAssignAgent Operation = "admin:assignAgent"

	// OpViewAllParcels lists every parcel with resolved names (admins).
	OpViewAllParcels Operation = "admin:viewAllParcels"

	// OpReports renders the CSV/Excel/PDF parcel reports (admins).
	OpReports Operation = "admin:reports"
)

// anyRoleOperations are granted to every authenticated identity.
func anyRoleOperations() []Operation {
	return []Operation{OpViewOwnStatus, OpViewStats, OpUpdateStatus}
}

// rolePolicy is the static role -> operation grant table. Admins receive
// every operation; the table lists only role-specific grants.
func rolePolicy() map[account.Role][]Operation {
	return map[account.Role][]Operation{
		account.RoleCustomer: {OpBookParcel},
		account.RoleAgent:    {OpViewAssigned},
		account.RoleAdmin: {
			OpBookParcel,
			OpViewAssigned,
			OpManageUsers,
			OpAssignAgent,
			OpViewAllParcels,
			OpReports,
		},
	}
}

// AccessPolicy is the authorization gate. It is stateless: Allow consults
// the static grant table and never touches the store. Unauthenticated
// callers never reach Allow; the identity middleware rejects them first.
type AccessPolicy struct{}

// NewAccessPolicy creates the authorization gate.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Allow reports whether the role may perform the operation.
// Unknown roles are denied every operation.
func (AccessPolicy) Allow(role account.Role, op Operation) bool {
	if role.Validate() != nil {
		return false
	}

	for _, granted := range anyRoleOperations() {
		if granted == op {
			return true
		}
	}

	for _, granted := range rolePolicy()[role] {
		if granted == op {
			return true
		}
	}
	return false
}
