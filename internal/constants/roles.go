package constants

// User roles, mirrored from the profiles.role column
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
	RoleUser    = "user"
)

// StaffRoles are the roles allowed to use the admin dashboard at all.
var StaffRoles = []string{RoleOwner, RoleAdmin, RoleManager, RoleViewer}

// SyncRoles are the roles allowed to trigger billing/CRM sync and
// reward mutations.
var SyncRoles = []string{RoleOwner, RoleAdmin}

// Reward lifecycle states
const (
	RewardStatusPending = "pending"
	RewardStatusApplied = "applied"
	RewardStatusShared  = "shared"
)

// CRM sync states on the customers table
const (
	CRMSyncStatusNotSynced = "not_synced"
	CRMSyncStatusSynced    = "synced"
	CRMSyncStatusNotFound  = "not_found"
	CRMSyncStatusError     = "error"
)

// Reward types; quarterly is the only variant today
const (
	RewardTypeQuarterly = "quarterly_reward"
)

// Payment states recorded in payment_history
const (
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
)
