package domain

import "github.com/google/uuid"

type Privilege int

const (
	PrivilegeUser Privilege = iota
	PrivilegeAdmin
)

// Identity is the authenticated caller of an operation.
type Identity struct {
	UserID    uuid.UUID
	Email     string
	Privilege Privilege
}

type Action string

const (
	ActionManageCatalog Action = "manage_catalog"
	ActionManageOrders  Action = "manage_orders"
	ActionViewAnyOrder  Action = "view_any_order"
	ActionManageUsers   Action = "manage_users"
)
