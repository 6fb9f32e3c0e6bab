package auth

import "food-ordering/order-svc/internal/domain"

// RolePolicy grants actions by privilege level.
type RolePolicy struct {
	grants map[domain.Privilege]map[domain.Action]bool
}

func NewRolePolicy() *RolePolicy {
	return &RolePolicy{
		grants: map[domain.Privilege]map[domain.Action]bool{
			domain.PrivilegeAdmin: {
				domain.ActionManageCatalog: true,
				domain.ActionManageOrders:  true,
				domain.ActionViewAnyOrder:  true,
				domain.ActionManageUsers:   true,
			},
		},
	}
}

func (p *RolePolicy) Allow(identity domain.Identity, action domain.Action) bool {
	return p.grants[identity.Privilege][action]
}
