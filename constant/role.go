package constant

const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
	RoleBuyer  = "buyer"
)

type Permission string

const (
	PermCartManage       Permission = "cart:manage"
	PermOrderCreate      Permission = "order:create"
	PermOrderRead        Permission = "order:read"
	PermInvoiceRead      Permission = "invoice:read"
	PermInvoicePay       Permission = "invoice:pay"
	PermDeliveryConfirm  Permission = "delivery:confirm"
	PermProductManage    Permission = "product:manage"
	PermProductApprove   Permission = "product:approve"
	PermCategoryManage   Permission = "category:manage"
	PermRoleManage       Permission = "role:manage"
	PermNotificationRead Permission = "notification:read"
)

// RolePermissions grants are additive across every role a user holds.
var RolePermissions = map[string][]Permission{
	RoleBuyer: {
		PermCartManage,
		PermOrderCreate,
		PermOrderRead,
		PermInvoiceRead,
		PermNotificationRead,
	},
	RoleSeller: {
		PermProductManage,
		PermInvoiceRead,
		PermInvoicePay,
		PermDeliveryConfirm,
		PermNotificationRead,
	},
	RoleAdmin: {
		PermProductApprove,
		PermCategoryManage,
		PermRoleManage,
		PermInvoiceRead,
		PermInvoicePay,
		PermOrderRead,
		PermNotificationRead,
	},
}

func IsValidRole(role string) bool {
	_, ok := RolePermissions[role]
	return ok
}

// HasPermission reports whether any of roles grants perm.
func HasPermission(roles []string, perm Permission) bool {
	for _, role := range roles {
		for _, p := range RolePermissions[role] {
			if p == perm {
				return true
			}
		}
	}
	return false
}

func HasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
