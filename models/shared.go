package models

// Role identifies what a user is allowed to do. A user has exactly one
// role, assigned at registration and never changed.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

// ServiceCategory is the fixed set of trades the platform serves.
type ServiceCategory string

const (
	CategoryElectrician ServiceCategory = "Electrician"
	CategoryPlumber     ServiceCategory = "Plumber"
	CategoryCarpenter   ServiceCategory = "Carpenter"
	CategoryCleaning    ServiceCategory = "Cleaning"
)

// ServiceCategories lists every known category.
var ServiceCategories = []ServiceCategory{
	CategoryElectrician,
	CategoryPlumber,
	CategoryCarpenter,
	CategoryCleaning,
}

// ValidServiceCategory reports whether c is a known category.
func ValidServiceCategory(c ServiceCategory) bool {
	for _, known := range ServiceCategories {
		if c == known {
			return true
		}
	}
	return false
}
