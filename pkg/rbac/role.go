package rbac

//go:generate go run github.com/dmarkham/enumer -type Role -trimprefix Role -transform snake -json -text -output role.gen.go

// Role is an enumerated privilege level. The declaration order defines
// the total order of privilege used by IsAtLeast.
type Role int

const (
	RoleCustomer Role = iota
	RoleCompanyOwner
	RoleAdministrator
)

// IsAtLeast reports whether the role carries at least the privilege of
// threshold. Undefined roles never satisfy any threshold.
func (i Role) IsAtLeast(threshold Role) bool {
	if !i.IsARole() || !threshold.IsARole() {
		return false
	}
	return i >= threshold
}
