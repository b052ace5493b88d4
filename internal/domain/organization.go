package domain

type Organization struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type MembershipRole string

const (
	RoleAdmin  MembershipRole = "admin"
	RoleMember MembershipRole = "member"
)

// Membership ties a user to an organization. At most one row exists per
// (user, org) pair; the role on that row is the sole authorization source
// for task operations.
type Membership struct {
	UserID string         `json:"userId"`
	OrgID  int64          `json:"orgId"`
	Role   MembershipRole `json:"role"`
}
