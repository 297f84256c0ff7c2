package domain

// UserRole controls what a user may do with documents.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleReviewer UserRole = "REVIEWER"
	RoleCreator  UserRole = "CREATOR"
	RoleViewer   UserRole = "VIEWER"
)

// CanSubmit reports whether the role may move a document from Draft to
// Submitted. Creators prepare drafts; reviewers and admins post them.
func (r UserRole) CanSubmit() bool {
	return r == RoleAdmin || r == RoleReviewer
}

// CanEdit reports whether the role may create or modify draft documents.
func (r UserRole) CanEdit() bool {
	return r == RoleAdmin || r == RoleReviewer || r == RoleCreator
}

// User represents an authenticated operator of the system.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (e.g., UUID)
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	IsActive     bool     `json:"isActive"`
	AuditFields
}
