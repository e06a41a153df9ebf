package user

// IsBackOffice reports whether the role may use the administrative surface
// (location registry, attendance settings, application review, leave
// approval, reports).
func IsBackOffice(r Role) bool {
	return r == RoleAdmin || r == RoleSubAdmin
}

// IsEmployee reports whether the role may use the attendance and leave
// surface. Back-office staff are employees too.
func IsEmployee(r Role) bool {
	return r == RoleEmployee || IsBackOffice(r)
}
