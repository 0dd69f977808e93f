package shared

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// Principal là danh tính của caller, được auth middleware build từ JWT
// và truyền tường minh vào service
type Principal struct {
	UserID   int64
	Username string
	Roles    []string
}

func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (p Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}

// CanAccess: chủ sở hữu hoặc admin
func (p Principal) CanAccess(ownerID int64) bool {
	return p.UserID == ownerID || p.IsAdmin()
}

var (
	ErrUnauthenticated = Unauthorized("AUTH401", "Chưa đăng nhập hoặc token không hợp lệ")
	ErrAdminRequired   = Forbidden("AUTH403", "Bạn không có quyền thực hiện thao tác này")
)

// RequireAdmin dùng ở đầu các service method dành cho admin
func RequireAdmin(p Principal) error {
	if !p.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}
