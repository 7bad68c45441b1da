// Package policy 集中定义系统的授权规则。
// 所有的可见性和操作权限判断都必须经过这里，路由中间件用它来决定
// 是否暴露入口，服务层用它在数据边界做二次校验。
package policy

// Role 表示账户角色
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Resource 表示受保护的资源类型
type Resource string

const (
	ResourceMember    Resource = "member"
	ResourceBill      Resource = "bill"
	ResourcePayment   Resource = "payment"
	ResourceNotice    Resource = "notice"
	ResourceComplaint Resource = "complaint"
	ResourceProfile   Resource = "profile"
	ResourceSetting   Resource = "setting"
)

// Scope 表示一次列表查询允许看到的行范围
type Scope int

const (
	// ScopeNone 不允许查看任何行
	ScopeNone Scope = iota
	// ScopeOwn 只允许查看属于自己的行
	ScopeOwn
	// ScopeAll 允许查看全部行
	ScopeAll
)

// Actor 表示当前发起操作的已认证主体。
// MemberID 为 0 表示该账户尚未关联成员记录。
type Actor struct {
	UserID   uint
	MemberID uint
	Role     Role
}

// IsAdmin 判断主体是否为管理员
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// rule 描述单个资源的授权规则
type rule struct {
	// public 为 true 时所有已认证主体都可以查看（无归属过滤）
	public bool
	// create 列出允许创建该资源的角色
	create map[Role]bool
	// updateAdmin 为 true 时管理员可以更新任意行
	updateAdmin bool
	// updateOwner 为 true 时资源归属者可以更新自己的行
	updateOwner bool
}

// rules 是唯一的授权规则表，按资源类型索引
var rules = map[Resource]rule{
	ResourceMember: {
		create: map[Role]bool{RoleAdmin: true},
	},
	ResourceBill: {
		create: map[Role]bool{RoleAdmin: true},
		// 账单本身不允许任何角色直接修改，状态翻转只发生在支付流程内部
	},
	ResourcePayment: {
		// 管理员可以代任何账单录入支付，成员只能支付自己的账单，
		// 账单归属由 CanPay 单独校验
		create: map[Role]bool{RoleAdmin: true, RoleMember: true},
	},
	ResourceNotice: {
		public: true,
		create: map[Role]bool{RoleAdmin: true},
	},
	ResourceComplaint: {
		create:      map[Role]bool{RoleMember: true},
		updateAdmin: true,
	},
	ResourceProfile: {
		updateOwner: true,
	},
	ResourceSetting: {
		updateOwner: true,
	},
}

// CanView 判断主体是否可以查看某一行资源。
// ownerID 表示该行的归属标识: 对 profile/setting 是账户ID，
// 对 bill/payment/complaint 是成员ID。
func CanView(actor Actor, res Resource, ownerID uint) bool {
	r, ok := rules[res]
	if !ok {
		return false
	}
	if r.public || actor.IsAdmin() {
		return true
	}
	return ownerID != 0 && ownerID == ownedID(actor, res)
}

// VisibleScope 返回主体在列表查询中允许看到的行范围
func VisibleScope(actor Actor, res Resource) Scope {
	r, ok := rules[res]
	if !ok {
		return ScopeNone
	}
	if r.public || actor.IsAdmin() {
		return ScopeAll
	}
	return ScopeOwn
}

// CanCreate 判断主体是否可以创建该类资源
func CanCreate(actor Actor, res Resource) bool {
	r, ok := rules[res]
	if !ok {
		return false
	}
	return r.create[actor.Role]
}

// CanUpdate 判断主体是否可以更新某一行资源
func CanUpdate(actor Actor, res Resource, ownerID uint) bool {
	r, ok := rules[res]
	if !ok {
		return false
	}
	if r.updateAdmin && actor.IsAdmin() {
		return true
	}
	if r.updateOwner {
		return ownerID != 0 && ownerID == ownedID(actor, res)
	}
	return false
}

// CanPay 判断主体是否可以对归属于 billMemberID 的账单发起支付
func CanPay(actor Actor, billMemberID uint) bool {
	if !CanCreate(actor, ResourcePayment) {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	return actor.MemberID != 0 && actor.MemberID == billMemberID
}

// ownedID 返回主体在该资源维度上的归属标识
func ownedID(actor Actor, res Resource) uint {
	switch res {
	case ResourceProfile, ResourceSetting:
		return actor.UserID
	default:
		return actor.MemberID
	}
}
