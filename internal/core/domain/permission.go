package domain

// Permission is an abstract capability a role may hold.
type Permission string

const (
	PermRead      Permission = "read"
	PermWrite     Permission = "write"
	PermModerate  Permission = "moderate"
	PermDelete    Permission = "delete"
	PermDeleteOwn Permission = "delete_own"
)

// Action is a protected operation. Every protected route declares exactly
// one action; Decide is the single authorization source for all of them.
type Action string

const (
	ActionCreatePost    Action = "create_post"
	ActionListPosts     Action = "list_posts"
	ActionListPending   Action = "list_pending"
	ActionModeratePost  Action = "moderate_post"
	ActionDeletePost    Action = "delete_post"
	ActionDeleteOwnPost Action = "delete_own_post"
)

// rolePermissions is the static role → capability table. Admins hold full
// delete power but not the moderate capability; moderators review content
// but may only delete their own.
var rolePermissions = map[Role]map[Permission]struct{}{
	RoleAdmin:     permSet(PermRead, PermWrite, PermDelete),
	RoleModerator: permSet(PermRead, PermWrite, PermModerate, PermDeleteOwn),
	RoleUser:      permSet(PermRead, PermWrite, PermDeleteOwn),
}

// actionRequirements maps each action to the permissions that grant it
// (any one suffices). Listing the pending queue is open to both the
// moderate capability and full delete power, so admins can see the queue
// they cannot decide on.
var actionRequirements = map[Action][]Permission{
	ActionCreatePost:    {PermWrite},
	ActionListPosts:     {PermRead},
	ActionListPending:   {PermModerate, PermDelete},
	ActionModeratePost:  {PermModerate},
	ActionDeletePost:    {PermDelete},
	ActionDeleteOwnPost: {PermDelete, PermDeleteOwn},
}

// Has reports whether the role holds the given permission.
func (r Role) Has(p Permission) bool {
	_, ok := rolePermissions[r][p]
	return ok
}

// Decide renders the allow/deny decision for role performing action.
// It is pure and total: unknown roles and unknown actions are denied.
func Decide(role Role, action Action) bool {
	required, ok := actionRequirements[action]
	if !ok {
		return false
	}
	for _, p := range required {
		if role.Has(p) {
			return true
		}
	}
	return false
}

func permSet(perms ...Permission) map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}
