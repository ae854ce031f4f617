package models

// ChangeType is the user-facing filter category for view rows.
type ChangeType int

const (
	// ChangeAdded selects inserted rows.
	ChangeAdded ChangeType = iota
	// ChangeDeleted selects deleted rows.
	ChangeDeleted
	// ChangeModified selects both sides of replaced rows.
	ChangeModified
	// ChangeUnchanged selects equal rows.
	ChangeUnchanged
)

// String returns the display label for the change type.
func (ct ChangeType) String() string {
	switch ct {
	case ChangeAdded:
		return "Added"
	case ChangeDeleted:
		return "Deleted"
	case ChangeModified:
		return "Modified"
	case ChangeUnchanged:
		return "Unchanged"
	default:
		return "Unknown"
	}
}

// Roles returns the line roles selected by this change type.
func (ct ChangeType) Roles() []LineRole {
	switch ct {
	case ChangeAdded:
		return []LineRole{RoleInserted}
	case ChangeDeleted:
		return []LineRole{RoleDeleted}
	case ChangeModified:
		return []LineRole{RoleReplacedOld, RoleReplacedNew}
	case ChangeUnchanged:
		return []LineRole{RoleEqual}
	default:
		return nil
	}
}

// ParseChangeType maps a label back to its ChangeType.
func ParseChangeType(label string) (ChangeType, bool) {
	switch label {
	case "Added", "added":
		return ChangeAdded, true
	case "Deleted", "deleted":
		return ChangeDeleted, true
	case "Modified", "modified":
		return ChangeModified, true
	case "Unchanged", "unchanged":
		return ChangeUnchanged, true
	default:
		return 0, false
	}
}
