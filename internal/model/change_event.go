package model

import "time"

// ChangeAction 異動類型
type ChangeAction string

const (
	ChangeActionCreated ChangeAction = "created"
	ChangeActionUpdated ChangeAction = "updated"
	ChangeActionDeleted ChangeAction = "deleted"
)

// IsValid 驗證類型是否有效
func (a ChangeAction) IsValid() bool {
	switch a {
	case ChangeActionCreated, ChangeActionUpdated, ChangeActionDeleted:
		return true
	}
	return false
}

// 資源名稱，同時也是 change_log.resource 的值
const (
	ResourceDepartment = "department"
	ResourceRole       = "role"
	ResourceEventType  = "event_type"
	ResourceEvent      = "event"
	ResourceMember     = "member"
)

// ChangeEvent 成功異動後發佈到 queue，由 worker 寫入 change_log
type ChangeEvent struct {
	ID         int          `json:"id" db:"id"`
	Resource   string       `json:"resource" db:"resource"`
	ResourceID int          `json:"resourceId" db:"resource_id"`
	Action     ChangeAction `json:"action" db:"action"`
	OccurredAt time.Time    `json:"occurredAt" db:"occurred_at"`
}
