package state

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelError represents error notifications
	LevelError
)

// Notification is a single message shown to the user.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState manages the transient messages shown above the
// active view. Errors stay until dismissed or replaced; there is no
// retry machinery behind them, the user re-triggers the action.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates an empty NotificationState.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add appends a notification.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{Level: level, Message: message})
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns the current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny reports whether any notification is pending.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
