package notifier

// Notifier defines the interface for delivering run notifications
type Notifier interface {
	// Notify delivers a single message
	Notify(text string) error
}
