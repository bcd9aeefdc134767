package notifier

import "fmt"

// DryRunNotifier prints what would be sent without actually posting
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the message that would be sent
func (n *DryRunNotifier) Notify(text string) error {
	fmt.Printf("--- Notification (dry run) ---\n%s\n", text)
	return nil
}
