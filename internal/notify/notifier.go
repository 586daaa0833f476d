// Package notify delivers reminder messages and hosts the scheduler
// that decides when to send them.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notifier hands a message to the host's notification facility.
type Notifier interface {
	Send(title, body string) error
}

// DesktopNotifier delivers native desktop notifications.
type DesktopNotifier struct {
	AppName string
}

func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{AppName: "drinktrack"}
}

func (n *DesktopNotifier) Send(title, body string) error {
	beeep.AppName = n.AppName
	if err := beeep.Notify(title, body, ""); err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}
	return nil
}
