package commands

import (
	"errors"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/guard"
)

var ErrNotifyStalePendingCommandIsNotConstructed = errors.New(
	"NotifyStalePendingCommand must be created via NewNotifyStalePendingCommand constructor",
)

// NotifyStalePendingCommand triggers a sweep for orders that have sat in
// Pending status too long without a kitchen decision. Stale orders keep
// holding their capacity; the sweep only reminds the kitchens to act.
//
// Example:
//
//	cmd := NewNotifyStalePendingCommand()
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("stale pending sweep failed: %v", err)
//	}
type NotifyStalePendingCommand struct {
	guard guard.ConstructorGuard
}

// NewNotifyStalePendingCommand creates a command to trigger the stale
// pending sweep. This is a parameterless command.
func NewNotifyStalePendingCommand() NotifyStalePendingCommand {
	return NotifyStalePendingCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c NotifyStalePendingCommand) Validate() error {
	return c.guard.Validate(ErrNotifyStalePendingCommandIsNotConstructed)
}
