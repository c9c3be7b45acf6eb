package guard_test

import (
	"errors"
	"testing"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	notConstructed := errors.New("command must be created via its constructor")

	t.Run("a guard from the constructor validates clean", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(notConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("the zero value returns the caller's error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(notConstructed)

		require.Error(t, err)
		assert.Equal(t, notConstructed, err)
	})

	t.Run("the zero value falls back to the package default", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copies stay valid when passed by value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		copied := g

		require.NoError(t, copied.Validate(notConstructed))
	})
}

// The guard's intended use: buried in a value object so that zero-value
// instances fail Validate until a constructor sets the guard.
func TestConstructorGuard_InValueObject(t *testing.T) {
	errSlotPickNotConstructed := errors.New("SlotPick must be created via newSlotPick")

	type SlotPick struct {
		slot  string
		guard guard.ConstructorGuard
	}

	newSlotPick := func(slot string) (SlotPick, error) {
		if slot == "" {
			return SlotPick{}, errors.New("slot is required")
		}
		return SlotPick{slot: slot, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed instance validates", func(t *testing.T) {
		pick, err := newSlotPick("LUNCH")

		require.NoError(t, err)
		require.NoError(t, pick.guard.Validate(errSlotPickNotConstructed))
		assert.Equal(t, "LUNCH", pick.slot)
	})

	t.Run("zero value is caught", func(t *testing.T) {
		var pick SlotPick

		err := pick.guard.Validate(errSlotPickNotConstructed)

		assert.Equal(t, errSlotPickNotConstructed, err)
	})

	t.Run("constructor rejections leave no constructed value behind", func(t *testing.T) {
		pick, err := newSlotPick("")

		require.Error(t, err)
		assert.Error(t, pick.guard.Validate(errSlotPickNotConstructed))
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	notConstructed := errors.New("not constructed")

	done := make(chan struct{})
	for range 8 {
		go func() {
			for range 1000 {
				assert.NoError(t, g.Validate(notConstructed))
			}
			done <- struct{}{}
		}()
	}
	for range 8 {
		<-done
	}
}
