package kernel_test

import (
	"testing"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownUUID = "7b9c2c44-1f4e-4a06-9d0f-3a5b8e2c6d10"

func TestNewUUID(t *testing.T) {
	t.Run("should produce a valid non-nil identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should not repeat across calls", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 32; i++ {
			id := kernel.NewUUID()
			assert.False(t, seen[id.String()])
			seen[id.String()] = true
		}
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse the canonical forms", func(t *testing.T) {
		// uuid.Parse accepts braces, urn prefix and the compact form;
		// all collapse to the same canonical identifier.
		inputs := []string{
			knownUUID,
			"{" + knownUUID + "}",
			"urn:uuid:" + knownUUID,
			"7b9c2c441f4e4a069d0f3a5b8e2c6d10",
		}

		for _, input := range inputs {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err, "input: %s", input)
			assert.Equal(t, knownUUID, id.String())
			assert.NoError(t, id.Validate())
		}
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		inputs := []string{
			"",
			"kitchen-42",
			"7b9c2c44-1f4e-4a06-9d0f",
			knownUUID + "ff",
			"zz9c2c44-1f4e-4a06-9d0f-3a5b8e2c6d10",
		}

		for _, input := range inputs {
			_, err := kernel.UUIDFromString(input)
			assert.Error(t, err, "input: %s", input)
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round-trip through the raw representation", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
	})

	t.Run("should reject a truncated slice", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x7b, 0x9c, 0x2c})
		assert.Error(t, err)
	})

	t.Run("should reject the nil identifier", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("should compare by value", func(t *testing.T) {
		a, err := kernel.UUIDFromString(knownUUID)
		require.NoError(t, err)
		b, err := kernel.UUIDFromString(knownUUID)
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.True(t, b.IsEqual(a))
		assert.False(t, a.IsEqual(kernel.NewUUID()))
	})

	t.Run("two zero values compare equal", func(t *testing.T) {
		var a, b kernel.UUID
		assert.True(t, a.IsEqual(b))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("generated identifiers are valid", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("the zero value is not", func(t *testing.T) {
		var id kernel.UUID
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("an explicitly nil identifier is not", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("exposes the underlying uuid.UUID by copy", func(t *testing.T) {
		id := kernel.NewUUID()

		raw := id.Bytes()
		assert.IsType(t, uuid.UUID{}, raw)
		assert.Equal(t, id.String(), raw.String())

		for i := range raw {
			raw[i] = 0xFF
		}
		assert.NotEqual(t, raw.String(), id.String())
		assert.NoError(t, id.Validate())
	})
}
