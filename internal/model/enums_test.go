package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatType_MustMapsClosedSet(t *testing.T) {
	for v, name := range []string{"PRIVATE", "GROUP", "SUPERGROUP"} {
		ct := ChatType(v).Must()
		assert.Equal(t, name, ct.String())
	}
}

func TestChatType_MustPanicsOnUnmapped(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		corrupt, ok := r.(*CorruptEnumError)
		require.True(t, ok, "expected *CorruptEnumError, got %T", r)
		assert.Equal(t, "chat_type", corrupt.Enum)
		assert.Equal(t, int16(3), corrupt.Value)
	}()
	ChatType(3).Must()
}

func TestKeyboardType_Must(t *testing.T) {
	assert.Equal(t, KeyboardTypeDice, KeyboardType(2).Must())
	assert.Panics(t, func() { KeyboardType(-1).Must() })
}

func TestCocktailCategory_String(t *testing.T) {
	assert.Equal(t, "Caipi", CocktailCategoryCaipi.String())
	assert.Equal(t, "Frozen Margaritas", CocktailCategoryFrozenMargaritas.String())
	assert.Equal(t, "Gin", CocktailCategory(7).Must().String())
	assert.Panics(t, func() { CocktailCategory(8).Must() })
}

func TestChatUser_NormalizeUnmutesAdmins(t *testing.T) {
	cu := ChatUser{Admin: true, Muted: true}
	cu.Normalize()
	assert.False(t, cu.Muted)

	cu = ChatUser{Admin: false, Muted: true}
	cu.Normalize()
	assert.True(t, cu.Muted)
}
