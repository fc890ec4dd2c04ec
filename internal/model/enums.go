package model

import "fmt"

// CorruptEnumError reports a stored integer outside of its enum's closed set.
// It is raised as a panic: such a row can only come from data corruption.
type CorruptEnumError struct {
	Enum  string
	Value int16
}

func (e *CorruptEnumError) Error() string {
	return fmt.Sprintf("corrupt %s value %d", e.Enum, e.Value)
}

// ChatType is the Telegram chat kind, stored as smallint.
type ChatType int16

const (
	ChatTypePrivate ChatType = iota
	ChatTypeGroup
	ChatTypeSupergroup
)

var chatTypeNames = [...]string{"PRIVATE", "GROUP", "SUPERGROUP"}

func (t ChatType) Valid() bool { return t >= 0 && int(t) < len(chatTypeNames) }

// Must returns t, panicking with *CorruptEnumError if t is unmapped.
func (t ChatType) Must() ChatType {
	if !t.Valid() {
		panic(&CorruptEnumError{Enum: "chat_type", Value: int16(t)})
	}
	return t
}

func (t ChatType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ChatType(%d)", int16(t))
	}
	return chatTypeNames[t]
}

// KeyboardType is the keyboard the bot currently shows in a chat.
type KeyboardType int16

const (
	KeyboardTypeNone KeyboardType = iota
	KeyboardTypeAttend
	KeyboardTypeDice
)

var keyboardTypeNames = [...]string{"NONE", "ATTEND", "DICE"}

func (k KeyboardType) Valid() bool { return k >= 0 && int(k) < len(keyboardTypeNames) }

// Must returns k, panicking with *CorruptEnumError if k is unmapped.
func (k KeyboardType) Must() KeyboardType {
	if !k.Valid() {
		panic(&CorruptEnumError{Enum: "current_keyboard", Value: int16(k)})
	}
	return k
}

func (k KeyboardType) String() string {
	if !k.Valid() {
		return fmt.Sprintf("KeyboardType(%d)", int16(k))
	}
	return keyboardTypeNames[k]
}

// CocktailCategory groups cocktails on the menu.
type CocktailCategory int16

const (
	CocktailCategoryCaipi CocktailCategory = iota
	CocktailCategoryJumbo
	CocktailCategoryVodka
	CocktailCategoryColadas
	CocktailCategoryRum
	CocktailCategoryTequila
	CocktailCategoryFrozenMargaritas
	CocktailCategoryGin
)

var cocktailCategoryNames = [...]string{
	"Caipi",
	"Jumbo",
	"Vodka",
	"Coladas",
	"Rum",
	"Tequila",
	"Frozen Margaritas",
	"Gin",
}

func (c CocktailCategory) Valid() bool { return c >= 0 && int(c) < len(cocktailCategoryNames) }

// Must returns c, panicking with *CorruptEnumError if c is unmapped.
func (c CocktailCategory) Must() CocktailCategory {
	if !c.Valid() {
		panic(&CorruptEnumError{Enum: "category", Value: int16(c)})
	}
	return c
}

// String returns the display name, e.g. "Frozen Margaritas".
func (c CocktailCategory) String() string {
	if !c.Valid() {
		return fmt.Sprintf("CocktailCategory(%d)", int16(c))
	}
	return cocktailCategoryNames[c]
}
