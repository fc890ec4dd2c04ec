package mock

import "fmt"

// Kind selects the record type Generate produces.
type Kind int

const (
	KindUser Kind = iota
	KindChat
	KindChatUser
	KindEvent
	KindEventUser
	KindUserRoll
	KindMessage
)

var kindNames = [...]string{"user", "chat", "chat_user", "event", "event_user", "user_roll", "message"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Generate dispatches to the typed method for kind. The record is returned by
// value; false means a required slot is missing or kind is unknown.
func (g *Generator) Generate(kind Kind, c Context) (any, bool) {
	var (
		rec any
		ok  = true
	)
	switch kind {
	case KindUser:
		rec = g.User()
	case KindChat:
		rec = g.Chat()
	case KindChatUser:
		rec, ok = g.ChatUser(c)
	case KindEvent:
		rec, ok = g.Event(c)
	case KindEventUser:
		rec, ok = g.EventUser(c)
	case KindUserRoll:
		rec, ok = g.UserRoll(c)
	case KindMessage:
		rec, ok = g.Message(c)
	default:
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return rec, true
}
