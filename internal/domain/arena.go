package domain

// MessageArena indexes messages by id so that reply and pinned references
// resolve by lookup instead of nesting.
type MessageArena struct {
	messages []Message
	byID     map[int64]int
}

func NewMessageArena(messages []Message) *MessageArena {
	a := &MessageArena{
		messages: messages,
		byID:     make(map[int64]int, len(messages)),
	}
	for i, m := range messages {
		a.byID[m.ID] = i
	}
	return a
}

// Messages returns the messages in the order they were given.
func (a *MessageArena) Messages() []Message {
	return a.messages
}

func (a *MessageArena) Len() int {
	return len(a.messages)
}

func (a *MessageArena) Get(id int64) (Message, bool) {
	i, ok := a.byID[id]
	if !ok {
		return Message{}, false
	}
	return a.messages[i], true
}

// ReplyTo returns the message m replies to, if it is in the arena.
func (a *MessageArena) ReplyTo(m Message) (Message, bool) {
	if m.ReplyToMessageID == nil {
		return Message{}, false
	}
	return a.Get(*m.ReplyToMessageID)
}

// Pinned returns the message m pinned, if it is in the arena.
func (a *MessageArena) Pinned(m Message) (Message, bool) {
	if m.PinnedMessageID == nil {
		return Message{}, false
	}
	return a.Get(*m.PinnedMessageID)
}
