package hydrator

// Relation names an optional (nullable) reference resolved during hydration.
type Relation string

const (
	MessageSender          Relation = "message.user"
	MessageNewChatMembers  Relation = "message.new_chat_members"
	MessageLeftChatMember  Relation = "message.left_chat_member"
	MessageMigrateToChat   Relation = "message.migrate_to_chat"
	MessageMigrateFromChat Relation = "message.migrate_from_chat"
	CocktailIngredients    Relation = "cocktail.ingredients"
)

// Miss is what happens to a row whose optional relation cannot be resolved.
type Miss int

const (
	// DropOnMiss leaves the field absent and keeps the row.
	DropOnMiss Miss = iota
	// AbortOnMiss fails the hydration with *MissingRelationError.
	AbortOnMiss
)

func (m Miss) String() string {
	if m == AbortOnMiss {
		return "abort"
	}
	return "drop"
}

// Policy maps each optional relation to its miss behavior. Relations not in
// the table drop.
type Policy map[Relation]Miss

// DefaultPolicy drops every unresolved optional relation.
func DefaultPolicy() Policy {
	return Policy{
		MessageSender:          DropOnMiss,
		MessageNewChatMembers:  DropOnMiss,
		MessageLeftChatMember:  DropOnMiss,
		MessageMigrateToChat:   DropOnMiss,
		MessageMigrateFromChat: DropOnMiss,
		CocktailIngredients:    DropOnMiss,
	}
}

func (p Policy) For(r Relation) Miss {
	if m, ok := p[r]; ok {
		return m
	}
	return DropOnMiss
}
