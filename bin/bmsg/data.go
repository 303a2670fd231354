package bmsg

type (
	TextMessage struct {
		MessageIndex uint32   `json:"message_index"`
		HelpIndex    uint32   `json:"help_index"`
		Vars         []uint32 `json:"vars,omitempty"`
	}

	// MessageStore is clientmessages-en.bin: localized text addressed by message key.
	MessageStore struct {
		Messages   []string
		Variables  []string
		MessageIDs map[string]*TextMessage
	}
)

func NewMessageStore() *MessageStore {
	return &MessageStore{
		MessageIDs: map[string]*TextMessage{},
	}
}

// Message returns the localized text for key.
func (s *MessageStore) Message(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	textMessage, ok := s.MessageIDs[key]
	if !ok || int(textMessage.MessageIndex) >= len(s.Messages) {
		return "", false
	}
	return s.Messages[textMessage.MessageIndex], true
}

// Help returns the help text attached to key, if any.
func (s *MessageStore) Help(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	textMessage, ok := s.MessageIDs[key]
	if !ok || int(textMessage.HelpIndex) >= len(s.Messages) {
		return "", false
	}
	return s.Messages[textMessage.HelpIndex], true
}

// Localize swaps s for its localized text when s is a message key, otherwise s is kept as is.
func (s *MessageStore) Localize(text string) string {
	if message, ok := s.Message(text); ok {
		return message
	}
	return text
}

func (s *MessageStore) Len() int {
	return len(s.MessageIDs)
}
