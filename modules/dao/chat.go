package dao

import "errors"

var ChatKeys = struct {
	Messages, Participants string
}{"messages", "participants"}

// Chat 的消息和参与者都按集合比较，顺序不影响相等性。
type Chat struct {
	BaseObject
	Messages     []ChatMessageEntity
	Participants []AccountEntity
}

type ChatEntity interface {
	Object
	AsChat() *Chat
}

var _ ChatEntity = (*Chat)(nil)

func NewChat() *Chat {
	return &Chat{BaseObject: NewBaseObject()}
}

func NewChatWithID(id string) *Chat {
	return &Chat{BaseObject: NewBaseObjectWithID(id)}
}

func (c *Chat) AsChat() *Chat { return c }

func (c *Chat) Copy() *Chat {
	out := &Chat{}
	out.copyFrom(c)
	return out
}

func (c *Chat) Clone() Object { return c.Copy() }

func (c *Chat) Update(from Object) {
	if src, ok := from.(ChatEntity); ok && !isNil(src) {
		c.copyFrom(src.AsChat())
	}
}

func (c *Chat) copyFrom(src *Chat) {
	if src == c {
		return
	}
	c.UpdateBase(&src.BaseObject)
	c.Messages = CloneObjects(src.Messages)
	c.Participants = CloneObjects(src.Participants)
}

func (c *Chat) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(ChatEntity)
	if !ok || isNil(r) {
		return true
	}
	return c.Diff(r.AsChat())
}

func (c *Chat) Diff(rhs *Chat) bool {
	if c == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return c.DiffBase(&rhs.BaseObject) ||
		DiffObjectSet(c.Messages, rhs.Messages) ||
		DiffObjectSet(c.Participants, rhs.Participants)
}

func (c *Chat) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	c.TranslateBase(data, reg)
	reg.ChatMessage.ReadArray(data, ChatKeys.Messages, reg, &c.Messages)
	reg.Account.ReadArray(data, ChatKeys.Participants, reg, &c.Participants)
}

func (c *Chat) AsDictionary() Dictionary {
	return Merge(c.BaseDictionary(), Dictionary{
		ChatKeys.Messages:     ObjectsDictionary(c.Messages),
		ChatKeys.Participants: ObjectsDictionary(c.Participants),
	})
}

func (c *Chat) EncodeFields(enc *Encoder) error {
	if err := c.EncodeBase(enc); err != nil {
		return err
	}
	return errors.Join(
		PutObjects(enc, ChatKeys.Messages, c.Messages),
		PutObjects(enc, ChatKeys.Participants, c.Participants),
	)
}

func (c *Chat) DecodeFields(dec *Decoder) error {
	if err := c.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	return errors.Join(
		reg.ChatMessage.DecodeArrayField(dec, ChatKeys.Messages, &c.Messages),
		reg.Account.DecodeArrayField(dec, ChatKeys.Participants, &c.Participants),
	)
}

var ChatMessageKeys = struct {
	Body, Chat, Media string
}{"body", "chat", "media"}

// ChatMessage.Chat 是反向引用：只序列化 id，拷贝时共享，diff 只比 id。
type ChatMessage struct {
	BaseObject
	Body  string
	Chat  ChatEntity
	Media MediaEntity
}

type ChatMessageEntity interface {
	Object
	AsChatMessage() *ChatMessage
}

var _ ChatMessageEntity = (*ChatMessage)(nil)

func NewChatMessage() *ChatMessage {
	return &ChatMessage{BaseObject: NewBaseObject()}
}

func NewChatMessageWithID(id string) *ChatMessage {
	return &ChatMessage{BaseObject: NewBaseObjectWithID(id)}
}

func (m *ChatMessage) AsChatMessage() *ChatMessage { return m }

func (m *ChatMessage) Copy() *ChatMessage {
	out := &ChatMessage{}
	out.copyFrom(m)
	return out
}

func (m *ChatMessage) Clone() Object { return m.Copy() }

func (m *ChatMessage) Update(from Object) {
	if src, ok := from.(ChatMessageEntity); ok && !isNil(src) {
		m.copyFrom(src.AsChatMessage())
	}
}

func (m *ChatMessage) copyFrom(src *ChatMessage) {
	if src == m {
		return
	}
	m.UpdateBase(&src.BaseObject)
	m.Body = src.Body
	m.Chat = src.Chat
	m.Media = CloneObject(src.Media)
}

func (m *ChatMessage) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(ChatMessageEntity)
	if !ok || isNil(r) {
		return true
	}
	return m.Diff(r.AsChatMessage())
}

func (m *ChatMessage) Diff(rhs *ChatMessage) bool {
	if m == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return m.DiffBase(&rhs.BaseObject) ||
		m.Body != rhs.Body ||
		!SameRef(m.Chat, rhs.Chat) ||
		DiffObject(m.Media, rhs.Media)
}

func (m *ChatMessage) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	m.TranslateBase(data, reg)
	Read(data).String(ChatMessageKeys.Body, &m.Body)
	reg.Chat.ReadRef(data, ChatMessageKeys.Chat, &m.Chat)
	reg.Media.Read(data, ChatMessageKeys.Media, reg, &m.Media)
}

func (m *ChatMessage) AsDictionary() Dictionary {
	return Merge(m.BaseDictionary(), Dictionary{
		ChatMessageKeys.Body:  m.Body,
		ChatMessageKeys.Chat:  ObjectID(m.Chat),
		ChatMessageKeys.Media: ObjectDictionary(m.Media),
	})
}

func (m *ChatMessage) EncodeFields(enc *Encoder) error {
	if err := m.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(ChatMessageKeys.Body, m.Body)
	enc.Put(ChatMessageKeys.Chat, ObjectID(m.Chat))
	return PutObject(enc, ChatMessageKeys.Media, m.Media)
}

func (m *ChatMessage) DecodeFields(dec *Decoder) error {
	if err := m.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	return errors.Join(
		dec.String(ChatMessageKeys.Body, &m.Body),
		reg.Chat.DecodeRef(dec, ChatMessageKeys.Chat, &m.Chat),
		reg.Media.DecodeField(dec, ChatMessageKeys.Media, &m.Media),
	)
}
