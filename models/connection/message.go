package connection

type NoPayload bool

// Message is the envelope of every frame in both directions.
type Message[T any] struct {
	Code    uint8    `json:"code"`
	Payload T        `json:"payload,omitempty"`
	Error   *RespErr `json:"error,omitempty"`
}

func NewMessage[T any](code uint8) Message[T] {
	return Message[T]{Code: code}
}

func NewPayloadMessage[T any](code uint8, payload T) Message[T] {
	return Message[T]{Code: code, Payload: payload}
}

func NewErrorMessage(code uint8, errorDetails, message string) Message[NoPayload] {
	msg := NewMessage[NoPayload](code)
	msg.AddError(errorDetails, message)
	return msg
}

func (m *Message[T]) AddError(errorDetails, message string) {
	m.Error = NewRespErr(errorDetails, message)
}
