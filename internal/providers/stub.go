package providers

import "context"

// Canned replies emitted by the simulated providers. These match the
// behavior callers observe today: generation is a behavioral placeholder
// that ignores message content entirely.
const (
	openAIStubReply    = "This is a response from the simulated OpenAI model."
	anthropicStubReply = "This is a response from the simulated Claude model."
)

// stub is the no-network Provider implementation. It returns a fixed
// reply per kind and never fails.
type stub struct {
	kind  Kind
	reply string
}

func newStub(kind Kind) *stub {
	reply := openAIStubReply
	if kind == KindAnthropic {
		reply = anthropicStubReply
	}
	return &stub{kind: kind, reply: reply}
}

func (s *stub) Kind() Kind {
	return s.kind
}

func (s *stub) Respond(_ context.Context, _ Config, _ []Message) (*Reply, error) {
	return &Reply{
		Message: Message{Role: RoleAssistant, Content: s.reply},
	}, nil
}
