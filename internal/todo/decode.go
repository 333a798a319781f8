package todo

import "github.com/idilsaglam/tada/internal/store"

// DecodeAction turns a wire action into a typed todo action, stamping new
// todos with DefaultBuilder.
func DecodeAction(b []byte) (Action, error) {
	env, err := store.ParseEnvelope(b)
	if err != nil {
		return nil, err
	}
	return DefaultBuilder.FromEnvelope(env)
}

// FromEnvelope decodes env, stamping ADD_TODO with b. Text is kept as sent.
func (b Builder) FromEnvelope(env store.Envelope) (Action, error) {
	switch env.Type {
	case TypeAddTodo:
		var text string
		if err := env.DecodePayload(&text); err != nil {
			return nil, err
		}
		return b.Add(text), nil
	case TypeToggleTodo:
		var id string
		if err := env.DecodePayload(&id); err != nil {
			return nil, err
		}
		return ToggleTodo{ID: id}, nil
	case TypeDeleteTodo:
		var id string
		if err := env.DecodePayload(&id); err != nil {
			return nil, err
		}
		return DeleteTodo{ID: id}, nil
	case TypeEditTodo:
		var p struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		}
		if err := env.DecodePayload(&p); err != nil {
			return nil, err
		}
		return EditTodo{ID: p.ID, Text: p.Text}, nil
	}
	return Unknown{Type: env.Type}, nil
}
