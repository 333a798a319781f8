package form

import "github.com/idilsaglam/tada/internal/store"

// DecodeAction reads the flat wire form used by the form actions:
//
//	{"type":"UPDATE_FIELD","field":"email","value":"a@b.com"}
//	{"type":"SET_ERROR","field":"email","message":"Invalid email format"}
//	{"type":"RESET_FORM"}
func DecodeAction(b []byte) (Action, error) {
	env, err := store.ParseEnvelope(b)
	if err != nil {
		return nil, err
	}
	return FromEnvelope(env)
}

func FromEnvelope(env store.Envelope) (Action, error) {
	switch env.Type {
	case TypeUpdateField:
		f, err := ParseField(env.Field)
		if err != nil {
			return nil, err
		}
		return UpdateField{Field: f, Value: env.Value}, nil
	case TypeSetError:
		f, err := ParseField(env.Field)
		if err != nil {
			return nil, err
		}
		return SetError{Field: f, Message: env.Message}, nil
	case TypeResetForm:
		return ResetForm{}, nil
	}
	return Unknown{Type: env.Type}, nil
}
