package cart

import (
	"github.com/idilsaglam/tada/internal/store"
)

// DecodeAction turns a wire action into a typed cart action.
//
//	{"type":"ADD_ITEM","payload":{"id":4,"name":"Mouse","price":49}}
//	{"type":"REMOVE_ITEM","payload":4}
//	{"type":"UPDATE_QUANTITY","payload":{"id":4,"quantity":3}}
//	{"type":"CLEAR_CART"}
func DecodeAction(b []byte) (Action, error) {
	env, err := store.ParseEnvelope(b)
	if err != nil {
		return nil, err
	}
	return FromEnvelope(env)
}

// FromEnvelope is DecodeAction for an already parsed envelope.
func FromEnvelope(env store.Envelope) (Action, error) {
	switch env.Type {
	case TypeAddItem:
		var p Product
		if err := env.DecodePayload(&p); err != nil {
			return nil, err
		}
		return AddItem{Product: p}, nil
	case TypeRemoveItem:
		var id int
		if err := env.DecodePayload(&id); err != nil {
			return nil, err
		}
		return RemoveItem{ID: id}, nil
	case TypeUpdateQuantity:
		var p struct {
			ID       int `json:"id"`
			Quantity int `json:"quantity"`
		}
		if err := env.DecodePayload(&p); err != nil {
			return nil, err
		}
		return UpdateQuantity{ID: p.ID, Quantity: p.Quantity}, nil
	case TypeClearCart:
		return ClearCart{}, nil
	}
	return Unknown{Type: env.Type}, nil
}
