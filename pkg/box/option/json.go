package option

import (
	"encoding/json"
	"fmt"
)

const (
	tagPresent = "Present"
	tagAbsent  = "Absent"
)

type envelope[T any] struct {
	Type  string `json:"type"`
	Value *T     `json:"value,omitempty"`
}

// MarshalJSON writes {"type":"Present","value":v} or {"type":"Absent"}.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return json.Marshal(envelope[T]{Type: tagAbsent})
	}
	v := o.value
	return json.Marshal(envelope[T]{Type: tagPresent, Value: &v})
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	var e envelope[T]
	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}

	switch e.Type {
	case tagPresent:
		if e.Value == nil {
			return fmt.Errorf("option: %q variant without value", tagPresent)
		}
		*o = Present(*e.Value)
		return nil
	case tagAbsent:
		*o = Absent[T]()
		return nil
	default:
		return fmt.Errorf("option: unknown variant tag %q", e.Type)
	}
}
