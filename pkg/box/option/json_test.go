package option

import (
	"encoding/json"
	"testing"
)

func TestMarshal_Present(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(Present(5))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"type":"Present","value":5}` {
		t.Fatalf("unexpected encoding: %s", data)
	}
}

func TestMarshal_Absent(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(Absent[int]())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"type":"Absent"}` {
		t.Fatalf("expected no value field, got: %s", data)
	}
}

func TestUnmarshal_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, src := range []Option[string]{Present("hello"), Absent[string]()} {
		data, err := json.Marshal(src)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		var dst Option[string]
		if err := json.Unmarshal(data, &dst); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !Equal(src, dst) {
			t.Fatalf("round trip changed variant or value: %s", data)
		}
	}
}

func TestUnmarshal_UnknownTag(t *testing.T) {
	t.Parallel()
	var o Option[int]
	if err := json.Unmarshal([]byte(`{"type":"Maybe","value":1}`), &o); err == nil {
		t.Fatalf("expected unknown variant tag to fail")
	}
}

func TestUnmarshal_PresentWithoutValue(t *testing.T) {
	t.Parallel()
	var o Option[int]
	if err := json.Unmarshal([]byte(`{"type":"Present"}`), &o); err == nil {
		t.Fatalf("expected present without value to fail")
	}
}
