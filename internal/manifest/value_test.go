package manifest

import "testing"

func TestValueString(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`false`, "False"},
		{`true`, "True"},
		{`null`, "None"},
		{`"plain text"`, "plain text"},
		{`""`, ""},
		{`4`, "4"},
		{`-12`, "-12"},
		{`1.5`, "1.5"},
		{`2.0`, "2.0"},
		{`1e3`, "1000.0"},
		{`1e20`, "1e+20"},
		{`["a", "it's"]`, `['a', "it's"]`},
		{`["both ' and \""]`, `['both \' and "']`},
		{`["a\nb", "tab\there"]`, `['a\nb', 'tab\there']`},
		{`["back\\slash"]`, `['back\\slash']`},
		{`["bell\u0007"]`, `['bell\x07']`},
		{`{"k": "it's"}`, `{'k': "it's"}`},
		{`[]`, "[]"},
		{`{"b": 1, "a": [true, null]}`, "{'b': 1, 'a': [True, None]}"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NewValue(tt.raw).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueZero(t *testing.T) {
	var v Value
	if !v.IsZero() {
		t.Error("zero Value should report IsZero")
	}
	if v.String() != "" {
		t.Errorf("String() = %q, want empty", v.String())
	}
	if NewValue("null").IsZero() {
		t.Error("explicit null should not be zero")
	}
}

func TestValueMarshalJSON(t *testing.T) {
	out, err := NewValue(`[1,2]`).MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	if string(out) != "[1,2]" {
		t.Errorf("MarshalJSON = %s, want [1,2]", out)
	}
}
