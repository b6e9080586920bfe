package collab

import (
	"testing"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "whole response is the object",
			in:   `{"subject": "Update", "body": "Hello"}`,
			want: `{"subject": "Update", "body": "Hello"}`,
		},
		{
			name: "leading and trailing whitespace",
			in:   "\n  {\"a\": 1}\n",
			want: `{"a": 1}`,
		},
		{
			name: "object inside prose",
			in:   "Here is the plan you asked for:\n{\"a\": 1}\nLet me know if you need changes.",
			want: `{"a": 1}`,
		},
		{
			name: "object inside markdown fence",
			in:   "```json\n{\"a\": {\"b\": 2}}\n```",
			want: `{"a": {"b": 2}}`,
		},
		{
			name: "nested objects kept whole",
			in:   `{"plan": {"entries": [{"x": 1}]}}`,
			want: `{"plan": {"entries": [{"x": 1}]}}`,
		},
		{
			name: "braces inside strings ignored",
			in:   `result: {"body": "use {placeholders} here"} done`,
			want: `{"body": "use {placeholders} here"}`,
		},
		{
			name: "escaped quotes inside strings",
			in:   `{"body": "she said \"hi\" {once}"}`,
			want: `{"body": "she said \"hi\" {once}"}`,
		},
		{
			name:    "no object at all",
			in:      "Sorry, I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "unterminated object",
			in:      `{"a": 1`,
			wantErr: true,
		},
		{
			name:    "empty response",
			in:      "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.in)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ExtractJSONObject() expected error, got %q", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("ExtractJSONObject() unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ExtractJSONObject() = %q, want %q", got, tt.want)
			}
		})
	}
}
