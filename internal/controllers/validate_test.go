package controllers

import "testing"

func TestValidatePostFields(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		params  []string
	}{
		{"both valid", "Hello", "World!", nil},
		{"short title", "Hi", "Some content", []string{"title"}},
		{"whitespace padded", "   abc   ", "Some content", []string{"title"}},
		{"both short", "", "four", []string{"title", "content"}},
		{"multibyte counts runes", "ñandú", "こんにちは", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validatePostFields(tt.title, tt.content)
			if len(got) != len(tt.params) {
				t.Fatalf("expected %d errors, got %+v", len(tt.params), got)
			}
			for i, fe := range got {
				if fe.Param != tt.params[i] || fe.Location != "body" || fe.Msg != "Invalid value" {
					t.Errorf("unexpected field error %d: %+v", i, fe)
				}
			}
		})
	}
}
