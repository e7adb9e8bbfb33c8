package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"new", StatusNew, false},
		{"interview", StatusInterview, false},
		{"hired", StatusHired, false},
		{"rejected", StatusRejected, false},
		{"", "", true},
		{"New", "", true},
		{"offer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStatus) {
					t.Fatalf("ParseStatus(%q) error = %v, want ErrUnknownStatus", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStatus_Index(t *testing.T) {
	for i, st := range Statuses {
		if st.Index() != i {
			t.Errorf("%s.Index() = %d, want %d", st, st.Index(), i)
		}
	}
	if Status("offer").Index() != -1 {
		t.Error("unknown status should have index -1")
	}
}

func TestCandidate_JSONShape(t *testing.T) {
	c := Candidate{ID: 1, Email: "candidate1@example.com", Status: StatusNew, Position: 0}

	data, err := json.Marshal(CandidateUpdate{Candidate: c})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"candidate":{"id":1,"email":"candidate1@example.com","status":"new","position":0}}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}
