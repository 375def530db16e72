package storage

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"networkbook/internal/nb"
	"networkbook/internal/person"
	"networkbook/internal/testutil"
)

func TestJSONCodec_RoundTrip(t *testing.T) {
	persons := testutil.TypicalPersons(t)

	var buf bytes.Buffer
	if err := (JSONCodec{}).Encode(&buf, persons); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), `{`) || !strings.Contains(buf.String(), `"persons"`) {
		t.Errorf("Encode() = %s, want a {\"persons\": [...]} document", buf.String())
	}

	got, err := (JSONCodec{}).Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	assertSamePersons(t, got, persons)
}

func TestJSONCodec_EncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONCodec{}).Encode(&buf, nil); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"persons": []`) {
		t.Errorf("Encode(nil) = %s, want an empty persons array", buf.String())
	}
}

func TestJSONCodec_Decode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "duplicate persons",
			doc:     `{"persons": [{"name": "Alex", "phone": "123"}, {"name": "Alex", "phone": "456"}]}`,
			wantErr: nb.ErrDuplicateRecord,
		},
		{
			name:    "missing name",
			doc:     `{"persons": [{"phone": "123"}]}`,
			wantErr: person.ErrMissingField,
		},
		{
			name:    "invalid phone",
			doc:     `{"persons": [{"name": "Alex", "phone": "12"}]}`,
			wantErr: person.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (JSONCodec{}).Decode(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("malformed JSON", func(t *testing.T) {
		if _, err := (JSONCodec{}).Decode(strings.NewReader(`{"persons": [`)); err == nil {
			t.Error("Decode() expected error for malformed JSON")
		}
	})
}

func TestJSONCodec_NamesDifferingInCaseAreDistinct(t *testing.T) {
	doc := `{"persons": [{"name": "Alex", "phone": "123"}, {"name": "alex", "phone": "456"}]}`
	got, err := (JSONCodec{}).Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Decode() returned %d persons, want 2", len(got))
	}
}

func assertSamePersons(t *testing.T, got, want []person.Person) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d persons, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("person %d = %v, want %v", i, got[i], want[i])
		}
	}
}
