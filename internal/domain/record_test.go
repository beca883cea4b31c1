package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  bool
	}{
		{"valid groupId", FieldGroupID, true},
		{"valid displayName", FieldDisplayName, true},
		{"valid contactAddress", FieldContactAddress, true},
		{"body is not sortable", Field("bodyText"), false},
		{"invalid empty", Field(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.IsValid())
		})
	}
}

func TestParseField(t *testing.T) {
	tests := []struct {
		input   string
		want    Field
		wantErr bool
	}{
		{"groupId", FieldGroupID, false},
		{"postId", FieldGroupID, false},
		{"group", FieldGroupID, false},
		{"name", FieldDisplayName, false},
		{"displayName", FieldDisplayName, false},
		{"email", FieldContactAddress, false},
		{"contactAddress", FieldContactAddress, false},
		{"body", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseField(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid sort field")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldWireNameRoundTrip(t *testing.T) {
	for _, f := range SortableFields {
		assert.Equal(t, f, FieldFromWire(f.WireName()))
	}
	assert.Equal(t, Field("bogus"), FieldFromWire("bogus"))
}

func TestRecordDecodesSourceJSON(t *testing.T) {
	payload := `{"postId":1,"id":3,"name":"odio adipisci","email":"Nikita@garfield.biz","body":"quia molestiae"}`

	var r Record
	require.NoError(t, json.Unmarshal([]byte(payload), &r))

	assert.Equal(t, Record{
		GroupID:        1,
		ID:             3,
		DisplayName:    "odio adipisci",
		ContactAddress: "Nikita@garfield.biz",
		BodyText:       "quia molestiae",
	}, r)
	assert.Equal(t, "#3 (group 1) odio adipisci <Nikita@garfield.biz>", r.String())
}

func TestProfileHelpers(t *testing.T) {
	p := Profile{Username: "Bret", Website: "hildegard.org"}
	assert.Equal(t, "@Bret", p.Handle())
	assert.Equal(t, "http://hildegard.org", p.WebsiteURL())

	empty := Profile{}
	assert.Equal(t, "", empty.Handle())
	assert.Equal(t, "", empty.WebsiteURL())
}
