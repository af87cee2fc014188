package telegram

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantUser string
		wantChat string
		wantText string
	}{
		{
			name:     "numeric ids",
			body:     `{"update_id":7,"message":{"message_id":1,"chat":{"id":555},"from":{"id":42},"text":"hello"}}`,
			wantUser: "42",
			wantChat: "555",
			wantText: "hello",
		},
		{
			name:     "string ids",
			body:     `{"update_id":7,"message":{"message_id":1,"chat":{"id":"555"},"from":{"id":"42"},"text":"hello"}}`,
			wantUser: "42",
			wantChat: "555",
			wantText: "hello",
		},
		{
			name:     "full int64 range survives",
			body:     `{"update_id":7,"message":{"message_id":1,"chat":{"id":9007199254740993},"from":{"id":9223372036854775807},"text":"hi"}}`,
			wantUser: "9223372036854775807",
			wantChat: "9007199254740993",
			wantText: "hi",
		},
		{
			name:     "text omitted",
			body:     `{"update_id":7,"message":{"message_id":2,"chat":{"id":555},"from":{"id":42}}}`,
			wantUser: "42",
			wantChat: "555",
			wantText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u Update
			require.NoError(t, json.Unmarshal([]byte(tt.body), &u))
			assert.Equal(t, tt.wantUser, u.Message.From.ID.String())
			assert.Equal(t, tt.wantChat, u.Message.Chat.ID.String())
			assert.Equal(t, tt.wantText, u.Message.Text)
		})
	}
}

func TestIDMarshalRoundTrip(t *testing.T) {
	numeric, err := json.Marshal(ID("555"))
	require.NoError(t, err)
	assert.Equal(t, "555", string(numeric))

	named, err := json.Marshal(ID("@channel"))
	require.NoError(t, err)
	assert.Equal(t, `"@channel"`, string(named))
}

func TestIDRejectsObjects(t *testing.T) {
	var id ID
	err := json.Unmarshal([]byte(`{"oops":1}`), &id)
	require.Error(t, err)
}

func TestUpdateValidate(t *testing.T) {
	valid := Update{
		UpdateID: 7,
		Message: Message{
			MessageID: 1,
			Chat:      Chat{ID: "555"},
			From:      User{ID: "42"},
		},
	}
	require.NoError(t, valid.Validate())

	missing := Update{UpdateID: 7}
	err := missing.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Issues, 3)
}
