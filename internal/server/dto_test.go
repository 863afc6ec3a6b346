package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexString
		wantErr bool
	}{
		{name: "plain string", input: `"hello"`, want: "hello"},
		{name: "empty string", input: `""`, want: ""},
		{name: "integer keeps literal form", input: `123`, want: "123"},
		{name: "float keeps literal form", input: `12.5`, want: "12.5"},
		{name: "negative number", input: `-7`, want: "-7"},
		{name: "boolean rejected", input: `true`, wantErr: true},
		{name: "object rejected", input: `{"a":1}`, wantErr: true},
		{name: "array rejected", input: `["a"]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexString
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestEchoRequest_Decode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantNil bool
		want    string
		wantErr bool
	}{
		{name: "string message", body: `{"message":"hi"}`, want: "hi"},
		{name: "empty string stays set", body: `{"message":""}`, want: ""},
		{name: "number coerced to string", body: `{"message":42}`, want: "42"},
		{name: "absent field leaves nil", body: `{}`, wantNil: true},
		{name: "null leaves nil", body: `{"message":null}`, wantNil: true},
		{name: "boolean fails decoding", body: `{"message":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req EchoRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, req.Message)
				return
			}
			require.NotNil(t, req.Message)
			assert.Equal(t, tt.want, string(*req.Message))
		})
	}
}
