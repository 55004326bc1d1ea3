package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema_Validate(t *testing.T) {
	schema := NewSchema(
		String("deviceId", Required()),
		NewField("value", []Kind{KindBoolean, KindNumber, KindString}, Required()),
		Number("brightness"),
		String("mode", Enum("on", "off")),
	)

	tests := []struct {
		name    string
		args    map[string]any
		wantErr string
	}{
		{"Valid", map[string]any{"deviceId": "d1", "value": true}, ""},
		{"Union number", map[string]any{"deviceId": "d1", "value": 0.5}, ""},
		{"Union string", map[string]any{"deviceId": "d1", "value": "heat"}, ""},
		{"Extra keys ignored", map[string]any{"deviceId": "d1", "value": 1, "other": []int{1}}, ""},
		{"Missing required", map[string]any{"value": true}, `missing required field "deviceId"`},
		{"Null required", map[string]any{"deviceId": nil, "value": true}, `missing required field "deviceId"`},
		{"Wrong kind", map[string]any{"deviceId": 42.0, "value": true}, `field "deviceId" must be string`},
		{"Union mismatch", map[string]any{"deviceId": "d1", "value": []any{}}, `must be boolean or number or string`},
		{"Optional wrong kind", map[string]any{"deviceId": "d1", "value": true, "brightness": "max"}, `field "brightness" must be number`},
		{"Enum", map[string]any{"deviceId": "d1", "value": true, "mode": "dim"}, `must be one of on, off`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.Validate(tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchema_JSONSchema(t *testing.T) {
	schema := NewSchema(
		String("zoneName", Description("Zone display name")),
		NewField("value", []Kind{KindBoolean, KindNumber}, Required()),
	)

	got := schema.JSONSchema()
	assert.Equal(t, "object", got["type"])
	assert.Equal(t, []string{"value"}, got["required"])

	props := got["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string", "description": "Zone display name"}, props["zoneName"])
	assert.Equal(t, map[string]any{"type": []string{"boolean", "number"}}, props["value"])

	_, hasRequired := NewSchema().JSONSchema()["required"]
	assert.False(t, hasRequired)
}

func TestKindInteger(t *testing.T) {
	assert.True(t, kindOf(KindInteger, 3.0))
	assert.True(t, kindOf(KindInteger, 7))
	assert.False(t, kindOf(KindInteger, 3.5))
	assert.False(t, kindOf(KindInteger, "3"))
}
