package mq

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	payload := map[string]any{"id": 1, "name": "flight"}

	msg, err := NewMessage(EventPowerCreated, payload)
	require.NoError(t, err)

	_, err = uuid.Parse(msg.ID)
	assert.NoError(t, err, "message id must be a uuid")
	assert.Equal(t, EventPowerCreated, msg.Type)
	assert.JSONEq(t, `{"id":1,"name":"flight"}`, string(msg.Payload))
	assert.False(t, msg.Timestamp.IsZero())

	other, err := NewMessage(EventPowerCreated, payload)
	require.NoError(t, err)
	assert.NotEqual(t, msg.ID, other.ID)
}

func TestNewMessage_Unmarshalable(t *testing.T) {
	_, err := NewMessage(EventHeroCreated, make(chan int))
	assert.Error(t, err)
}

func TestDecodeMessage(t *testing.T) {
	msg, err := NewMessage(EventHeroPowerCreated, map[string]string{"strength": "Strong"})
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	decoded, err := DecodeMessage(body)
	require.NoError(t, err)
	assert.Equal(t, msg.ID, decoded.ID)
	assert.Equal(t, EventHeroPowerCreated, decoded.Type)
	assert.JSONEq(t, string(msg.Payload), string(decoded.Payload))

	_, err = DecodeMessage([]byte("not json"))
	assert.Error(t, err)

	_, err = DecodeMessage([]byte(`{"id":"x"}`))
	assert.Error(t, err)
}

func TestWithChannel_NoChannel(t *testing.T) {
	c := &Connection{}
	err := c.WithChannel(nil)
	assert.ErrorIs(t, err, ErrNoChannel)
}
