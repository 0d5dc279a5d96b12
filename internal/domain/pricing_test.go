package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPricingScanObjectForm(t *testing.T) {
	var p Pricing
	err := p.Scan([]byte(`{"basic_chat_cents":500,"premium_chat_cents":1500,"video_call_cents":3000}`))
	require.NoError(t, err)
	require.Equal(t, Pricing{BasicChatCents: 500, PremiumChatCents: 1500, VideoCallCents: 3000}, p)
}

func TestPricingScanLegacyDoubleEncoded(t *testing.T) {
	var p Pricing
	err := p.Scan([]byte(`"{\"basic_chat_cents\":500,\"premium_chat_cents\":1500,\"video_call_cents\":3000}"`))
	require.NoError(t, err)
	require.Equal(t, int64(1500), p.PremiumChatCents)
}

func TestPricingScanNullAndEmpty(t *testing.T) {
	var p Pricing
	require.NoError(t, p.Scan(nil))
	require.Equal(t, Pricing{}, p)
	require.NoError(t, p.Scan([]byte("")))
	require.Equal(t, Pricing{}, p)
}

func TestPricingScanRejectsGarbage(t *testing.T) {
	var p Pricing
	require.Error(t, p.Scan([]byte("not json")))
	require.Error(t, p.Scan(42))
}

func TestPricingValueCanonicalForm(t *testing.T) {
	v, err := Pricing{BasicChatCents: 100}.Value()
	require.NoError(t, err)
	require.JSONEq(t, `{"basic_chat_cents":100,"premium_chat_cents":0,"video_call_cents":0}`, string(v.([]byte)))
}
