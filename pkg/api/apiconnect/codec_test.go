package apiconnect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/memberportal/pkg/api"
)

func TestCodec_Name(t *testing.T) {
	assert.Equal(t, "json", Codec{}.Name())
}

func TestCodec_RoundTrip(t *testing.T) {
	in := &api.VerifyOTPRequest{FlowID: "flow-1", OTP: "123456"}

	data, err := Codec{}.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"flowId":"flow-1","otp":"123456"}`, string(data))

	var out api.VerifyOTPRequest
	require.NoError(t, Codec{}.Unmarshal(data, &out))
	assert.Equal(t, *in, out)
}

func TestCodec_UnmarshalEmptyBody(t *testing.T) {
	var out api.GetProfileRequest
	assert.NoError(t, Codec{}.Unmarshal(nil, &out))
}

func TestCodec_UnmarshalInvalid(t *testing.T) {
	var out api.SelectTabRequest
	assert.Error(t, Codec{}.Unmarshal([]byte(`{"tab":`), &out))
}
