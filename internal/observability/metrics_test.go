package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordSignup(t *testing.T) {
	before := testutil.ToFloat64(signupCounter.WithLabelValues("Chess Club"))
	RecordSignup("Chess Club")
	require.Equal(t, before+1, testutil.ToFloat64(signupCounter.WithLabelValues("Chess Club")))
}

func TestRecordSignupRejected(t *testing.T) {
	before := testutil.ToFloat64(signupRejectedCounter.WithLabelValues("activity_full"))
	RecordSignupRejected("activity_full")
	require.Equal(t, before+1, testutil.ToFloat64(signupRejectedCounter.WithLabelValues("activity_full")))
}

func TestSetParticipants(t *testing.T) {
	SetParticipants("Chess Club", 7)
	require.Equal(t, 7.0, testutil.ToFloat64(participantsGauge.WithLabelValues("Chess Club")))
}
