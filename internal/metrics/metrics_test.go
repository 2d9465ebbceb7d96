package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveStatement(t *testing.T) {
	before := testutil.CollectAndCount(StorageStatementDuration)

	ObserveStatement("metrics-test-statement", ResultOK, time.Now().Add(-5*time.Millisecond))
	ObserveStatement("metrics-test-statement", ResultDBError, time.Now())

	assert.Equal(t, before+2, testutil.CollectAndCount(StorageStatementDuration))
}

func TestHTTPRequestsTotal(t *testing.T) {
	c := HTTPRequestsTotal.WithLabelValues("/metrics-test", "GET", "200")
	c.Inc()
	c.Inc()

	assert.Equal(t, float64(2), testutil.ToFloat64(c))
}
