package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordOrderOperation(t *testing.T) {
	before := testutil.ToFloat64(orderOperations.WithLabelValues("create", "error"))

	RecordOrderOperation("create", false)

	assert.Equal(t, before+1, testutil.ToFloat64(orderOperations.WithLabelValues("create", "error")))
}

func TestObserveTask(t *testing.T) {
	ok := testutil.ToFloat64(backgroundTasks.WithLabelValues("notificar-orden", "success"))
	fail := testutil.ToFloat64(backgroundTasks.WithLabelValues("notificar-orden", "error"))

	ObserveTask("notificar-orden", nil, 10*time.Millisecond)
	ObserveTask("notificar-orden", errors.New("smtp"), 10*time.Millisecond)

	assert.Equal(t, ok+1, testutil.ToFloat64(backgroundTasks.WithLabelValues("notificar-orden", "success")))
	assert.Equal(t, fail+1, testutil.ToFloat64(backgroundTasks.WithLabelValues("notificar-orden", "error")))
}

func TestObserveHTTP(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "/auth/agregarorden", "201"))

	ObserveHTTP("POST", "/auth/agregarorden", 201, 20*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "/auth/agregarorden", "201")))
}
