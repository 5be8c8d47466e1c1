package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestForContext(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	previous := L
	L = &logger{entry: logrus.NewEntry(base)}
	defer func() { L = previous }()

	ctx, correlationID := WithCorrelationID(context.Background())
	ctx = WithRunID(ctx, "run-1")

	ForContext(ctx).WithField("client", "FDJ").Info("processando")

	out := buf.String()
	assert.Contains(t, out, `"correlation_id":"`+correlationID+`"`)
	assert.Contains(t, out, `"run_id":"run-1"`)
	assert.Contains(t, out, `"client":"FDJ"`)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}
