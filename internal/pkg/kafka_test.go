package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuditProducerDisabled(t *testing.T) {
	p := NewAuditProducer(KafkaConfig{})
	assert.Nil(t, p)

	// 关闭状态下发事件和Close都应安全无害
	p.Emit(EventSignedUp, "jane@x.com", 1)
	assert.NoError(t, p.Close())
}
