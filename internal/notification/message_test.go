package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

var sampleContext = MessageContext{
	CustomerName: "Ana",
	PetLabel:     "Thor (Poodle)",
	ServiceTitle: "Banho e tosa",
	DateBR:       "02/06/2025",
	Time:         "10:00",
	PrizeLabel:   "Lacinho",
}

func TestBuildMessage_Confirmed(t *testing.T) {
	msg := BuildMessage(domain.StatusConfirmed, sampleContext)

	assert.Contains(t, msg, "CONFIRMADO")
	assert.Contains(t, msg, "Ana")
	assert.Contains(t, msg, "Thor (Poodle)")
	assert.Contains(t, msg, "02/06/2025 às 10:00")
	assert.Contains(t, msg, "Lacinho")
}

func TestBuildMessage_EveryStatusHasOwnBranch(t *testing.T) {
	markers := map[domain.BookingStatus]string{
		domain.StatusConfirmed: "CONFIRMADO",
		domain.StatusReceived:  "RECEBEMOS",
		domain.StatusInService: "EM SERVIÇO",
		domain.StatusCompleted: "CONCLUÍDO",
		domain.StatusDelivered: "ENTREGUE",
		domain.StatusCancelled: "CANCELADO",
	}

	for status, marker := range markers {
		assert.Contains(t, BuildMessage(status, sampleContext), marker, status)
	}
}

func TestBuildMessage_UnknownStatusEchoesUppercase(t *testing.T) {
	msg := BuildMessage(domain.BookingStatus("aguardando pagamento"), sampleContext)
	assert.Contains(t, msg, "AGUARDANDO PAGAMENTO")
}

func TestBuildMessage_Deterministic(t *testing.T) {
	assert.Equal(t,
		BuildMessage(domain.StatusReceived, sampleContext),
		BuildMessage(domain.StatusReceived, sampleContext),
	)
}

func TestBuildMessage_EmptyContextUsesFallbacks(t *testing.T) {
	msg := BuildMessage(domain.StatusConfirmed, MessageContext{})
	assert.Contains(t, msg, "cliente")
	assert.Contains(t, msg, "seu pet")
	assert.NotContains(t, msg, "Mimo")
}
