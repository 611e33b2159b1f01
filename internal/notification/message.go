package notification

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// MessageContext поля, подставляемые в текст уведомления
type MessageContext struct {
	CustomerName string
	PetLabel     string
	ServiceTitle string
	DateBR       string // DD/MM/YYYY
	Time         string // HH:MM
	PrizeLabel   string
}

// BuildMessage формирует текст уведомления о смене статуса.
// Без ввода-вывода; отправку выполняет оператор.
func BuildMessage(status domain.BookingStatus, ctx MessageContext) string {
	greeting := fmt.Sprintf("Olá, %s!", orDefault(ctx.CustomerName, "cliente"))
	pet := orDefault(ctx.PetLabel, "seu pet")
	service := orDefault(ctx.ServiceTitle, "atendimento")
	when := strings.TrimSpace(ctx.DateBR + " às " + ctx.Time)

	var body string
	switch status {
	case domain.StatusConfirmed:
		body = fmt.Sprintf("Seu agendamento está CONFIRMADO ✅\nPet: %s\nServiço: %s\nData: %s", pet, service, when)
	case domain.StatusReceived:
		body = fmt.Sprintf("RECEBEMOS %s 🐾\nJá estamos preparando tudo para o %s.", pet, service)
	case domain.StatusInService:
		body = fmt.Sprintf("%s está EM SERVIÇO agora ✂️\nServiço: %s", pet, service)
	case domain.StatusCompleted:
		body = fmt.Sprintf("O %s de %s foi CONCLUÍDO 🎉\nJá pode vir buscar!", service, pet)
	case domain.StatusDelivered:
		body = fmt.Sprintf("%s foi ENTREGUE. Obrigado pela confiança! 💚", pet)
	case domain.StatusCancelled:
		body = fmt.Sprintf("Seu agendamento de %s para %s foi CANCELADO.\nSe quiser, podemos remarcar.", service, when)
	default:
		body = fmt.Sprintf("Status do agendamento de %s: %s\nData: %s", pet, strings.ToUpper(string(status)), when)
	}

	if ctx.PrizeLabel != "" && status != domain.StatusCancelled {
		body += fmt.Sprintf("\nMimo: %s 🎁", ctx.PrizeLabel)
	}

	return greeting + "\n" + body
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
