package usecase

import (
	"fmt"
	"net/url"

	"parceiros_internet/internal/domain/entities"
)

// WhatsApp handoff is the site's only outbound integration: a wa.me URL with
// a pre-filled message, opened by the client, fire-and-forget.

func buildWhatsAppLink(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

func contractHandoffMessage(plan entities.Plan, name, city, neighborhood string) string {
	if name == "" {
		name = "(a confirmar)"
	}
	if neighborhood == "" {
		neighborhood = "(a confirmar)"
	}
	return fmt.Sprintf(
		"Olá! Gostaria de contratar o plano %s de %d Mega.\n\n📍 Meus dados:\nNome: %s\nCidade: %s\nBairro: %s\n\nPor favor, confirmem endereço e horário para instalação!",
		plan.Name, plan.Speed, name, city, neighborhood,
	)
}

func protocolFollowUpMessage(protocol string) string {
	return fmt.Sprintf("Olá! Acabei de fazer um pedido de internet. Meu protocolo é %s. Podem confirmar?", protocol)
}

func quizResultMessage(plan entities.Plan) string {
	return fmt.Sprintf("Olá! Fiz o quiz e o plano recomendado foi o %s de %d Mega. Gostaria de contratar!", plan.Name, plan.Speed)
}
