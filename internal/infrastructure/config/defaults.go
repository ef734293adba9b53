package config

import (
	"parceiros_internet/internal/domain/entities"
	"parceiros_internet/internal/domain/quiz"
)

// Defaults is the configuration the site launched with. Editable copy lives
// in site_settings; this is the fallback when no override row exists.
func Defaults() Site {
	return Site{
		Company: Company{
			Name:        "Parceiros Internet",
			ShortName:   "Parceiros",
			Tagline:     "Fibra óptica de verdade para você",
			Description: "Internet fibra óptica de alta velocidade em Balneário Camboriú e Camboriú. Conexão estável, suporte local e instalação rápida.",
		},
		Contact: Contact{
			Phone:           "(47) 92003-7544",
			WhatsApp:        "5547935059508",
			WhatsAppDisplay: "(47) 93505-9508",
			Email:           "contato@parceirosinternet.com.br",
			EmailPedidos:    "pedidos@parceirosinternet.com.br",
		},
		Promo: Promo{
			Active:       true,
			BannerText:   "🔥 Promoção de Verão em BC e Camboriú!",
			BannerCta:    "Contratar agora",
			Title:        "MEGA PROMOÇÃO",
			Subtitle:     "Fibra óptica com o melhor custo-benefício",
			Discount:     "3 meses",
			DiscountText: "com 50% de desconto",
			EndDate:      "2025-02-28",
		},
		Cities: []City{
			{
				ID:   CityBalnearioCamboriu,
				Name: "Balneário Camboriú",
				Neighborhoods: []string{
					"Centro", "Barra Sul", "Pioneiros", "Das Nações", "Vila Real",
					"Ariribá", "Praia dos Amores", "Interpraias", "Nova Esperança",
					"São Judas", "Municípios", "Tabuleiro", "Praia Brava",
				},
			},
			{
				ID:   CityCamboriu,
				Name: "Camboriú",
				Neighborhoods: []string{
					"Centro", "Taboleiro Verde", "Areias", "Cedros", "Monte Alegre",
					"Rio Pequeno", "Morretes", "Santa Regina", "Várzea do Ranchinho",
					"Limeira",
				},
			},
		},
		Quiz: []quiz.Question{
			{
				ID:       "people",
				Question: "Quantas pessoas usam a internet na sua casa?",
				Options: []quiz.Option{
					{Value: 1, Label: "1-2 pessoas", Points: 1},
					{Value: 2, Label: "3-4 pessoas", Points: 2},
					{Value: 3, Label: "5+ pessoas", Points: 3},
				},
			},
			{
				ID:       "streaming",
				Question: "Vocês assistem streaming (Netflix, YouTube, etc)?",
				Options: []quiz.Option{
					{Value: 1, Label: "Raramente", Points: 0},
					{Value: 2, Label: "Às vezes", Points: 1},
					{Value: 3, Label: "Sempre, em várias telas", Points: 2},
				},
			},
			{
				ID:       "gaming",
				Question: "Alguém joga online na casa?",
				Options: []quiz.Option{
					{Value: 1, Label: "Não", Points: 0},
					{Value: 2, Label: "Casual", Points: 1},
					{Value: 3, Label: "Competitivo/Streaming", Points: 3},
				},
			},
			{
				ID:       "homeoffice",
				Question: "Tem home office ou reuniões online?",
				Options: []quiz.Option{
					{Value: 1, Label: "Não", Points: 0},
					{Value: 2, Label: "Às vezes", Points: 1},
					{Value: 3, Label: "Diariamente", Points: 2},
				},
			},
		},
	}
}

// DefaultPlans is the launch residential catalog, used to seed an empty
// plans table.
func DefaultPlans() []entities.Plan {
	return []entities.Plan{
		{
			ID: "200mega", Name: "Essencial", Speed: 200, Price: 79.90, OriginalPrice: 99.90,
			Features: []string{"Wi-Fi 5 incluso", "Instalação em até 24h", "Suporte local", "Sem fidelidade"},
		},
		{
			ID: "400mega", Name: "Família", Speed: 400, Price: 99.90, OriginalPrice: 129.90,
			Features:    []string{"Wi-Fi 5 incluso", "Instalação em até 24h", "Suporte prioritário", "Sem fidelidade", "2 pontos de TV grátis"},
			Recommended: true, Tag: "Mais vendido",
		},
		{
			ID: "600mega", Name: "Turbo", Speed: 600, Price: 129.90, OriginalPrice: 169.90,
			Features: []string{"Wi-Fi 6 incluso", "Instalação expressa", "Suporte VIP 24h", "Sem fidelidade", "IP fixo opcional", "3 pontos de TV grátis"},
			Tag:      "Gamers",
		},
		{
			ID: "1giga", Name: "Ultra", Speed: 1000, Price: 179.90, OriginalPrice: 229.90,
			Features: []string{"Wi-Fi 6 premium incluso", "Instalação expressa", "Suporte VIP 24h", "Sem fidelidade", "IP fixo incluso", "4 pontos de TV grátis", "Mesh adicional grátis"},
			Tag:      "Premium",
		},
	}
}

// DefaultBusinessPlans is the launch business catalog.
func DefaultBusinessPlans() []entities.BusinessPlan {
	return []entities.BusinessPlan{
		{
			ID: "emp-300", Name: "Startup", Speed: 300, Price: 199.90,
			Features: []string{"IP fixo incluso", "SLA 99%", "Suporte comercial", "Instalação profissional"},
		},
		{
			ID: "emp-500", Name: "Business", Speed: 500, Price: 349.90,
			Features: []string{"IP fixo incluso", "SLA 99.5%", "Suporte prioritário 24h", "Backup 4G", "Visita técnica mensal"},
		},
		{
			ID: "emp-1000", Name: "Enterprise", Speed: 1000, Price: 599.90,
			Features: []string{"Link dedicado", "SLA 99.9%", "Gerente de conta", "Backup redundante", "Firewall incluso", "Monitoramento 24h"},
		},
	}
}

// DefaultTestimonials seeds the testimonials table.
func DefaultTestimonials() []entities.Testimonial {
	return []entities.Testimonial{
		{ID: "t-1", Name: "Marcos Silva", Location: "Centro, Balneário Camboriú", Rating: 5,
			Text: "Melhor internet que já tive! Instalação foi super rápida e o técnico muito educado. Recomendo demais!"},
		{ID: "t-2", Name: "Ana Paula Costa", Location: "Pioneiros, BC", Rating: 5,
			Text: "Trabalho com design e preciso de conexão estável. A Parceiros nunca me deixou na mão. Suporte excelente!"},
		{ID: "t-3", Name: "Roberto Mendes", Location: "Camboriú", Rating: 5,
			Text: "Vim de outra operadora que vivia caindo. Aqui é diferente, estabilidade total e preço justo."},
		{ID: "t-4", Name: "Juliana Ferreira", Location: "Barra Sul, BC", Rating: 5,
			Text: "Meus filhos jogam online e nunca reclamaram de lag. Instalação foi no mesmo dia que liguei!"},
	}
}
