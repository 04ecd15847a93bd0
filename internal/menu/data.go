package menu

// Default returns the TOP Açai & Delicias menu. Prices are in BRL.
func Default() *Catalog {
	acaiAddons := AddonCatalog{
		FreeAddons: []string{
			"banana", "kiwi", "manga", "morango", "uva", "leite_ninho",
			"ovomaltine", "paçoca", "granola", "sucrilhos", "chocoball",
			"confete", "gotas_de_chocolate", "granulado", "bis", "kitkat",
			"look", "ouro_branco", "leite_condensado",
		},
		PaidAddons: []PaidAddon{
			{ID: "creme_avelã", Name: "Creme de avelã", Price: 5.00},
			{ID: "creme_leitinho", Name: "Creme de leitinho", Price: 5.00},
		},
		ExtraPricePerExtra: 3.00,
	}

	churrosAddons := AddonCatalog{
		FreeAddons: []string{
			"leite_condensado", "doce_de_leite", "chocolate_ao_leite",
			"goiabada", "geleia_de_morango",
		},
		PaidAddons: []PaidAddon{
			{ID: "ch_creme_avelã", Name: "Creme de avelã", Price: 4.00},
			{ID: "ch_creme_leitinho", Name: "Creme de leitinho", Price: 4.00},
		},
		// churros overflow selections are noted on the order but not charged
	}

	vitaminaDesc := "As vitaminas são feitas com Leite, Morango, Banana, " +
		"Leite Ninho e Leite Condensado e claro o melhor, Açai."

	return &Catalog{
		StoreName:                "TOP Açai & Delicias",
		WAPhone:                  "5543996813103",
		FreeDeliveryNeighborhood: "bem viver arapongas",
		Pix: PixInfo{
			CPF:  "074.448.389-17",
			Name: "MELISSA STEFANIE PEREIRA SIQUEIRA",
			Bank: "BRADESCO S.A.",
		},
		Groups: []Group{
			{
				Category: "Gelados > Açaí > Copos",
				Products: []Product{
					{ID: "cop300", Name: "300ml", Price: 15.00, FreeAddonLimit: 3},
					{ID: "cop400", Name: "400ml", Price: 19.00, FreeAddonLimit: 3},
					{ID: "cop500", Name: "500ml", Price: 22.00, FreeAddonLimit: 4},
					{ID: "cop700", Name: "700ml", Price: 30.00, FreeAddonLimit: 4},
				},
				Addons: acaiAddons,
			},
			{
				Category: "Gelados > Açaí > Marmitas",
				Products: []Product{
					{ID: "mar350", Name: "350g", Price: 18.00, FreeAddonLimit: 4},
					{ID: "mar550", Name: "550g", Price: 25.00, FreeAddonLimit: 4},
					{ID: "mar800", Name: "800g", Price: 40.00, FreeAddonLimit: 5},
				},
				Addons: acaiAddons,
			},
			{
				Category: "Gelados > Açaí > Especiais",
				Products: []Product{
					{ID: "barca", Name: "Barca", Price: 35.00, FreeAddonLimit: 6},
					{ID: "roleta", Name: "Roleta", Price: 50.00, FreeAddonLimit: 6},
				},
				Addons: acaiAddons,
			},
			{
				Category: "Gelados > Açaí > Vitaminas",
				Products: []Product{
					{ID: "vit300", Name: "Garrafa 300ml", Price: 15.00, Description: vitaminaDesc},
					{ID: "vit500", Name: "Garrafa 500ml", Price: 25.00, Description: vitaminaDesc},
				},
			},
			{
				Category: "Gelados > Açaí > Geladão Gourmet",
				Products: []Product{
					{ID: "sensacao", Name: "Sensação", Price: 8.50, Description: "Delicioso geladão com sabor de Sensação."},
					{ID: "pacoca", Name: "Paçoca", Price: 8.50, Description: "Geladão cremoso com sabor de Paçoca."},
					{ID: "sabor1", Name: "Sabor1", Price: 8.50, Description: "Sabor único e refrescante."},
					{ID: "sabor2", Name: "Sabor2", Price: 8.50, Description: "Uma explosão de sabor em cada colherada."},
					{ID: "sabor3", Name: "Sabor3", Price: 8.50, Description: "Experimente essa delícia gelada."},
				},
			},
			{
				Category: "Frituras > Mini Salgados",
				Products: []Product{
					{ID: "salg15", Name: "15 unidades", Price: 12.00},
					{ID: "salg30", Name: "30 unidades", Price: 24.00},
					{ID: "salg50", Name: "50 unidades", Price: 40.00},
				},
			},
			{
				Category: "Frituras > Mini Churros",
				Products: []Product{
					{ID: "mch15", Name: "15 unidades", Price: 13.50, Description: "Mini Churros recheado com Doce de Leite"},
					{ID: "mch30", Name: "30 unidades", Price: 27.00, Description: "Mini Churros recheado com Doce de Leite"},
					{ID: "mch50", Name: "50 unidades", Price: 45.00, Description: "Mini Churros recheado com Doce de Leite"},
				},
			},
			{
				Category: "Frituras > Churros Espanhol",
				Products: []Product{
					{ID: "che10", Name: "10 unidades", Price: 15.00, FreeAddonLimit: 1},
					{ID: "che15", Name: "15 unidades", Price: 20.00, FreeAddonLimit: 1},
					{ID: "che20", Name: "20 unidades", Price: 25.00, FreeAddonLimit: 2},
				},
				Addons: churrosAddons,
			},
			{
				Category: "Bebidas > Refrigerantes de 2L",
				Products: []Product{
					{ID: "coca2", Name: "Coca Cola 2L", Price: 13.00},
					{ID: "sprite2", Name: "Sprite 2L", Price: 9.00},
					{ID: "kuat2", Name: "Kuat 2L", Price: 8.00},
					{ID: "riobranco2", Name: "Rio Branco 2L", Price: 7.50},
					{ID: "fanta2", Name: "Fanta 2L", Price: 11.00},
				},
			},
			{
				Category: "Bebidas > Latas de 350ml",
				Products: []Product{
					{ID: "coca350", Name: "Coca Cola 350ml", Price: 5.50},
					{ID: "gua350", Name: "Guaraná Antarctica 350ml", Price: 5.00},
					{ID: "fanta350", Name: "Fanta 350ml", Price: 5.00},
				},
			},
		},
	}
}
