// Package whatsapp renders an assembled order into the human-readable
// summary the shop receives, and builds the deep link that opens the chat
// with that summary prefilled.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/topacai/top-acai-backend/internal/menu"
	"github.com/topacai/top-acai-backend/internal/orders"
)

const sendURL = "https://api.whatsapp.com/send"

// RenderMessage produces the order summary sent to the shop. The output is
// deterministic for a given order: same order, same text.
func RenderMessage(cat *menu.Catalog, o orders.Order) string {
	var b strings.Builder

	b.WriteString("📦 *NOVO PEDIDO*\n")
	fmt.Fprintf(&b, "👤 *Nome:* %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "🏠 *Endereço:* %s\n", o.Customer.Address)
	fmt.Fprintf(&b, "💳 *Pagamento:* %s\n", o.PaymentMethod)

	if o.PaymentMethod == orders.PaymentCash && o.ChangeInfo.NeedsChange {
		fmt.Fprintf(&b, "💰 *Troco para:* R$%.2f\n", o.ChangeInfo.ChangeAmount)
		fmt.Fprintf(&b, "💸 *Valor do troco:* R$%.2f\n", o.ChangeInfo.ChangeAmount-o.Total)
	}

	b.WriteString("\n🛒 *Itens:*\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "- %d x %s (%s)\n", it.Quantity, it.ProductName, it.Category)

		if len(it.FreeAddons) > 0 {
			fmt.Fprintf(&b, "   Adicionais grátis: %s\n", strings.Join(it.FreeAddons, ", "))
		}
		if len(it.PaidAddons) > 0 {
			parts := make([]string, 0, len(it.PaidAddons))
			for _, a := range it.PaidAddons {
				parts = append(parts, fmt.Sprintf("%s (R$%.2f)", a.Name, a.Price))
			}
			fmt.Fprintf(&b, "   Adicionais pagos: %s\n", strings.Join(parts, ", "))
		}
		if len(it.ExtraAddons) > 0 {
			fmt.Fprintf(&b, "   Adicionais extras (pagos): %s (R$%.2f)\n",
				strings.Join(it.ExtraAddons, ", "), it.ExtraAddonsTotal)
		}

		if it.NeedsSpoon {
			b.WriteString("   🥄 Colher: Sim\n")
		}
		if it.NeedsStraw {
			b.WriteString("   🥤 Canudo: Sim\n")
		}
		if it.KetchupSachets > 0 {
			fmt.Fprintf(&b, "   🍅 Sachê ketchup: %d\n", it.KetchupSachets)
		}
		if it.MayoSachets > 0 {
			fmt.Fprintf(&b, "   🥄 Sachê maionese: %d\n", it.MayoSachets)
		}

		fmt.Fprintf(&b, "   Subtotal: R$%.2f\n\n", it.Subtotal)
	}

	fmt.Fprintf(&b, "💰 *Sub-Total:* R$%.2f\n", o.Subtotal)

	if amount, ok := o.DeliveryFee.Amount(); ok {
		fmt.Fprintf(&b, "🚚 *Taxa de entrega:* R$%.2f\n", amount)
		fmt.Fprintf(&b, "💰 *Total:* R$%.2f\n\n", o.Total)
	} else {
		fmt.Fprintf(&b, "🚚 *Taxa de entrega:* A definir pelo atendente via WhatsApp (endereço fora de %s)\n",
			cat.FreeDeliveryNeighborhood)
		fmt.Fprintf(&b, "💰 *Total (sem taxa):* R$%.2f\n\n", o.Subtotal)
	}

	fmt.Fprintf(&b, "🕒 Pedido gerado em: %s\n", o.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"))

	if o.PaymentMethod == orders.PaymentPix {
		b.WriteString("\n📌 Dados PIX (opcional):\n")
		fmt.Fprintf(&b, "CPF: %s\n", cat.Pix.CPF)
		fmt.Fprintf(&b, "Nome: %s\n", cat.Pix.Name)
		fmt.Fprintf(&b, "Banco: %s\n", cat.Pix.Bank)
		b.WriteString("Obs: Pagamento via PIX pode ser feito agora ou na entrega.\n")
	}

	return b.String()
}

// Link builds the deep link that opens a WhatsApp chat with the shop's
// number and the rendered summary as the message text.
func Link(phone, message string) string {
	q := url.Values{}
	q.Set("phone", phone)
	q.Set("text", message)
	return sendURL + "?" + q.Encode()
}
