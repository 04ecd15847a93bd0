package validation

import (
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ValidationError is a rejected payload: the first documented check that
// failed, with a human-readable reason for the customer.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// New returns a configured validator with the struct-level rule for
// CreateOrderRequest registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterStructValidation(createOrderStructValidation, CreateOrderRequest{})
	return v
}

// createOrderStructValidation enforces the cross-field rule that a cash
// order asking for change must say which bill the customer pays with.
func createOrderStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CreateOrderRequest)

	if req.PaymentMethod == "DINHEIRO" && req.ChangeInfo.NeedsChange && req.ChangeInfo.ChangeAmount <= 0 {
		sl.ReportError(req.ChangeInfo.ChangeAmount, "change_info.change_amount", "ChangeAmount", "change_amount_required", "")
	}
}

// ValidateOrder runs the documented checkout checks in priority order and
// stops at the first failure: customer name, then address, then payment
// method, then a non-empty items list. Item shape beyond that is the
// pricing engine's contract.
func ValidateOrder(req *CreateOrderRequest) error {
	if strings.TrimSpace(req.Customer.Name) == "" {
		return &ValidationError{Field: "customer.name", Reason: "Nome do cliente é obrigatório"}
	}
	if strings.TrimSpace(req.Customer.Address) == "" {
		return &ValidationError{Field: "customer.address_and_number", Reason: "Endereço do cliente é obrigatório"}
	}
	if !validPaymentMethod(req.PaymentMethod) {
		return &ValidationError{Field: "payment_method", Reason: "Método de pagamento inválido"}
	}
	if len(req.Items) == 0 {
		return &ValidationError{Field: "items", Reason: "Nenhum item no pedido"}
	}
	return nil
}

func validPaymentMethod(m string) bool {
	switch m {
	case "CARTÃO", "DINHEIRO", "PIX":
		return true
	}
	return false
}

// firstReason maps the leading validator error to a customer-facing reason.
func firstReason(err error) *ValidationError {
	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok || len(ve) == 0 {
		return &ValidationError{Field: "payload", Reason: "Pedido inválido"}
	}
	fe := ve[0]
	switch fe.Tag() {
	case "change_amount_required":
		return &ValidationError{Field: "change_info.change_amount", Reason: "Informe o valor para troco"}
	case "min", "max":
		if fe.Field() == "Quantity" {
			return &ValidationError{Field: "items.quantity", Reason: "Quantidade do item inválida"}
		}
	}
	return &ValidationError{Field: fe.StructNamespace(), Reason: "Pedido inválido: " + fe.StructNamespace()}
}
