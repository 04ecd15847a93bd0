package validation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// BindAndValidate binds the JSON body into req, sanitizes its free-text
// fields and runs the checkout checks. On failure it writes a 400 with the
// first failing check's reason and returns an error so the handler can
// short-circuit.
func BindAndValidate(c *gin.Context, req *CreateOrderRequest, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return err
	}

	req.Sanitize()

	if err := ValidateOrder(req); err != nil {
		var verr *ValidationError
		if vv, ok := err.(*ValidationError); ok {
			verr = vv
		} else {
			verr = &ValidationError{Field: "payload", Reason: err.Error()}
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason, "field": verr.Field})
		return err
	}

	if err := v.Struct(req); err != nil {
		verr := firstReason(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason, "field": verr.Field})
		return err
	}
	return nil
}
