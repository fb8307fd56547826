package newsletterservice

import (
	"github.com/sushihentaime/wayfarer/internal/common"
)

func validateID(v *common.Validator, id int64) {
	v.Check(id > 0, "id", "must be greater than zero")
}

func duplicateEmail() error {
	v := common.NewValidator()
	v.AddError("email", "a subscriber with this email address already exists")
	return v.ValidationError()
}
