package locationservice

import (
	"github.com/sushihentaime/wayfarer/internal/common"
)

func validateID(v *common.Validator, id int64) {
	v.Check(id > 0, "id", "must be greater than zero")
}

func validateInput(v *common.Validator, input *LocationInput) {
	v.Struct(input)
}
