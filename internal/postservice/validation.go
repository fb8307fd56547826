package postservice

import (
	"github.com/sushihentaime/wayfarer/internal/common"
)

func validateID(v *common.Validator, id int64) {
	v.Check(id > 0, "id", "must be greater than zero")
}

func validateTag(v *common.Validator, tag string) {
	v.Check(tag != "", "tag", "must be provided")
	v.Check(v.CheckStringLength(tag, 0, 50), "tag", "must not be more than 50 characters long")
}
