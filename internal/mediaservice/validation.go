package mediaservice

import (
	"github.com/sushihentaime/wayfarer/internal/common"
)

func validateID(v *common.Validator, id int64) {
	v.Check(id > 0, "id", "must be greater than zero")
}

func validateType(v *common.Validator, t MediaType) {
	_, ok := tables[t]
	v.Check(ok, "type", "must be one of: image video")
}

// ParseMediaType parses the type discriminator of a camera roll request.
func ParseMediaType(s string) (MediaType, error) {
	v := common.NewValidator()
	validateType(v, MediaType(s))
	if !v.Valid() {
		return "", v.ValidationError()
	}

	return MediaType(s), nil
}
