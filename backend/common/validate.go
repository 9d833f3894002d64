package common

import (
	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance for request payload structs.
var Validate = validator.New()
