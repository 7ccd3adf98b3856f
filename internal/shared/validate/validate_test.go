package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type payload struct {
	Message string `json:"message" validate:"required,min=5,max=140"`
}

func TestStructValid(t *testing.T) {
	assert.Nil(t, Struct(payload{Message: "long enough"}))
}

func TestStructFieldErrors(t *testing.T) {
	cases := []struct {
		name string
		msg  string
		want string
	}{
		{"missing", "", "is required"},
		{"too short", "hey", "at least 5"},
		{"too long", strings.Repeat("x", 141), "at most 140"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := Struct(payload{Message: tc.msg})
			assert.Contains(t, errs["message"], tc.want)
		})
	}
}
