package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type idForm struct {
	NationalID string `validate:"nationalid"`
}

type phoneForm struct {
	Phone string `validate:"pkphone"`
}

func TestNationalIDRule(t *testing.T) {
	valid := []string{"12345-1234567-1", "1234512345671"}
	for _, v := range valid {
		assert.Nil(t, ValidateStruct(idForm{NationalID: v}), v)
	}

	invalid := []string{"", "12345-1234567-12", "1234-1234567-1", "12345123456", "abcde-1234567-1"}
	for _, v := range invalid {
		assert.NotNil(t, ValidateStruct(idForm{NationalID: v}), v)
	}
}

func TestPhoneRule(t *testing.T) {
	valid := []string{"03001234567", "+923001234567"}
	for _, v := range valid {
		assert.Nil(t, ValidateStruct(phoneForm{Phone: v}), v)
	}

	invalid := []string{"", "0300123456", "030012345678", "+92300123456", "923001234567"}
	for _, v := range invalid {
		assert.NotNil(t, ValidateStruct(phoneForm{Phone: v}), v)
	}
}

func TestValidateStructMessages(t *testing.T) {
	errs := ValidateStruct(idForm{NationalID: "nope"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "nationalid", errs[0].Tag)
	assert.Contains(t, errs[0].Msg, "National ID")
}
