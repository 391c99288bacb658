package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidLebanesePhone(t *testing.T) {
	valid := []string{
		"03123456",
		"0 3 123 456",
		"70123456",
		"71123456",
		"76123456",
		"81123456",
		"96170123456",
		"+961 70 123 456",
	}
	for _, v := range valid {
		assert.True(t, validLebanesePhone(v), "expected %q to be valid", v)
	}

	invalid := []string{
		"",
		"1234",
		"04123456",       // landline prefix
		"82123456",       // not a mobile prefix
		"7012345",        // too short
		"701234567",      // too long
		"00961170123456", // double prefix
		"abc",
	}
	for _, v := range invalid {
		assert.False(t, validLebanesePhone(v), "expected %q to be invalid", v)
	}
}

func TestValidGmailAddress(t *testing.T) {
	valid := []string{
		"customer@gmail.com",
		"Customer.Name+tag@GMAIL.com",
		"someone@googlemail.com",
		"a_b%c-d@gmail.com",
	}
	for _, v := range valid {
		assert.True(t, validGmailAddress(v), "expected %q to be valid", v)
	}

	invalid := []string{
		"",
		"customer@yahoo.com",
		"customer@gmail.co",
		"customer@gmailxcom",
		"@gmail.com",
		"customer gmail.com",
	}
	for _, v := range invalid {
		assert.False(t, validGmailAddress(v), "expected %q to be invalid", v)
	}
}
