package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cop_dashboard/models"
)

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "1,234,567", FormatCount(1234567))
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", LanguageName("en"))
	assert.Equal(t, "Spanish", LanguageName("es"))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 200, HTTPStatus(models.CodeSuccess))
	assert.Equal(t, 400, HTTPStatus(models.CodeInvalidParams))
	assert.Equal(t, 500, HTTPStatus(models.CodeMissingColumn))
}
