package common

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"wwilson/ops-scripts/internal/apperror"
	"wwilson/ops-scripts/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFail(t *testing.T) {
	log := logging.NewMockLogger()
	cause := &apperror.NotFoundError{URL: "http://h/mmws/api/Ranges"}

	err := Fail(log, "API returned 404", cause)

	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "API returned 404, check the logs"))
	var notFound *apperror.NotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.True(t, log.HasEntry("ERROR", "API returned 404"))
}

func TestReadPassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"line", "s3cret\n", "s3cret", false},
		{"crlf", "s3cret\r\n", "s3cret", false},
		{"no newline", "s3cret", "s3cret", false},
		{"empty line", "\n", "", false},
		{"eof", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ReadPassword(strings.NewReader(tt.input), &out, "Password: ")
			assert.Equal(t, "Password: ", out.String())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
