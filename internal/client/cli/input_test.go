package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  buy milk \n"), "Title?", &out)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", got)
	assert.Equal(t, "Title?\n> ", out.String())
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(rdr("lastline"), "Title?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Title?", &out)
	require.Error(t, err)
}

func TestGetMultiline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "double enter", input: "a\nb\n\nignored\n", want: "a\nb"},
		{name: "crlf", input: "a\r\nb\r\n\r\n", want: "a\nb"},
		{name: "eof without blank line", input: "a\nb", want: "a\nb"},
		{name: "immediately empty", input: "\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetMultiline(rdr(tt.input), "Text", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Enter password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("not a terminal") }
	_, err = GetPassword(&out)
	require.Error(t, err)
}

func TestGetOptionalID(t *testing.T) {
	var out bytes.Buffer

	id, err := GetOptionalID(rdr("\n"), "Category", &out)
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = GetOptionalID(rdr("12\n"), "Category", &out)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(12), *id)

	for _, bad := range []string{"x\n", "0\n", "-3\n"} {
		_, err = GetOptionalID(rdr(bad), "Category", &out)
		assert.Error(t, err, bad)
	}
}

func TestGetOptionalDate(t *testing.T) {
	var out bytes.Buffer

	d, err := GetOptionalDate(rdr("\n"), "Due", &out)
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = GetOptionalDate(rdr("2026-05-17\n"), "Due", &out)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.True(t, d.Equal(time.Date(2026, 5, 17, 0, 0, 0, 0, time.Local)))

	_, err = GetOptionalDate(rdr("17/05/2026\n"), "Due", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}
