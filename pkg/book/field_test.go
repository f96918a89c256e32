package book_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/pkg/book"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "plain name", input: "jane"},
		{name: "mixed case kept verbatim", input: "Jane Doe"},
		{name: "whitespace is not trimmed", input: "  jane  "},
		{name: "empty rejected", input: "", wantErr: book.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := book.NewName(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "ten digits", input: "1234567890"},
		{name: "all zeros", input: "0000000000"},
		{name: "nine digits", input: "123456789", wantErr: book.ErrInvalidPhone},
		{name: "eleven digits", input: "12345678901", wantErr: book.ErrInvalidPhone},
		{name: "letters", input: "12345abcde", wantErr: book.ErrInvalidPhone},
		{name: "embedded space", input: "12345 7890", wantErr: book.ErrInvalidPhone},
		{name: "leading plus", input: "+123456789", wantErr: book.ErrInvalidPhone},
		{name: "non-ascii digits", input: "١٢٣٤٥٦٧٨٩٠", wantErr: book.ErrInvalidPhone},
		{name: "empty", input: "", wantErr: book.ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := book.NewPhone(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String(), "phone must round-trip verbatim")
		})
	}
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "regular date", input: "15.06.1990"},
		{name: "first of january", input: "01.01.2000"},
		{name: "leap day in leap year", input: "29.02.2024"},
		{name: "leap day in common year", input: "29.02.2023", wantErr: book.ErrInvalidBirthday},
		{name: "day out of range", input: "30.02.2024", wantErr: book.ErrInvalidBirthday},
		{name: "month out of range", input: "15.13.1990", wantErr: book.ErrInvalidBirthday},
		{name: "unpadded day and month", input: "1.1.2024", wantErr: book.ErrInvalidBirthday},
		{name: "unpadded day only", input: "1.06.1990", wantErr: book.ErrInvalidBirthday},
		{name: "iso format", input: "1990-06-15", wantErr: book.ErrInvalidBirthday},
		{name: "trailing text", input: "15.06.1990x", wantErr: book.ErrInvalidBirthday},
		{name: "empty", input: "", wantErr: book.ErrInvalidBirthday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := book.NewBirthday(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String(), "birthday must round-trip verbatim")
			assert.False(t, got.IsZero())
		})
	}
}

func TestBirthdayDate(t *testing.T) {
	b, err := book.NewBirthday("15.06.1990")
	require.NoError(t, err)

	assert.Equal(t, 1990, b.Date().Year())
	assert.Equal(t, time.June, b.Date().Month())
	assert.Equal(t, 15, b.Date().Day())
}

func TestBirthdayZeroValue(t *testing.T) {
	var b book.Birthday
	assert.True(t, b.IsZero())
	assert.Equal(t, "", b.String())
}
