package bot

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/rolodex/pkg/book"
)

// fakeStore records Save calls and can be told to fail.
type fakeStore struct {
	saved   *book.AddressBook
	saves   int
	saveErr error
}

func (f *fakeStore) Load() (*book.AddressBook, error) { return book.NewAddressBook(), nil }

func (f *fakeStore) Save(b *book.AddressBook) error {
	f.saves++
	f.saved = b
	return f.saveErr
}

func (f *fakeStore) Close() error { return nil }

// runSession feeds the input lines to a fresh session over b and
// returns the transcript. The mock clock is pinned to 2024-06-10.
func runSession(t *testing.T, b *book.AddressBook, store book.Store, lines ...string) string {
	t.Helper()
	mock := clock.NewMock()
	mock.Set(time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC))

	var out strings.Builder
	in := strings.NewReader(strings.Join(lines, "\n"))
	session := New(b, store, mock, zap.NewNop(), in, &out)
	require.NoError(t, session.Run())
	return out.String()
}

func TestSessionLifecycle(t *testing.T) {
	store := &fakeStore{}
	b := book.NewAddressBook()

	got := runSession(t, b, store,
		"hello",
		"add Bob 1234567890",
		"phone Bob",
		"close",
	)

	assert.Equal(t, strings.Join([]string{
		"Welcome to the assistant bot!",
		"Enter a command: How can I help you?",
		"Enter a command: Contact added.",
		"Enter a command: 1234567890",
		"Enter a command: Good bye!",
		"",
	}, "\n"), got)
	assert.Equal(t, 1, store.saves)
	assert.Same(t, b, store.saved)
}

func TestSessionCommands(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string // printed command results, prompt and framing stripped
	}{
		{
			name:  "change replaces first phone",
			lines: []string{"add Bob 1234567890", "change Bob 0987654321", "phone Bob"},
			want:  []string{"Contact added.", "Contact updated.", "0987654321"},
		},
		{
			name:  "duplicate add rejected case-insensitively",
			lines: []string{"add Alice 1234567890", "add ALICE 0987654321"},
			want:  []string{"Contact added.", "Contact already exists. Use 'change' to update."},
		},
		{
			name:  "all with no contacts",
			lines: []string{"all"},
			want:  []string{"No contacts found."},
		},
		{
			name:  "all lists capitalized contacts",
			lines: []string{"add bob 1234567890", "add alice 5555555555", "all"},
			want:  []string{"Contact added.", "Contact added.", "Bob: 1234567890\nAlice: 5555555555"},
		},
		{
			name:  "remove then lookup",
			lines: []string{"add Bob 1234567890", "remove Bob", "phone Bob"},
			want:  []string{"Contact added.", "Contact removed.", "Contact not found."},
		},
		{
			name:  "birthday set and shown",
			lines: []string{"add Bob 1234567890", "add-birthday Bob 15.06.1990", "show-birthday Bob"},
			want:  []string{"Contact added.", "Birthday added.", "15.06.1990"},
		},
		{
			name:  "show-birthday for unknown contact",
			lines: []string{"show-birthday Nobody"},
			want:  []string{"Contact not found."},
		},
		{
			name:  "birthdays within mocked week",
			lines: []string{"add Bob 1234567890", "add-birthday Bob 12.06.1990", "birthdays"},
			want:  []string{"Contact added.", "Birthday added.", "Upcoming birthdays in the next week:\nBob - 12.06.1990"},
		},
		{
			name:  "birthdays with none upcoming",
			lines: []string{"birthdays"},
			want:  []string{"No upcoming birthdays in the next week."},
		},
		{
			name:  "invalid phone reported",
			lines: []string{"add Bob 123"},
			want:  []string{"Phone number must be a 10-digit number"},
		},
		{
			name:  "invalid birthday reported",
			lines: []string{"add Bob 1234567890", "add-birthday Bob 30.02.2024"},
			want:  []string{"Contact added.", "Invalid date format for birthday. Birthday should be in the format DD.MM.YYYY"},
		},
		{
			name:  "missing arguments reported",
			lines: []string{"add Bob", "remove", "add-birthday Bob"},
			want: []string{
				"Give me name and phone please.",
				"Give me the name of the contact you want to remove.",
				"Give me name and date of birth in the format DD.MM.YYYY.",
			},
		},
		{
			name:  "unknown command",
			lines: []string{"frobnicate"},
			want:  []string{"Invalid command."},
		},
		{
			name:  "blank line is an invalid command",
			lines: []string{""},
			want:  []string{"Invalid command."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := append(tt.lines, "exit")
			got := runSession(t, book.NewAddressBook(), &fakeStore{}, lines...)

			expected := "Welcome to the assistant bot!\n"
			for _, w := range tt.want {
				expected += "Enter a command: " + w + "\n"
			}
			expected += "Enter a command: Good bye!\n"
			assert.Equal(t, expected, got)
		})
	}
}

func TestSessionEOFSavesAndExits(t *testing.T) {
	store := &fakeStore{}

	// No close/exit line: the reader just runs out.
	got := runSession(t, book.NewAddressBook(), store, "add Bob 1234567890")

	assert.True(t, strings.HasSuffix(got, "Good bye!\n"))
	assert.Equal(t, 1, store.saves)
	require.NotNil(t, store.saved)
	assert.Equal(t, 1, store.saved.Len())
}

func TestSessionSaveFailure(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}

	var out strings.Builder
	session := New(book.NewAddressBook(), store, clock.NewMock(), zap.NewNop(),
		strings.NewReader("close\n"), &out)

	err := session.Run()
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")
	// Farewell still printed despite the failed save.
	assert.True(t, strings.HasSuffix(out.String(), "Good bye!\n"))
}
